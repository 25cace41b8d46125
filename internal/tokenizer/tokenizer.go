// Package tokenizer estimates how many model tokens a generated summary occupies.
package tokenizer

import (
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// Counter estimates token counts for text content.
type Counter interface {
	Name() string
	CountString(input string) (int, error)
}

// Config captures tokenizer selection parameters provided by the CLI.
type Config struct {
	Model string
}

const (
	// DefaultModel is used when no model is configured.
	DefaultModel        = "gpt-4o"
	defaultEncodingName = "cl100k_base"
)

// SummaryCounter counts a summary with the tiktoken encoding selected for a model.
type SummaryCounter struct {
	encoding     *tiktoken.Tiktoken
	model        string
	encodingName string
}

// NewCounter returns a Counter for the requested model along with the name it counts as.
// Models tiktoken does not know are counted with the cl100k_base encoding and reported
// under that encoding's name.
func NewCounter(cfg Config) (Counter, string, error) {
	counter, err := NewSummaryCounter(cfg.Model)
	if err != nil {
		return nil, "", err
	}
	return counter, counter.Name(), nil
}

// NewSummaryCounter resolves model to a tiktoken encoding. Empty selects DefaultModel.
func NewSummaryCounter(model string) (*SummaryCounter, error) {
	model = strings.ToLower(strings.TrimSpace(model))
	if model == "" {
		model = DefaultModel
	}
	if encoding, err := tiktoken.EncodingForModel(model); err == nil && encoding != nil {
		return &SummaryCounter{encoding: encoding, model: model, encodingName: encodingNameForModel(model)}, nil
	}
	fallback, err := tiktoken.GetEncoding(defaultEncodingName)
	if err != nil {
		return nil, fmt.Errorf("initialize fallback tokenizer: %w", err)
	}
	return &SummaryCounter{encoding: fallback, encodingName: defaultEncodingName}, nil
}

// Name reports the model the count stands for, or the encoding when the model was unknown.
func (counter *SummaryCounter) Name() string {
	if counter.model == "" {
		return counter.encodingName
	}
	return counter.model
}

// Encoding reports the tiktoken encoding in use.
func (counter *SummaryCounter) Encoding() string {
	return counter.encodingName
}

// CountString counts input as ordinary text; special-token markers inside a dumped
// file are counted like any other characters.
func (counter *SummaryCounter) CountString(input string) (int, error) {
	return len(counter.encoding.EncodeOrdinary(input)), nil
}

func encodingNameForModel(model string) string {
	if name, known := tiktoken.MODEL_TO_ENCODING[model]; known {
		return name
	}
	for prefix, name := range tiktoken.MODEL_PREFIX_TO_ENCODING {
		if strings.HasPrefix(model, prefix) {
			return name
		}
	}
	return defaultEncodingName
}

var _ Counter = (*SummaryCounter)(nil)
