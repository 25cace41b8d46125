package tokenizer

import (
	"errors"
	"testing"
)

type testCounter struct{}

func (testCounter) Name() string { return "stub" }

func (testCounter) CountString(input string) (int, error) { return len([]rune(input)), nil }

type failingCounter struct{}

func (failingCounter) Name() string { return "failing" }

func (failingCounter) CountString(string) (int, error) { return 0, errors.New("count failed") }

func TestCountBytes(t *testing.T) {
	testCases := []struct {
		name           string
		data           []byte
		expectedTokens int
		expectedCount  bool
	}{
		{name: "text", data: []byte("hello"), expectedTokens: 5, expectedCount: true},
		{name: "empty", data: nil, expectedTokens: 0, expectedCount: true},
		{name: "text with nul", data: []byte("ab\x00c"), expectedTokens: 4, expectedCount: true},
		{name: "invalid utf8", data: []byte{0xff, 0xfe, 0x41}, expectedCount: false},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			result, err := CountBytes(testCounter{}, testCase.data)
			if err != nil {
				t.Fatalf("CountBytes error: %v", err)
			}
			if result.Counted != testCase.expectedCount || result.Tokens != testCase.expectedTokens {
				t.Fatalf("unexpected result %+v", result)
			}
		})
	}
}

func TestCountBytesErrors(t *testing.T) {
	if _, err := CountBytes(nil, []byte("x")); err == nil {
		t.Fatalf("expected error for nil counter")
	}
	if _, err := CountBytes(failingCounter{}, []byte("x")); err == nil {
		t.Fatalf("expected counter error to propagate")
	}
}

func TestNewCounterDefault(t *testing.T) {
	counter, model, err := NewCounter(Config{})
	if err != nil {
		t.Fatalf("NewCounter error: %v", err)
	}
	if counter == nil {
		t.Fatalf("expected non-nil counter")
	}
	if model != DefaultModel {
		t.Fatalf("expected model %s, got %q", DefaultModel, model)
	}
	tokens, err := counter.CountString("hello world")
	if err != nil {
		t.Fatalf("CountString error: %v", err)
	}
	if tokens <= 0 {
		t.Fatalf("expected positive token count, got %d", tokens)
	}
}

func TestNewCounterUnknownModelFallsBack(t *testing.T) {
	counter, model, err := NewCounter(Config{Model: "claude-unknown"})
	if err != nil {
		t.Fatalf("NewCounter error: %v", err)
	}
	if model != defaultEncodingName || counter.Name() != defaultEncodingName {
		t.Fatalf("expected fallback encoding, got model %q counter %q", model, counter.Name())
	}
}

func TestNewCounterReportsEncoding(t *testing.T) {
	testCases := []struct {
		model            string
		expectedName     string
		expectedEncoding string
	}{
		{model: " GPT-4o ", expectedName: "gpt-4o", expectedEncoding: "o200k_base"},
		{model: "gpt-4", expectedName: "gpt-4", expectedEncoding: defaultEncodingName},
		{model: "llama-3", expectedName: defaultEncodingName, expectedEncoding: defaultEncodingName},
	}
	for _, testCase := range testCases {
		t.Run(testCase.model, func(t *testing.T) {
			counter, err := NewSummaryCounter(testCase.model)
			if err != nil {
				t.Fatalf("NewSummaryCounter error: %v", err)
			}
			if counter.Name() != testCase.expectedName || counter.Encoding() != testCase.expectedEncoding {
				t.Fatalf("expected %s/%s, got %s/%s", testCase.expectedName, testCase.expectedEncoding, counter.Name(), counter.Encoding())
			}
		})
	}
}

func TestCountStringTreatsSpecialTokensAsText(t *testing.T) {
	counter, err := NewSummaryCounter(DefaultModel)
	if err != nil {
		t.Fatalf("NewSummaryCounter error: %v", err)
	}
	tokens, err := counter.CountString("before <|endoftext|> after")
	if err != nil {
		t.Fatalf("CountString error: %v", err)
	}
	if tokens <= 3 {
		t.Fatalf("expected the marker to be counted as ordinary text, got %d tokens", tokens)
	}
}
