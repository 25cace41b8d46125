// Package ignore decides which project paths are excluded from the summary structure and contents.
package ignore

import (
	"fmt"
	"strings"

	"github.com/temirov/devkit/internal/config"
	"github.com/temirov/devkit/internal/utils"
)

// Variant selects the rule set a path is checked against.
type Variant int

const (
	// VariantStructure governs the directory listing.
	VariantStructure Variant = iota
	// VariantContent governs which file bodies are dumped.
	VariantContent
)

// String returns the variant name.
func (variant Variant) String() string {
	if variant == VariantStructure {
		return "structure"
	}
	return "content"
}

// Mode names a pattern matching strategy.
type Mode string

const (
	// ModeCompat reproduces shell-glob matching with the "**" substring rewrite.
	ModeCompat Mode = "compat"
	// ModeGitignore applies full gitignore semantics to the same pattern layers.
	ModeGitignore Mode = "gitignore"

	errorUnknownModeFormat = "unknown matcher %q (expected %s or %s)"
)

// ParseMode converts a configuration or flag value into a Mode. Empty selects ModeCompat.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case "", ModeCompat:
		return ModeCompat, nil
	case ModeGitignore:
		return ModeGitignore, nil
	default:
		return "", fmt.Errorf(errorUnknownModeFormat, value, ModeCompat, ModeGitignore)
	}
}

// pathMatcher reports whether a forward-slash relative path is matched by a compiled pattern list.
type pathMatcher interface {
	Match(relativePath string, isDirectory bool) bool
}

// RuleSet holds the compiled structure and content pattern lists.
type RuleSet struct {
	structure pathMatcher
	content   pathMatcher
}

// NewRuleSet compiles the structure list (gitignore + built-in + structure-ignore) and the
// content list (gitignore + built-in + summary-ignore) using the requested mode.
func NewRuleSet(sources config.IgnoreSources, mode Mode) (*RuleSet, error) {
	basePatterns := make([]string, 0, len(sources.GitIgnore)+len(sources.BuiltIn))
	basePatterns = append(basePatterns, sources.GitIgnore...)
	basePatterns = append(basePatterns, sources.BuiltIn...)

	structurePatterns := append(append([]string{}, basePatterns...), sources.StructureIgnore...)
	contentPatterns := append(append([]string{}, basePatterns...), sources.SummaryIgnore...)

	switch mode {
	case "", ModeCompat:
		return &RuleSet{
			structure: newGlobMatcher(structurePatterns),
			content:   newGlobMatcher(contentPatterns),
		}, nil
	case ModeGitignore:
		return &RuleSet{
			structure: newGitignoreMatcher(structurePatterns),
			content:   newGitignoreMatcher(contentPatterns),
		}, nil
	default:
		return nil, fmt.Errorf(errorUnknownModeFormat, mode, ModeCompat, ModeGitignore)
	}
}

// Matches reports whether relativePath is ignored under variant.
// Backslashes in relativePath are treated as separators.
func (ruleSet *RuleSet) Matches(relativePath string, isDirectory bool, variant Variant) bool {
	normalizedPath := utils.NormalizeSeparators(relativePath)
	if variant == VariantStructure {
		return ruleSet.structure.Match(normalizedPath, isDirectory)
	}
	return ruleSet.content.Match(normalizedPath, isDirectory)
}

// IsIgnored reports whether the filesystem path below projectRoot is ignored under variant.
func (ruleSet *RuleSet) IsIgnored(path string, projectRoot string, isDirectory bool, variant Variant) bool {
	return ruleSet.Matches(utils.RelativePathOrSelf(path, projectRoot), isDirectory, variant)
}
