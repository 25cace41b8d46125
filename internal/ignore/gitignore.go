package ignore

import (
	gitignore "github.com/sabhiram/go-gitignore"

	"github.com/temirov/devkit/internal/utils"
)

// gitignoreMatcher evaluates patterns with gitignore rules, including negation and anchored "**".
type gitignoreMatcher struct {
	compiled *gitignore.GitIgnore
}

func newGitignoreMatcher(rawPatterns []string) *gitignoreMatcher {
	lines := make([]string, 0, len(rawPatterns))
	for _, rawPattern := range rawPatterns {
		lines = append(lines, utils.NormalizeSeparators(rawPattern))
	}
	return &gitignoreMatcher{compiled: gitignore.CompileIgnoreLines(utils.DeduplicatePatterns(lines)...)}
}

func (matcher *gitignoreMatcher) Match(relativePath string, isDirectory bool) bool {
	if isDirectory {
		return matcher.compiled.MatchesPath(relativePath + "/")
	}
	return matcher.compiled.MatchesPath(relativePath)
}
