package ignore

import (
	"errors"
	"strings"

	"github.com/gobwas/glob"
)

const (
	doubleStar          = "**"
	doubleStarSeparator = "**/"
	separator           = "/"
	backslash           = `\`
	anySequence         = "*"
)

// maxClassRunes bounds how many runes a bracket class may expand to before the
// pattern is matched literally instead.
const maxClassRunes = 4096

const (
	classOpen    = '['
	classClose   = ']'
	classNot     = '!'
	classBetween = '-'
	globEscape   = '\\'
)

var errClassTooWide = errors.New("character class expands past the supported size")

// errEmptyClass marks a pattern containing a class that admits no rune, such as "[z-a]".
var errEmptyClass = errors.New("character class matches nothing")

// RewritePattern normalizes a raw ignore pattern into the form that is matched:
// backslashes become forward slashes, and a pattern containing "**" loses its "**/"
// occurrences and one leading "/" before being wrapped in "*" on both sides.
// Patterns such as "foo/**" keep their "**", which then matches like "*".
func RewritePattern(rawPattern string) string {
	pattern := strings.ReplaceAll(rawPattern, backslash, separator)
	if !strings.Contains(pattern, doubleStar) {
		return pattern
	}
	pattern = strings.ReplaceAll(pattern, doubleStarSeparator, "")
	pattern = strings.TrimPrefix(pattern, separator)
	return anySequence + pattern + anySequence
}

type compiledGlob struct {
	pathGlob      glob.Glob
	directoryGlob glob.Glob
}

// globMatcher applies shell-glob semantics where "*" also crosses "/".
type globMatcher struct {
	patterns []compiledGlob
}

func newGlobMatcher(rawPatterns []string) *globMatcher {
	matcher := &globMatcher{patterns: make([]compiledGlob, 0, len(rawPatterns))}
	for _, rawPattern := range rawPatterns {
		pattern := RewritePattern(rawPattern)
		compiled := compiledGlob{pathGlob: compileShellGlob(pattern)}
		if trimmed := strings.TrimSuffix(pattern, separator); trimmed != pattern && trimmed != "" {
			compiled.directoryGlob = compileShellGlob(trimmed)
		}
		matcher.patterns = append(matcher.patterns, compiled)
	}
	return matcher
}

// Match checks the bare relative path and its leading-slash form against every pattern.
// Patterns ending in "/" also match a directory named by the pattern without the slash.
func (matcher *globMatcher) Match(relativePath string, isDirectory bool) bool {
	rootedPath := separator + relativePath
	for _, pattern := range matcher.patterns {
		if pattern.pathGlob.Match(relativePath) || pattern.pathGlob.Match(rootedPath) {
			return true
		}
		if isDirectory && pattern.directoryGlob != nil {
			if pattern.directoryGlob.Match(relativePath) || pattern.directoryGlob.Match(rootedPath) {
				return true
			}
		}
	}
	return false
}

// compileShellGlob compiles pattern without separators so "*" spans path segments.
// Brackets follow fnmatch rules before compiling; a pattern that still fails is
// matched by string equality.
func compileShellGlob(pattern string) glob.Glob {
	translated, translateErr := translateShellGlob(pattern)
	if errors.Is(translateErr, errEmptyClass) {
		return neverGlob{}
	}
	if translateErr == nil {
		if compiled, err := glob.Compile(translated); err == nil {
			return compiled
		}
	}
	return literalGlob(pattern)
}

// translateShellGlob rewrites a shell glob into gobwas syntax. Braces are literal,
// a "[" without a closing "]" is literal, a "]" opening a class is a member, and each
// class is expanded into an explicit rune list since gobwas accepts only one range
// or one list per class.
func translateShellGlob(pattern string) (string, error) {
	runes := []rune(pattern)
	var builder strings.Builder
	for index := 0; index < len(runes); index++ {
		current := runes[index]
		switch current {
		case '{', '}', globEscape:
			builder.WriteRune(globEscape)
			builder.WriteRune(current)
		case classOpen:
			closing := classEnd(runes, index)
			if closing < 0 {
				builder.WriteRune(globEscape)
				builder.WriteRune(classOpen)
				continue
			}
			class, err := translateClass(runes[index+1 : closing])
			if err != nil {
				return "", err
			}
			builder.WriteString(class)
			index = closing
		default:
			builder.WriteRune(current)
		}
	}
	return builder.String(), nil
}

// classEnd returns the index of the "]" closing the class opened at open, or -1.
func classEnd(runes []rune, open int) int {
	position := open + 1
	if position < len(runes) && runes[position] == classNot {
		position++
	}
	if position < len(runes) && runes[position] == classClose {
		position++
	}
	for ; position < len(runes); position++ {
		if runes[position] == classClose {
			return position
		}
	}
	return -1
}

func translateClass(body []rune) (string, error) {
	negated := body[0] == classNot
	if negated {
		body = body[1:]
	}

	seen := make(map[rune]struct{})
	members := make([]rune, 0, len(body))
	addMember := func(member rune) {
		if _, exists := seen[member]; !exists {
			seen[member] = struct{}{}
			members = append(members, member)
		}
	}
	for position := 0; position < len(body); {
		if position+2 < len(body) && body[position+1] == classBetween {
			low, high := body[position], body[position+2]
			position += 3
			if low > high {
				continue
			}
			if int(high-low)+1+len(members) > maxClassRunes {
				return "", errClassTooWide
			}
			for member := low; member <= high; member++ {
				addMember(member)
			}
			continue
		}
		addMember(body[position])
		position++
	}

	if len(members) == 0 {
		if negated {
			return "?", nil
		}
		return "", errEmptyClass
	}

	var builder strings.Builder
	builder.WriteRune(classOpen)
	if negated {
		builder.WriteRune(classNot)
	}
	// An escaped "-" in first position would read as a range, so it leads unescaped.
	if _, hasDash := seen[classBetween]; hasDash {
		builder.WriteRune(classBetween)
	}
	for _, member := range members {
		if member == classBetween {
			continue
		}
		builder.WriteRune(globEscape)
		builder.WriteRune(member)
	}
	builder.WriteRune(classClose)
	return builder.String(), nil
}

type literalGlob string

func (literal literalGlob) Match(candidate string) bool {
	return string(literal) == candidate
}

type neverGlob struct{}

func (neverGlob) Match(string) bool {
	return false
}
