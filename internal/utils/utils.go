// Package utils contains general helper functions shared by the devkit tools.
package utils

import (
	"path/filepath"
	"strings"
)

// File and directory names recognized across the project.
const (
	// GitIgnoreFileName is the name of the Git ignore file.
	GitIgnoreFileName = ".gitignore"
	// SummaryIgnoreFileName lists patterns excluded from the contents section.
	SummaryIgnoreFileName = ".summaryignore"
	// StructureIgnoreFileName lists patterns excluded from the structure section.
	StructureIgnoreFileName = ".summarystructureignore"
	// GitDirectoryName is the name of the Git repository directory.
	GitDirectoryName = ".git"
	// NodeModulesDirectoryName is the dependency cache directory of JavaScript projects.
	NodeModulesDirectoryName = "node_modules"
	// DistDirectoryName is the conventional build output directory.
	DistDirectoryName = "dist"
	// ConfigFileName is the name of the local configuration file.
	ConfigFileName = ".devkit.yaml"
	// GlobalConfigDirectoryName is the directory under the user's home holding the global configuration.
	GlobalConfigDirectoryName = ".devkit"
	// GlobalConfigFileName is the name of the global configuration file.
	GlobalConfigFileName = "config.yaml"
	// SummaryFileSuffix completes the summary document name after the project name.
	SummaryFileSuffix = "_project_summary.md"
)

const (
	forwardSlash  = "/"
	backwardSlash = `\`
)

// DeduplicatePatterns removes duplicate patterns from a slice while preserving order.
// The first occurrence of each unique pattern is kept.
func DeduplicatePatterns(patterns []string) []string {
	encounteredPatterns := make(map[string]struct{}, len(patterns))
	result := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		if _, exists := encounteredPatterns[pattern]; !exists {
			encounteredPatterns[pattern] = struct{}{}
			result = append(result, pattern)
		}
	}
	return result
}

// ContainsString checks if a slice of strings contains a specific target string.
func ContainsString(stringSlice []string, targetString string) bool {
	for _, currentString := range stringSlice {
		if currentString == targetString {
			return true
		}
	}
	return false
}

// RelativePathOrSelf calculates the forward-slash relative path from root to fullPath.
// Returns "." if fullPath and root resolve to the same directory and the
// slash-normalized fullPath if no relative path exists.
func RelativePathOrSelf(fullPath, root string) string {
	cleanPath := filepath.Clean(fullPath)
	cleanRoot := filepath.Clean(root)
	if absoluteRoot, err := filepath.Abs(cleanRoot); err == nil && filepath.IsAbs(cleanPath) {
		cleanRoot = absoluteRoot
	}

	if cleanPath == cleanRoot {
		return "."
	}

	relativePath, relErr := filepath.Rel(cleanRoot, cleanPath)
	if relErr != nil {
		return NormalizeSeparators(cleanPath)
	}
	return NormalizeSeparators(relativePath)
}

// NormalizeSeparators rewrites every backslash in value as a forward slash.
func NormalizeSeparators(value string) string {
	return strings.ReplaceAll(filepath.ToSlash(value), backwardSlash, forwardSlash)
}
