// Package config loads ignore files into pattern slices and reads application configuration.
package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/temirov/devkit/internal/utils"
)

const (
	commentPrefix         = "#"
	forwardSlash          = "/"
	backwardSlash         = `\`
	summaryCopySuffix     = "_project_summary copy.md"
	errorLoadIgnoreFormat = "loading %s from %s: %w"
)

// IgnoreSources holds the four pattern layers used by the summarizer.
// Every layer is already expanded with separator variants.
type IgnoreSources struct {
	GitIgnore       []string
	SummaryIgnore   []string
	StructureIgnore []string
	BuiltIn         []string
}

// LoadIgnoreFilePatterns reads an ignore file and returns its patterns.
// Blank lines and lines starting with "#" are skipped; remaining lines are trimmed.
// A missing file yields no patterns and no error.
//
// #nosec G304
func LoadIgnoreFilePatterns(ignoreFilePath string) ([]string, error) {
	fileHandle, openFileError := os.Open(ignoreFilePath)
	if openFileError != nil {
		if os.IsNotExist(openFileError) {
			return nil, nil
		}
		return nil, openFileError
	}
	defer fileHandle.Close()

	var patterns []string
	reader := bufio.NewReader(fileHandle)
	for {
		rawLine, readError := reader.ReadString('\n')
		trimmedLine := strings.TrimSpace(rawLine)
		if trimmedLine != "" && !strings.HasPrefix(rawLine, commentPrefix) {
			patterns = append(patterns, trimmedLine)
		}
		if readError == io.EOF {
			break
		}
		if readError != nil {
			return nil, readError
		}
	}
	return patterns, nil
}

// ExpandSeparatorVariants returns patterns with a backslash variant added after every
// pattern containing "/" and a forward-slash variant after every pattern containing "\".
func ExpandSeparatorVariants(patterns []string) []string {
	expanded := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		expanded = append(expanded, pattern)
		if strings.Contains(pattern, forwardSlash) {
			expanded = append(expanded, strings.ReplaceAll(pattern, forwardSlash, backwardSlash))
		}
		if strings.Contains(pattern, backwardSlash) {
			expanded = append(expanded, strings.ReplaceAll(pattern, backwardSlash, forwardSlash))
		}
	}
	return expanded
}

// BuiltInIgnorePatterns lists the patterns always excluded for a project named projectName:
// the summarizer's own ignore files, its configuration, previous summaries and the Git directory.
func BuiltInIgnorePatterns(projectName string) []string {
	return []string{
		utils.SummaryIgnoreFileName,
		utils.StructureIgnoreFileName,
		utils.ConfigFileName,
		projectName + utils.SummaryFileSuffix,
		projectName + summaryCopySuffix,
		utils.GitDirectoryName,
	}
}

// LoadIgnoreSources reads .gitignore, .summaryignore and .summarystructureignore from
// projectDirectory and combines the built-in list with extraPatterns.
func LoadIgnoreSources(projectDirectory string, extraPatterns []string) (IgnoreSources, error) {
	var sources IgnoreSources
	layers := []struct {
		fileName string
		target   *[]string
	}{
		{fileName: utils.GitIgnoreFileName, target: &sources.GitIgnore},
		{fileName: utils.SummaryIgnoreFileName, target: &sources.SummaryIgnore},
		{fileName: utils.StructureIgnoreFileName, target: &sources.StructureIgnore},
	}
	for _, layer := range layers {
		patterns, loadError := LoadIgnoreFilePatterns(filepath.Join(projectDirectory, layer.fileName))
		if loadError != nil {
			return IgnoreSources{}, fmt.Errorf(errorLoadIgnoreFormat, layer.fileName, projectDirectory, loadError)
		}
		*layer.target = ExpandSeparatorVariants(patterns)
	}

	builtIn := BuiltInIgnorePatterns(filepath.Base(filepath.Clean(projectDirectory)))
	for _, pattern := range extraPatterns {
		trimmedPattern := strings.TrimSpace(pattern)
		if trimmedPattern == "" || utils.ContainsString(builtIn, trimmedPattern) {
			continue
		}
		builtIn = append(builtIn, trimmedPattern)
	}
	sources.BuiltIn = ExpandSeparatorVariants(builtIn)
	return sources, nil
}
