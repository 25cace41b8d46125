package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/temirov/devkit/internal/utils"
)

// writeTestFile creates a file with the specified content, failing the test on error.
func writeTestFile(testingHandle *testing.T, filePath string, content string) {
	testingHandle.Helper()
	if writeError := os.WriteFile(filePath, []byte(content), 0o644); writeError != nil {
		testingHandle.Fatalf("failed to write %s: %v", filePath, writeError)
	}
}

// TestLoadIgnoreFilePatternsSkipsCommentsAndBlanks verifies line filtering and trimming.
func TestLoadIgnoreFilePatternsSkipsCommentsAndBlanks(testingHandle *testing.T) {
	ignoreFilePath := filepath.Join(testingHandle.TempDir(), utils.GitIgnoreFileName)
	writeTestFile(testingHandle, ignoreFilePath, "# comment\n\n*.log  \n   \n  build/\n #indented\n")

	patterns, loadError := LoadIgnoreFilePatterns(ignoreFilePath)
	if loadError != nil {
		testingHandle.Fatalf("LoadIgnoreFilePatterns failed: %v", loadError)
	}
	expected := []string{"*.log", "build/", "#indented"}
	if !reflect.DeepEqual(patterns, expected) {
		testingHandle.Fatalf("unexpected patterns: got %v want %v", patterns, expected)
	}
}

// TestLoadIgnoreFilePatternsMissingFile verifies that a missing file yields no patterns.
func TestLoadIgnoreFilePatternsMissingFile(testingHandle *testing.T) {
	patterns, loadError := LoadIgnoreFilePatterns(filepath.Join(testingHandle.TempDir(), "absent"))
	if loadError != nil {
		testingHandle.Fatalf("expected no error, got %v", loadError)
	}
	if len(patterns) != 0 {
		testingHandle.Fatalf("expected no patterns, got %v", patterns)
	}
}

// TestLoadIgnoreFilePatternsLongLines verifies lines beyond the default scanner limit and a final
// line without a newline are kept.
func TestLoadIgnoreFilePatternsLongLines(testingHandle *testing.T) {
	ignoreFilePath := filepath.Join(testingHandle.TempDir(), utils.GitIgnoreFileName)
	longPattern := strings.Repeat("a", 128*1024) + ".txt"
	writeTestFile(testingHandle, ignoreFilePath, "first\r\n"+longPattern+"\nlast")

	patterns, loadError := LoadIgnoreFilePatterns(ignoreFilePath)
	if loadError != nil {
		testingHandle.Fatalf("LoadIgnoreFilePatterns failed: %v", loadError)
	}
	expected := []string{"first", longPattern, "last"}
	if !reflect.DeepEqual(patterns, expected) {
		testingHandle.Fatalf("unexpected patterns: got %d entries", len(patterns))
	}
}

// TestExpandSeparatorVariants verifies that separator variants follow their source pattern.
func TestExpandSeparatorVariants(testingHandle *testing.T) {
	testCases := []struct {
		name     string
		input    []string
		expected []string
	}{
		{name: "no separators", input: []string{"*.log"}, expected: []string{"*.log"}},
		{name: "forward slash", input: []string{"a/b/"}, expected: []string{"a/b/", `a\b\`}},
		{name: "backslash", input: []string{`docs\tmp`}, expected: []string{`docs\tmp`, "docs/tmp"}},
		{name: "mixed", input: []string{`a/b\c`}, expected: []string{`a/b\c`, `a\b\c`, "a/b/c"}},
	}
	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(t *testing.T) {
			actual := ExpandSeparatorVariants(testCase.input)
			if !reflect.DeepEqual(actual, testCase.expected) {
				t.Fatalf("got %v want %v", actual, testCase.expected)
			}
		})
	}
}

// TestLoadIgnoreSourcesReadsAllLayers verifies each ignore file lands in its own layer.
func TestLoadIgnoreSourcesReadsAllLayers(testingHandle *testing.T) {
	projectDirectory := filepath.Join(testingHandle.TempDir(), "demo")
	if makeDirErr := os.MkdirAll(projectDirectory, 0o755); makeDirErr != nil {
		testingHandle.Fatalf("failed to create project directory: %v", makeDirErr)
	}
	writeTestFile(testingHandle, filepath.Join(projectDirectory, utils.GitIgnoreFileName), "bin/\n")
	writeTestFile(testingHandle, filepath.Join(projectDirectory, utils.SummaryIgnoreFileName), "*.md\n")
	writeTestFile(testingHandle, filepath.Join(projectDirectory, utils.StructureIgnoreFileName), "assets\n")

	sources, loadError := LoadIgnoreSources(projectDirectory, []string{"  ", "*.lock", utils.GitDirectoryName})
	if loadError != nil {
		testingHandle.Fatalf("LoadIgnoreSources failed: %v", loadError)
	}
	if !reflect.DeepEqual(sources.GitIgnore, []string{"bin/", `bin\`}) {
		testingHandle.Fatalf("unexpected gitignore layer: %v", sources.GitIgnore)
	}
	if !reflect.DeepEqual(sources.SummaryIgnore, []string{"*.md"}) {
		testingHandle.Fatalf("unexpected summary layer: %v", sources.SummaryIgnore)
	}
	if !reflect.DeepEqual(sources.StructureIgnore, []string{"assets"}) {
		testingHandle.Fatalf("unexpected structure layer: %v", sources.StructureIgnore)
	}
	expectedBuiltIn := append(BuiltInIgnorePatterns("demo"), "*.lock")
	if !reflect.DeepEqual(sources.BuiltIn, expectedBuiltIn) {
		testingHandle.Fatalf("unexpected built-in layer: got %v want %v", sources.BuiltIn, expectedBuiltIn)
	}
}

// TestLoadIgnoreSourcesWithoutFiles verifies that missing ignore files are not an error.
func TestLoadIgnoreSourcesWithoutFiles(testingHandle *testing.T) {
	sources, loadError := LoadIgnoreSources(testingHandle.TempDir(), nil)
	if loadError != nil {
		testingHandle.Fatalf("LoadIgnoreSources failed: %v", loadError)
	}
	if len(sources.GitIgnore)+len(sources.SummaryIgnore)+len(sources.StructureIgnore) != 0 {
		testingHandle.Fatalf("expected empty file layers, got %+v", sources)
	}
	if len(sources.BuiltIn) == 0 {
		testingHandle.Fatalf("expected built-in patterns")
	}
}
