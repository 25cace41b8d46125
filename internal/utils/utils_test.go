package utils_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/temirov/devkit/internal/utils"
)

// textFileName defines the name of the text file used in tests.
const textFileName = "sample.txt"

// TestDeduplicatePatterns verifies that DeduplicatePatterns removes duplicate patterns.
func TestDeduplicatePatterns(testingInstance *testing.T) {
	testCases := []struct {
		testName string
		patterns []string
		expected []string
	}{
		{
			testName: "removes duplicates",
			patterns: []string{"a", "b", "a"},
			expected: []string{"a", "b"},
		},
		{
			testName: "keeps unique",
			patterns: []string{"a", "b"},
			expected: []string{"a", "b"},
		},
		{
			testName: "empty input",
			patterns: nil,
			expected: []string{},
		},
	}
	for index, testCase := range testCases {
		actual := utils.DeduplicatePatterns(testCase.patterns)
		if len(actual) != len(testCase.expected) {
			testingInstance.Errorf("case %d (%s): expected length %d, got %d", index, testCase.testName, len(testCase.expected), len(actual))
			continue
		}
		for position, value := range actual {
			if value != testCase.expected[position] {
				testingInstance.Errorf("case %d (%s): expected %s at position %d, got %s", index, testCase.testName, testCase.expected[position], position, value)
			}
		}
	}
}

// TestContainsString verifies that ContainsString locates strings in a slice.
func TestContainsString(testingInstance *testing.T) {
	if !utils.ContainsString([]string{"alpha", "beta"}, "beta") {
		testingInstance.Errorf("expected beta to be found")
	}
	if utils.ContainsString([]string{"alpha", "beta"}, "gamma") {
		testingInstance.Errorf("expected gamma to be missing")
	}
}

// TestRelativePathOrSelf verifies relative path calculations.
func TestRelativePathOrSelf(testingInstance *testing.T) {
	temporaryRoot := testingInstance.TempDir()
	nestedPath := filepath.Join(temporaryRoot, "nested", textFileName)
	testCases := []struct {
		testName string
		fullPath string
		root     string
		expected string
	}{
		{
			testName: "root path returns dot",
			fullPath: temporaryRoot,
			root:     temporaryRoot,
			expected: ".",
		},
		{
			testName: "nested path uses forward slashes",
			fullPath: nestedPath,
			root:     temporaryRoot,
			expected: "nested/" + textFileName,
		},
	}
	for index, testCase := range testCases {
		actual := utils.RelativePathOrSelf(testCase.fullPath, testCase.root)
		if actual != testCase.expected {
			testingInstance.Errorf("case %d (%s): expected %s, got %s", index, testCase.testName, testCase.expected, actual)
		}
	}
}

// TestIsFileBinary verifies that only the leading bytes are inspected for NUL bytes.
func TestIsFileBinary(testingInstance *testing.T) {
	temporaryRoot := testingInstance.TempDir()
	testCases := []struct {
		testName string
		content  []byte
		expected bool
	}{
		{testName: "plain text", content: []byte("hello world"), expected: false},
		{testName: "empty file", content: nil, expected: false},
		{testName: "leading null", content: []byte{'a', 0, 'b'}, expected: true},
		{testName: "null at last sniffed byte", content: append([]byte(strings.Repeat("x", utils.SniffLength-1)), 0), expected: true},
		{testName: "null after sniff window", content: append([]byte(strings.Repeat("x", utils.SniffLength)), 0), expected: false},
	}
	for index, testCase := range testCases {
		filePath := filepath.Join(temporaryRoot, testCase.testName)
		if writeError := os.WriteFile(filePath, testCase.content, 0o600); writeError != nil {
			testingInstance.Fatalf("failed to write %s: %v", filePath, writeError)
		}
		actual, sniffError := utils.IsFileBinary(filePath)
		if sniffError != nil {
			testingInstance.Fatalf("case %d (%s): unexpected error %v", index, testCase.testName, sniffError)
		}
		if actual != testCase.expected {
			testingInstance.Errorf("case %d (%s): expected %t, got %t", index, testCase.testName, testCase.expected, actual)
		}
	}

	if _, missingError := utils.IsFileBinary(filepath.Join(temporaryRoot, "missing")); missingError == nil {
		testingInstance.Errorf("expected error for missing file")
	}
}

func TestFormatFileSize(t *testing.T) {
	testCases := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "negative", bytes: -1, expected: "0b"},
		{name: "zero", bytes: 0, expected: "0b"},
		{name: "bytes", bytes: 512, expected: "512b"},
		{name: "one kilobyte", bytes: 1024, expected: "1kb"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5kb"},
		{name: "ten megabytes", bytes: 10 * 1024 * 1024, expected: "10mb"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if result := utils.FormatFileSize(testCase.bytes); result != testCase.expected {
				t.Fatalf("expected %s, got %s", testCase.expected, result)
			}
		})
	}
}
