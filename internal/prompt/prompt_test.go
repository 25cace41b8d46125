package prompt_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/temirov/devkit/internal/prompt"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("broken input")
}

func TestProjectDirectory(testingHandle *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "explicit", input: "/srv/project\n", expected: "/srv/project"},
		{name: "trimmed", input: "  ./app  \r\n", expected: "./app"},
		{name: "blank", input: "\n", expected: "/work"},
		{name: "no newline", input: "proj", expected: "proj"},
		{name: "end of input", input: "", expected: "/work"},
	}
	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(subTest *testing.T) {
			var out bytes.Buffer
			answer, err := prompt.New(strings.NewReader(testCase.input), &out).ProjectDirectory("/work")
			if err != nil {
				subTest.Fatalf("ProjectDirectory error: %v", err)
			}
			if answer != testCase.expected {
				subTest.Fatalf("expected %q, got %q", testCase.expected, answer)
			}
			if out.String() != prompt.ProjectDirectoryPrompt {
				subTest.Fatalf("unexpected prompt %q", out.String())
			}
		})
	}
}

func TestProjectDirectoryReadError(testingHandle *testing.T) {
	if _, err := prompt.New(failingReader{}, nil).ProjectDirectory("/work"); err == nil {
		testingHandle.Fatalf("expected read error")
	}
}

func TestProjectDirectoryPipedFileIsQuiet(testingHandle *testing.T) {
	inputPath := filepath.Join(testingHandle.TempDir(), "answer.txt")
	if err := os.WriteFile(inputPath, []byte("piped\n"), 0o644); err != nil {
		testingHandle.Fatalf("write: %v", err)
	}
	inputFile, err := os.Open(inputPath)
	if err != nil {
		testingHandle.Fatalf("open: %v", err)
	}
	defer inputFile.Close()

	var out bytes.Buffer
	answer, promptErr := prompt.New(inputFile, &out).ProjectDirectory("/work")
	if promptErr != nil || answer != "piped" {
		testingHandle.Fatalf("unexpected answer %q (%v)", answer, promptErr)
	}
	if out.Len() != 0 {
		testingHandle.Fatalf("expected no prompt for file input, got %q", out.String())
	}
}
