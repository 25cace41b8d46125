// Package prompt asks the user for the project directory.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	// ProjectDirectoryPrompt is printed before reading the directory.
	ProjectDirectoryPrompt = "Enter the project directory path (leave blank for current directory): "

	errorReadAnswerFormat = "reading project directory: %w"
)

// Prompter reads answers from In and writes prompts to Out.
type Prompter struct {
	In  io.Reader
	Out io.Writer
}

// New returns a Prompter over the given streams.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{In: in, Out: out}
}

// ProjectDirectory reads one line naming the project directory.
// A blank answer or end of input selects workingDirectory.
// The prompt is suppressed when In is a file that is not a terminal, so piped input stays quiet.
func (prompter *Prompter) ProjectDirectory(workingDirectory string) (string, error) {
	if prompter.shouldPrint() {
		fmt.Fprint(prompter.Out, ProjectDirectoryPrompt)
	}
	answer, readError := bufio.NewReader(prompter.In).ReadString('\n')
	if readError != nil && !errors.Is(readError, io.EOF) {
		return "", fmt.Errorf(errorReadAnswerFormat, readError)
	}
	trimmed := strings.TrimSpace(answer)
	if trimmed == "" {
		return workingDirectory, nil
	}
	return trimmed, nil
}

func (prompter *Prompter) shouldPrint() bool {
	if prompter.Out == nil {
		return false
	}
	if file, isFile := prompter.In.(*os.File); isFile {
		return term.IsTerminal(int(file.Fd()))
	}
	return true
}
