// Package prompt asks the operator for the dataset root folder.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

type (
	Prompter interface {
		Prompt(question string) (string, error)
	}

	LinePrompter struct {
		in  *bufio.Reader
		out io.Writer
	}
)

const RootQuestion = "Enter path to folder containing scenes and templates folder: "

var (
	ErrNoInput       = errors.New("no input")
	ErrPromptAborted = errors.New("prompt aborted")
)

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Prompt writes question and reads one line. Only the line terminator is removed from the answer.
// Non-nil returned error wraps [ErrNoInput] when the input ends before any character is read.
func (p *LinePrompter) Prompt(question string) (answer string, err error) {
	if _, err = io.WriteString(p.out, question); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := p.in.ReadString('\n')
	if errors.Is(err, io.EOF) && line == "" {
		return "", fmt.Errorf("%w: input closed before an answer was given", ErrNoInput)
	} else if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return line, nil
}
