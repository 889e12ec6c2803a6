// Package prompt reads interactive answers from the terminal.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"golang.org/x/term"
)

// ErrCancelled is returned when the user aborts with Ctrl+C or Ctrl+D.
var ErrCancelled = errors.New("cancelled by user")

// Prompter interface wraps basic prompting functionality for testability
type Prompter interface {
	PromptWithSuggestion(prompt, text string, pos int) (string, error)
	Close() error
}

// LinerPrompter wraps liner.State to implement Prompter interface
type LinerPrompter struct {
	*liner.State
}

// NewLinerPrompter creates a new liner-based prompter
func NewLinerPrompter() Prompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &LinerPrompter{State: line}
}

// Interactive reports whether stdin is a terminal a prompt can be shown on.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Edit shows label with def pre-filled for editing and returns the answer.
func Edit(prompter Prompter, label, def string) (string, error) {
	result, err := prompter.PromptWithSuggestion(color.CyanString(label+": "), def, -1)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("text input failed: %w", err)
	}
	return result, nil
}
