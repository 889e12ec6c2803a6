package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Executor starts processes. Run attaches the process to the given streams and waits;
// a non-zero exit is reported through the code, not the error.
type Executor interface {
	Run(ctx context.Context, name string, args []string) (int, error)
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// OSExecutor runs real processes.
type OSExecutor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewOSExecutor creates an executor wired to the process's standard streams.
func NewOSExecutor() *OSExecutor {
	return &OSExecutor{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run starts name and waits for it to exit.
func (e *OSExecutor) Run(ctx context.Context, name string, args []string) (int, error) {
	// #nosec G204 -- executables come from the user's own settings
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, fmt.Errorf("failed to start %s: %w", name, err)
}

// Output runs name and returns its standard output.
func (*OSExecutor) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	// #nosec G204 -- helper binaries are fixed names
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return nil, fmt.Errorf("%s failed: %w", name, err)
	}
	return out, nil
}
