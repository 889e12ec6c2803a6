// Package launcher starts the terminal and editor executables, translating arguments
// to Windows paths when running under WSL, and records each run.
package launcher

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/wizzomafizzo/mtcli/internal/history"
	"github.com/wizzomafizzo/mtcli/internal/platform/wsl"
)

// Recorder stores finished runs.
type Recorder interface {
	Record(ctx context.Context, e history.Entry) error
}

// Launcher runs Windows executables on Windows and WSL hosts alike.
type Launcher struct {
	exec     Executor
	paths    *wsl.Converter
	recorder Recorder
	now      func() time.Time
}

// New creates a launcher. recorder may be nil.
func New(exec Executor, paths *wsl.Converter, recorder Recorder) *Launcher {
	return &Launcher{exec: exec, paths: paths, recorder: recorder, now: time.Now}
}

// RunWindows runs a Windows executable and returns its exit code. Under WSL the
// executable path is made local and every /key:value argument whose value is a POSIX
// path gets a Windows value, since the program cannot resolve WSL paths itself.
func (l *Launcher) RunWindows(ctx context.Context, exe string, args []string) (int, error) {
	if l.paths.Env().WSL {
		exe = l.paths.ToLocal(ctx, exe)
		args = l.TranslateArgs(ctx, args)
	}
	return l.Run(ctx, exe, args)
}

// TranslateArgs converts the value of /key:/posix/path arguments to Windows form.
func (l *Launcher) TranslateArgs(ctx context.Context, args []string) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		key, value, found := strings.Cut(a, ":")
		if !strings.HasPrefix(a, "/") || !found || !strings.HasPrefix(value, "/") {
			out = append(out, a)
			continue
		}
		out = append(out, key+":"+l.paths.ToWindows(ctx, value))
	}
	return out
}

// Run starts name as given, waits, and records the outcome.
func (l *Launcher) Run(ctx context.Context, name string, args []string) (int, error) {
	log := zerolog.Ctx(ctx)
	log.Debug().Str("exe", name).Strs("args", args).Msg("Executing external program")

	started := l.now()
	code, err := l.exec.Run(ctx, name, args)
	if err != nil {
		log.Error().Str("exe", name).Strs("args", args).Err(err).Msg("External program failed to start")
		return code, err
	}
	elapsed := l.now().Sub(started)

	log.Debug().Str("exe", name).Int("exit_code", code).Dur("elapsed", elapsed).Msg("External program finished")

	if l.recorder != nil {
		entry := history.Entry{
			Executable: name,
			Args:       args,
			ExitCode:   code,
			StartedAt:  started,
			Duration:   elapsed,
		}
		if recErr := l.recorder.Record(ctx, entry); recErr != nil {
			log.Warn().Err(recErr).Msg("Failed to record run history")
		}
	}
	return code, nil
}

// Output runs a helper and returns its standard output without recording it.
func (l *Launcher) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return l.exec.Output(ctx, name, args...)
}
