package cli

import (
	"context"

	"github.com/wizzomafizzo/mtcli/internal/constants"
	"github.com/wizzomafizzo/mtcli/internal/ini"
	"github.com/wizzomafizzo/mtcli/internal/launcher"
)

// OpenOptions select what the terminal opens with.
type OpenOptions struct {
	Profile          string
	Template         string
	Symbol           string
	Period           string
	Expert           string
	ExpertParameters string
	Script           string
	ScriptParameters string
	// INI is where the generated [StartUp] file goes, ./start.ini by default.
	INI      string
	Shutdown bool
	Portable bool
}

// Open starts the terminal, writing a [StartUp] file first when a chart, template or
// program was requested.
func (a *App) Open(ctx context.Context, opts OpenOptions) (int, error) {
	terminal, err := a.terminal(ctx)
	if err != nil {
		return 1, err
	}
	if opts.Profile != "" {
		dataDir, _ := a.dataDir(ctx)
		if dataDir == "" || !a.profiles.Exists(ctx, dataDir, opts.Profile) {
			a.out.Warn("profile '%s' not found; the terminal will still try to open it", opts.Profile)
		}
	}

	period := ""
	if opts.Period != "" {
		if period, err = ini.Timeframe(opts.Period); err != nil {
			return 1, err
		}
	}
	shutdown := opts.Shutdown
	startup := ini.StartUp{
		Expert:           opts.Expert,
		Script:           opts.Script,
		ExpertParameters: opts.ExpertParameters,
		ScriptParameters: opts.ScriptParameters,
		Symbol:           opts.Symbol,
		Period:           period,
		Template:         opts.Template,
		Shutdown:         &shutdown,
	}

	var args []string
	if !startup.Empty() {
		path := a.absPath(orDefault(opts.INI, "start.ini"))
		if err := ini.WriteFile(a.fs, path, startup.String()); err != nil {
			return 1, err
		}
		args = append(args, launcher.ConfigArg(path))
	}
	if opts.Profile != "" {
		args = append(args, launcher.ProfileArg(opts.Profile))
	}
	if opts.Portable {
		args = append(args, launcher.PortableArg)
	}
	return a.launcher.RunWindows(ctx, terminal, args)
}

// ListenerRun starts the terminal with the listener expert on one chart.
func (a *App) ListenerRun(ctx context.Context, symbol, period, iniPath string) (int, error) {
	terminal, err := a.terminal(ctx)
	if err != nil {
		return 1, err
	}
	tf, err := ini.Timeframe(period)
	if err != nil {
		return 1, err
	}
	shutdown := false
	startup := ini.StartUp{
		Expert:   constants.ListenerExpert,
		Symbol:   symbol,
		Period:   tf,
		Shutdown: &shutdown,
	}
	path := a.absPath(orDefault(iniPath, "listener.ini"))
	if err := ini.WriteFile(a.fs, path, startup.String()); err != nil {
		return 1, err
	}
	return a.launcher.RunWindows(ctx, terminal, []string{launcher.ConfigArg(path)})
}

// Compile runs the editor on file.
func (a *App) Compile(ctx context.Context, file, log string, syntaxOnly bool) (int, error) {
	metaEditor, err := a.metaEditor(ctx)
	if err != nil {
		return 1, err
	}
	if log != "" {
		log = a.absPath(log)
	}
	return a.launcher.RunWindows(ctx, metaEditor, launcher.CompileArgs(a.absPath(file), log, syntaxOnly))
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
