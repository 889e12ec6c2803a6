// Package cli implements the mtcli operations on top of the lower level packages.
// Every operation prints its progress through a console.Printer and returns the
// exit code of the external program it ran, if any.
package cli

import (
	"context"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/mtcli/internal/config"
	"github.com/wizzomafizzo/mtcli/internal/console"
	"github.com/wizzomafizzo/mtcli/internal/history"
	"github.com/wizzomafizzo/mtcli/internal/launcher"
	"github.com/wizzomafizzo/mtcli/internal/listener"
	"github.com/wizzomafizzo/mtcli/internal/locate"
	"github.com/wizzomafizzo/mtcli/internal/logs"
	"github.com/wizzomafizzo/mtcli/internal/platform/wsl"
	"github.com/wizzomafizzo/mtcli/internal/profile"
	"github.com/wizzomafizzo/mtcli/internal/service"
)

// Pauses before tailing logs, giving the listener expert time to pick up a command.
const (
	settleDelay       = 500 * time.Millisecond
	expertSettleDelay = time.Second
)

// HistoryReader lists recorded runs.
type HistoryReader interface {
	Recent(ctx context.Context, limit int) ([]history.Entry, error)
}

// AppOptions contains configuration options for creating an App
type AppOptions struct {
	Fs       afero.Fs
	Out      io.Writer
	Paths    *wsl.Converter
	Executor launcher.Executor
	Recorder launcher.Recorder
	History  HistoryReader
	Store    *config.Store
	Locator  *locate.Locator
	Now      func() time.Time
	// Sleep waits between sending a chart command and reading logs.
	Sleep    func(ctx context.Context, d time.Duration)
	Settings config.Settings
	WorkDir  string
}

// App runs mtcli operations.
type App struct {
	fs        afero.Fs
	out       *console.Printer
	paths     *wsl.Converter
	launcher  *launcher.Launcher
	history   HistoryReader
	store     *config.Store
	locator   *locate.Locator
	installer *listener.Installer
	client    *listener.Client
	tailer    *logs.Tailer
	profiles  *profile.Manager
	service   *service.Controller
	now       func() time.Time
	sleep     func(ctx context.Context, d time.Duration)
	settings  config.Settings
	workDir   string
}

// NewApp creates an App. Fs, Out, Paths, Executor and Store are required.
func NewApp(opts AppOptions) *App {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = sleepContext
	}
	locator := opts.Locator
	if locator == nil {
		locator = locate.NewFromEnv(opts.Fs, opts.Paths)
	}
	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}

	run := launcher.New(opts.Executor, opts.Paths, opts.Recorder)
	return &App{
		fs:        opts.Fs,
		out:       console.New(opts.Out),
		paths:     opts.Paths,
		launcher:  run,
		history:   opts.History,
		store:     opts.Store,
		locator:   locator,
		installer: listener.NewInstaller(opts.Fs, opts.Paths, run),
		client:    listener.NewClient(opts.Fs, opts.Paths),
		tailer:    logs.NewTailer(opts.Fs, opts.Paths, now),
		profiles:  profile.NewManager(opts.Fs, opts.Paths),
		service:   service.NewController(opts.Fs, opts.Paths, run),
		now:       now,
		sleep:     sleep,
		settings:  opts.Settings,
		workDir:   workDir,
	}
}

func sleepContext(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// Settings returns the configured values with unset locations filled in from the
// default install locations when they can be found.
func (a *App) Settings(ctx context.Context) config.Settings {
	s := a.settings
	if s.Terminal == "" {
		s.Terminal, _ = a.locator.Terminal(ctx)
	}
	if s.MetaEditor == "" {
		s.MetaEditor, _ = a.locator.MetaEditor(ctx)
	}
	if s.DataDir == "" {
		s.DataDir, _ = a.locator.DataDir(ctx)
	}
	return s
}

func (a *App) terminal(ctx context.Context) (string, error) {
	return a.require(ctx, config.KeyTerminal, a.locator.Terminal)
}

func (a *App) metaEditor(ctx context.Context) (string, error) {
	return a.require(ctx, config.KeyMetaEditor, a.locator.MetaEditor)
}

func (a *App) dataDir(ctx context.Context) (string, error) {
	return a.require(ctx, config.KeyDataDir, a.locator.DataDir)
}

// optionalMetaEditor returns the editor path or "" when it cannot be found.
func (a *App) optionalMetaEditor(ctx context.Context) string {
	me, _ := a.metaEditor(ctx)
	return me
}

func (a *App) require(ctx context.Context, key string, guess func(context.Context) (string, error)) (string, error) {
	if v := a.settings.Get(key); v != "" {
		return v, nil
	}
	if v, err := guess(ctx); err == nil {
		return v, nil
	}
	return a.settings.Require(key)
}

// absPath resolves p against the working directory.
func (a *App) absPath(p string) string {
	if filepath.IsAbs(p) || wsl.HasDrive(p) {
		return p
	}
	return filepath.Join(a.workDir, p)
}

func (a *App) display(ctx context.Context, p string) string {
	return a.paths.Display(ctx, p)
}
