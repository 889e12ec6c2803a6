package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/wizzomafizzo/mtcli/internal/launcher"
	"github.com/wizzomafizzo/mtcli/internal/listener"
	"github.com/wizzomafizzo/mtcli/internal/profile"
)

// Bootstrap prepares the data folder for the command listener.
func (a *App) Bootstrap(ctx context.Context, force bool) error {
	dataDir, err := a.dataDir(ctx)
	if err != nil {
		return err
	}
	if err := a.bootstrap(ctx, dataDir, a.optionalMetaEditor(ctx), force); err != nil {
		return err
	}
	a.out.Tagged("bootstrap", "done.")
	return nil
}

func (a *App) bootstrap(ctx context.Context, dataDir, metaEditor string, force bool) error {
	results, err := a.installer.Bootstrap(ctx, dataDir, metaEditor, force)
	for _, res := range results {
		a.report(ctx, res)
	}
	if err != nil {
		return fmt.Errorf("bootstrap failed: %w", err)
	}
	return nil
}

func (a *App) report(ctx context.Context, res listener.Result) {
	if res.Written {
		a.out.Tagged("bootstrap", "source updated: %s", a.display(ctx, res.Path))
	} else {
		a.out.Tagged("bootstrap", "source kept: %s", a.display(ctx, res.Path))
	}
	switch {
	case res.CompileSkipped:
		a.out.Tagged("bootstrap", "metaeditor not configured, skipped compiling %s", a.display(ctx, res.Path))
	case res.Compiled:
		a.out.Tagged("bootstrap", "compiled: %s", a.display(ctx, launcher.ReplaceExt(res.Path, ".ex5")))
	case res.LogPath != "":
		a.out.Tagged("bootstrap", "compilation failed (code %d), see %s", res.ExitCode, a.display(ctx, res.LogPath))
	}
}

// ListenerInstall overwrites and compiles the listener sources.
func (a *App) ListenerInstall(ctx context.Context) error {
	dataDir, err := a.dataDir(ctx)
	if err != nil {
		return err
	}
	metaEditor, err := a.metaEditor(ctx)
	if err != nil {
		return err
	}
	return a.bootstrap(ctx, dataDir, metaEditor, true)
}

// ScriptInstall overwrites and compiles the template script, returning the
// editor's exit code.
func (a *App) ScriptInstall(ctx context.Context) (int, error) {
	metaEditor, err := a.metaEditor(ctx)
	if err != nil {
		return 1, err
	}
	dataDir, err := a.dataDir(ctx)
	if err != nil {
		return 1, err
	}
	res, err := a.installer.Ensure(ctx, dataDir, listener.TemplateScript,
		listener.InstallOptions{MetaEditor: metaEditor, Force: true, Compile: true})
	if err != nil {
		return 1, err
	}
	a.report(ctx, res)
	return res.ExitCode, nil
}

// ProfileCreate creates a chart profile from the Default one.
func (a *App) ProfileCreate(ctx context.Context, name string) error {
	dataDir, err := a.dataDir(ctx)
	if err != nil {
		return err
	}
	dir, err := a.profiles.Create(ctx, dataDir, name)
	if errors.Is(err, profile.ErrExists) {
		a.out.Tagged("=", "profile '%s' already exists at %s", name, a.display(ctx, dir))
		return nil
	}
	if err != nil {
		return err
	}
	a.out.Success("profile created at: %s", a.display(ctx, dir))
	return nil
}
