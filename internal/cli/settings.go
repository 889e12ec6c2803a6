package cli

import (
	"context"
	"fmt"

	"github.com/wizzomafizzo/mtcli/internal/config"
	"github.com/wizzomafizzo/mtcli/internal/prompt"
)

const notFound = "(not found)"

// Detect prints the resolved terminal, editor and data folder.
func (a *App) Detect(ctx context.Context) {
	s := a.Settings(ctx)
	env := "native"
	if a.paths.Env().WSL {
		env = "WSL"
	}
	rows := [][]string{
		{"Environment", env},
		{"Terminal", orNotFound(s.Terminal)},
		{"MetaEditor", orNotFound(s.MetaEditor)},
		{"DataDir", orNotFound(s.DataDir)},
	}
	a.out.Table([]string{"Detect", "Value"}, rows)
	for _, key := range []string{config.KeyTerminal, config.KeyMetaEditor, config.KeyDataDir} {
		if s.Get(key) == "" {
			_, err := s.Require(key)
			a.out.Fail("%v", err)
		}
	}
}

func orNotFound(v string) string {
	if v == "" {
		return notFound
	}
	return v
}

// ConfigShow prints the saved settings.
func (a *App) ConfigShow(ctx context.Context) {
	values := a.store.Load(ctx)
	if len(values) == 0 {
		a.out.Tagged("config", "no values saved, use 'mtcli config set <key> <value>'")
		return
	}
	rows := make([][]string, 0, len(config.Keys))
	for _, key := range config.SortedKeys() {
		v := values[key]
		if v == "" {
			v = "(not set)"
		}
		rows = append(rows, []string{key, v})
	}
	a.out.Table([]string{"Key", "Value"}, rows)
	a.out.Info("stored in %s", a.store.Path())
}

// ConfigSet saves key. Setting data_dir also prepares that data folder; a failed
// preparation is reported but does not fail the command.
func (a *App) ConfigSet(ctx context.Context, key, value string) error {
	if err := config.ValidateKey(key); err != nil {
		return err
	}
	if err := a.store.Set(ctx, key, value); err != nil {
		return err
	}
	a.out.Tagged("config", "%s set to: %s", key, value)
	if key == config.KeyDataDir {
		a.autoBootstrap(ctx, value)
	}
	return nil
}

func (a *App) autoBootstrap(ctx context.Context, dataDir string) {
	if err := a.bootstrap(ctx, dataDir, a.optionalMetaEditor(ctx), false); err != nil {
		a.out.Tagged("bootstrap", "failed to prepare the command listener automatically: %v", err)
	}
}

// ConfigUnset removes key from the settings file.
func (a *App) ConfigUnset(ctx context.Context, key string) error {
	if err := config.ValidateKey(key); err != nil {
		return err
	}
	removed, err := a.store.Unset(ctx, key)
	if err != nil {
		return err
	}
	if removed {
		a.out.Tagged("config", "%s removed.", key)
	} else {
		a.out.Tagged("config", "%s was already empty.", key)
	}
	return nil
}

// ConfigInit asks for every setting, offering the saved or detected value, and saves
// the answers. Empty answers remove the setting.
func (a *App) ConfigInit(ctx context.Context, p prompt.Prompter) error {
	values := a.store.Load(ctx)
	detected := a.Settings(ctx)
	for _, key := range config.SortedKeys() {
		def := values[key]
		if def == "" {
			def = detected.Get(key)
		}
		answer, err := prompt.Edit(p, fmt.Sprintf("%s (%s)", key, config.Keys[key]), def)
		if err != nil {
			return err
		}
		if answer == "" {
			delete(values, key)
			continue
		}
		values[key] = answer
	}
	if err := a.store.Save(values); err != nil {
		return err
	}
	a.out.Success("settings saved to %s", a.store.Path())
	if dir := values[config.KeyDataDir]; dir != "" {
		a.autoBootstrap(ctx, dir)
	}
	return nil
}
