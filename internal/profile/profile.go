// Package profile manages chart profiles in a terminal data folder.
package profile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/mtcli/internal/constants"
	"github.com/wizzomafizzo/mtcli/internal/platform/wsl"
)

// ErrExists is returned when creating a profile that is already present.
var ErrExists = errors.New("profile already exists")

// Manager creates and inspects profiles.
type Manager struct {
	fs    afero.Fs
	paths *wsl.Converter
}

// NewManager creates a profile manager.
func NewManager(fs afero.Fs, paths *wsl.Converter) *Manager {
	return &Manager{fs: fs, paths: paths}
}

// Dir returns the local directory of profile name.
func (m *Manager) Dir(ctx context.Context, dataDir, name string) string {
	return filepath.Join(m.paths.ToLocal(ctx, dataDir), constants.MQL5Dir, constants.ProfilesDir, constants.ChartsDir, name)
}

// Exists reports whether profile name is present.
func (m *Manager) Exists(ctx context.Context, dataDir, name string) bool {
	ok, err := afero.DirExists(m.fs, m.Dir(ctx, dataDir, name))
	return err == nil && ok
}

// Create copies the Default profile to name, or creates an empty profile when there is
// no Default. It returns the new directory, or ErrExists with the existing one.
func (m *Manager) Create(ctx context.Context, dataDir, name string) (string, error) {
	dst := m.Dir(ctx, dataDir, name)
	if m.Exists(ctx, dataDir, name) {
		return dst, ErrExists
	}
	src := m.Dir(ctx, dataDir, constants.DefaultProfile)
	if ok, _ := afero.DirExists(m.fs, src); ok {
		if err := copyTree(m.fs, src, dst); err != nil {
			return dst, fmt.Errorf("failed to copy default profile: %w", err)
		}
		return dst, nil
	}
	if err := m.fs.MkdirAll(dst, 0o750); err != nil {
		return dst, fmt.Errorf("failed to create profile: %w", err)
	}
	return dst, nil
}

func copyTree(fs afero.Fs, src, dst string) error {
	return afero.Walk(fs, src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if info.IsDir() {
			return fs.MkdirAll(target, 0o750)
		}
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return err
		}
		return afero.WriteFile(fs, target, data, info.Mode().Perm())
	})
}
