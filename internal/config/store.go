package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/wizzomafizzo/mtcli/internal/constants"
)

// DefaultPath returns ~/.mtcli/config.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, constants.ConfigDirName, constants.ConfigFilename), nil
}

// Store reads and writes the JSON settings file.
type Store struct {
	fs   afero.Fs
	path string
}

// NewStore creates a store for the settings file at path.
func NewStore(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

// Path returns the settings file location.
func (s *Store) Path() string {
	return s.path
}

// Load returns the saved values. A missing or unreadable file yields no values.
func (s *Store) Load(ctx context.Context) map[string]string {
	values := map[string]string{}
	v, ok := s.read(ctx)
	if !ok {
		return values
	}
	for _, key := range SortedKeys() {
		if val := v.GetString(key); val != "" {
			values[key] = val
		}
	}
	return values
}

func (s *Store) read(ctx context.Context) (*viper.Viper, bool) {
	exists, err := afero.Exists(s.fs, s.path)
	if err != nil || !exists {
		return nil, false
	}
	v := viper.New()
	v.SetFs(s.fs)
	v.SetConfigFile(s.path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("path", s.path).Msg("Ignoring unreadable settings file")
		return nil, false
	}
	return v, true
}

// Save replaces the settings file with values.
func (s *Store) Save(values map[string]string) error {
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	v := viper.New()
	v.SetFs(s.fs)
	v.SetConfigType("json")
	for key, val := range values {
		v.Set(key, val)
	}
	if err := v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("failed to write settings to %s: %w", s.path, err)
	}
	return nil
}

// Set stores one value.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	values := s.Load(ctx)
	values[key] = value
	return s.Save(values)
}

// Unset removes one value, reporting whether it was present.
func (s *Store) Unset(ctx context.Context, key string) (bool, error) {
	if err := ValidateKey(key); err != nil {
		return false, err
	}
	values := s.Load(ctx)
	if _, ok := values[key]; !ok {
		return false, nil
	}
	delete(values, key)
	return true, s.Save(values)
}
