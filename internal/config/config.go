// Package config resolves the terminal, editor and data folder locations from command
// line flags, MTCLI_* environment variables and the per-user settings file.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Setting keys, as stored in the settings file and accepted by "config set".
const (
	KeyTerminal   = "terminal"
	KeyMetaEditor = "metaeditor"
	KeyDataDir    = "data_dir"
	keyLogLevel   = "log_level"
)

// Keys describes every persisted setting.
var Keys = map[string]string{
	KeyTerminal:   "Path to terminal64.exe",
	KeyMetaEditor: "Path to metaeditor64.exe",
	KeyDataDir:    "Path to the terminal data folder",
}

// flagNames maps setting keys to the persistent flags that override them.
var flagNames = map[string]string{
	KeyTerminal:   "terminal",
	KeyMetaEditor: "metaeditor",
	KeyDataDir:    "data-dir",
	keyLogLevel:   "log-level",
}

// ErrMissingSetting is wrapped by errors for settings an operation cannot run without.
var ErrMissingSetting = errors.New("setting not configured")

// Settings are the resolved locations. Any field may be empty.
type Settings struct {
	Terminal   string `mapstructure:"terminal"`
	MetaEditor string `mapstructure:"metaeditor"`
	DataDir    string `mapstructure:"data_dir"`
	LogLevel   string `mapstructure:"log_level"`
}

// Get returns the value stored under a setting key.
func (s Settings) Get(key string) string {
	switch key {
	case KeyTerminal:
		return s.Terminal
	case KeyMetaEditor:
		return s.MetaEditor
	case KeyDataDir:
		return s.DataDir
	default:
		return ""
	}
}

// Require returns the value under key or an error explaining how to configure it.
func (s Settings) Require(key string) (string, error) {
	if v := s.Get(key); v != "" {
		return v, nil
	}
	return "", &MissingError{Key: key}
}

// MissingError reports an unresolved setting with the ways to provide it.
type MissingError struct {
	Key string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("%s not found: use --%s or 'mtcli config set %s <path>'",
		Keys[e.Key], flagNames[e.Key], e.Key)
}

func (*MissingError) Unwrap() error {
	return ErrMissingSetting
}

// SortedKeys returns the persisted setting keys alphabetically.
func SortedKeys() []string {
	keys := make([]string, 0, len(Keys))
	for k := range Keys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ValidateKey rejects keys that are not persisted settings.
func ValidateKey(key string) error {
	if _, ok := Keys[key]; !ok {
		return fmt.Errorf("invalid key %q (choose from %s)", key, strings.Join(SortedKeys(), ", "))
	}
	return nil
}
