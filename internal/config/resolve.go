package config

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/wizzomafizzo/mtcli/internal/constants"
)

// Resolve layers flags over MTCLI_* environment variables over the settings file.
// flags may be nil; only flags the user actually set take precedence.
func Resolve(ctx context.Context, store *Store, flags *pflag.FlagSet) (Settings, error) {
	v, ok := store.read(ctx)
	if !ok {
		v = viper.New()
	}

	v.SetEnvPrefix(constants.EnvPrefix)
	for key, flagName := range flagNames {
		if err := v.BindEnv(key); err != nil {
			return Settings{}, fmt.Errorf("failed to bind environment for %s: %w", key, err)
		}
		if flags == nil {
			continue
		}
		if flag := flags.Lookup(flagName); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return Settings{}, fmt.Errorf("failed to bind flag --%s: %w", flagName, err)
			}
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return Settings{}, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	return settings, nil
}
