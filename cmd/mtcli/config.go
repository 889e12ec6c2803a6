package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/mtcli/internal/cli"
	"github.com/wizzomafizzo/mtcli/internal/config"
	"github.com/wizzomafizzo/mtcli/internal/prompt"
)

var errNotInteractive = errors.New("config init needs an interactive terminal")

func createConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage persistent settings",
	}

	configCmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the saved and effective settings",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withApp(cmd, func(ctx context.Context, app *cli.App) error {
					app.ConfigShow(ctx)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:       "set <key> <value>",
			Short:     "Save a setting",
			Args:      cobra.ExactArgs(2),
			ValidArgs: config.SortedKeys(),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd, func(ctx context.Context, app *cli.App) error {
					return app.ConfigSet(ctx, args[0], args[1])
				})
			},
		},
		&cobra.Command{
			Use:       "unset <key>",
			Short:     "Remove a saved setting",
			Args:      cobra.ExactArgs(1),
			ValidArgs: config.SortedKeys(),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd, func(ctx context.Context, app *cli.App) error {
					return app.ConfigUnset(ctx, args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: "Prompt for each setting, pre-filled with detected values",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if !prompt.Interactive() {
					return errNotInteractive
				}
				return withApp(cmd, func(ctx context.Context, app *cli.App) error {
					prompter := prompt.NewLinerPrompter()
					defer func() { _ = prompter.Close() }()
					return app.ConfigInit(ctx, prompter)
				})
			},
		},
	)

	return configCmd
}
