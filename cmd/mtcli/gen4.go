package main

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/mtcli/internal/cli"
)

func createGen4Command() *cobra.Command {
	gen4Cmd := &cobra.Command{
		Use:   "gen4",
		Short: "Gen4 engine helpers",
	}
	gen4Cmd.AddCommand(&cobra.Command{
		Use:       "service <" + strings.Join(cli.ServiceActions, "|") + ">",
		Short:     "Control the Gen4EngineService process",
		ValidArgs: cli.ServiceActions,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return err //nolint:wrapcheck // cobra message is shown as is
			}
			if !slices.Contains(cli.ServiceActions, args[0]) {
				return fmt.Errorf("invalid action %q, must be one of %s",
					args[0], strings.Join(cli.ServiceActions, ", "))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *cli.App) error {
				return exitStatus(app.Service(ctx, args[0]))
			})
		},
	})
	return gen4Cmd
}
