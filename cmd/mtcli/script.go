package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/mtcli/internal/cli"
)

func createScriptCommand() *cobra.Command {
	scriptCmd := &cobra.Command{
		Use:   "script",
		Short: "Manage bundled scripts",
	}
	scriptCmd.AddCommand(&cobra.Command{
		Use:   "install-aplicar-template",
		Short: "Install and compile the AplicarTemplate script",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, app *cli.App) error {
				return exitStatus(app.ScriptInstall(ctx))
			})
		},
	})
	return scriptCmd
}
