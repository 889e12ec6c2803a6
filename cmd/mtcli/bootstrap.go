package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/mtcli/internal/cli"
)

func createBootstrapCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Prepare the data folder and install the listener sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")
			return withApp(cmd, func(ctx context.Context, app *cli.App) error {
				return app.Bootstrap(ctx, force)
			})
		},
	}
	cmd.Flags().Bool("force", false, "Overwrite installed sources")
	return cmd
}
