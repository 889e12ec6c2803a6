package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/mtcli/internal/cli"
)

func createHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent terminal and metaeditor runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			return withApp(cmd, func(ctx context.Context, app *cli.App) error {
				return app.History(ctx, limit)
			})
		},
	}
	cmd.Flags().Int("limit", 20, "Number of runs to show")
	return cmd
}
