package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/mtcli/internal/cli"
)

func createDetectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "Show the terminal, metaeditor and data folder in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, app *cli.App) error {
				app.Detect(ctx)
				return nil
			})
		},
	}
}
