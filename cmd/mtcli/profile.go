package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/mtcli/internal/cli"
)

func createProfileCommand() *cobra.Command {
	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage chart profiles",
	}
	profileCmd.AddCommand(&cobra.Command{
		Use:   "create <name>",
		Short: "Create a profile from the Default profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *cli.App) error {
				return app.ProfileCreate(ctx, args[0])
			})
		},
	})
	return profileCmd
}
