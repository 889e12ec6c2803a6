package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/mtcli/internal/cli"
)

func createOpenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open",
		Short: "Start the terminal, optionally with a startup chart, expert or script",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := cli.OpenOptions{
				Profile:          stringFlag(cmd, "profile"),
				Template:         stringFlag(cmd, "template"),
				Symbol:           stringFlag(cmd, "symbol"),
				Period:           stringFlag(cmd, "period"),
				Expert:           stringFlag(cmd, "expert"),
				ExpertParameters: stringFlag(cmd, "expert-parameters"),
				Script:           stringFlag(cmd, "script"),
				ScriptParameters: stringFlag(cmd, "script-parameters"),
				INI:              stringFlag(cmd, "ini"),
			}
			opts.Shutdown, _ = cmd.Flags().GetBool("shutdown")
			opts.Portable, _ = cmd.Flags().GetBool("portable")

			return withApp(cmd, func(ctx context.Context, app *cli.App) error {
				return exitStatus(app.Open(ctx, opts))
			})
		},
	}

	flags := cmd.Flags()
	flags.String("profile", "", "Profile to open")
	flags.String("template", "", "Template applied to the startup chart")
	flags.String("symbol", "", "Startup chart symbol")
	flags.String("period", "", "Startup chart timeframe")
	flags.String("expert", "", `Expert to run, relative to MQL5\Experts`)
	flags.String("expert-parameters", "", "Preset file for the expert")
	flags.String("script", "", `Script to run, relative to MQL5\Scripts`)
	flags.String("script-parameters", "", "Preset file for the script")
	flags.Bool("shutdown", false, "Close the terminal when the script finishes")
	flags.Bool("portable", false, "Run the terminal in portable mode")
	flags.String("ini", "", "Where to write the startup INI (default ./start.ini)")

	return cmd
}
