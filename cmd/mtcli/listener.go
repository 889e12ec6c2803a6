package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/mtcli/internal/cli"
	"github.com/wizzomafizzo/mtcli/internal/listener"
)

func createListenerCommand() *cobra.Command {
	listenerCmd := &cobra.Command{
		Use:   "listener",
		Short: "Install, run and drive the command listener expert",
	}

	installCmd := &cobra.Command{
		Use:   "install",
		Short: "Reinstall and compile the listener expert",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, app *cli.App) error {
				return app.ListenerInstall(ctx)
			})
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Start the terminal with the listener expert on a chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			symbol, period := stringFlag(cmd, "symbol"), stringFlag(cmd, "period")
			iniPath := stringFlag(cmd, "ini")
			return withApp(cmd, func(ctx context.Context, app *cli.App) error {
				return exitStatus(app.ListenerRun(ctx, symbol, period, iniPath))
			})
		},
	}
	addChartFlags(runCmd)
	runCmd.Flags().String("ini", "", "Where to write the startup INI (default ./listener.ini)")

	listenerCmd.AddCommand(installCmd, runCmd, createListenerSendCommand())
	return listenerCmd
}

func createListenerSendCommand() *cobra.Command {
	sendCmd := &cobra.Command{
		Use:   "send",
		Short: "Write a command for the running listener",
	}

	applyCmd := &cobra.Command{
		Use:   "apply-template",
		Short: "Apply a template to a chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			payload, err := listener.ApplyTemplate(
				stringFlag(cmd, "symbol"), stringFlag(cmd, "period"), stringFlag(cmd, "template"))
			if err != nil {
				return err
			}
			return sendPayload(cmd, payload)
		},
	}
	addChartFlags(applyCmd)
	applyCmd.Flags().String("template", "", `Template name in MQL5\Profiles\Templates`)
	_ = applyCmd.MarkFlagRequired("template")

	attachCmd := &cobra.Command{
		Use:   "attach-indicator",
		Short: "Attach an indicator to a chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sub, _ := cmd.Flags().GetInt("subwindow")
			payload, err := listener.AttachIndicator(
				stringFlag(cmd, "symbol"), stringFlag(cmd, "period"), stringFlag(cmd, "indicator"), sub)
			if err != nil {
				return err
			}
			return sendPayload(cmd, payload)
		},
	}
	addIndicatorFlags(attachCmd)

	sendCmd.AddCommand(applyCmd, attachCmd)
	return sendCmd
}

func sendPayload(cmd *cobra.Command, payload string) error {
	return withApp(cmd, func(ctx context.Context, app *cli.App) error {
		return app.ListenerSend(ctx, payload)
	})
}

// addIndicatorFlags registers the chart flags plus --indicator and --subwindow.
func addIndicatorFlags(cmd *cobra.Command) {
	addChartFlags(cmd)
	cmd.Flags().String("indicator", "", `Indicator path relative to MQL5\Indicators`)
	cmd.Flags().Int("subwindow", 0, "Chart subwindow (0 is the main window)")
	_ = cmd.MarkFlagRequired("indicator")
}
