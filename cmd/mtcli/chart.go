package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/mtcli/internal/cli"
	"github.com/wizzomafizzo/mtcli/internal/listener"
)

func createChartCommand() *cobra.Command {
	chartCmd := &cobra.Command{
		Use:   "chart",
		Short: "Change open charts through the listener and show the resulting logs",
	}
	chartCmd.AddCommand(
		createChartIndicatorCommand(),
		createChartExpertCommand(),
		&cobra.Command{
			Use:   "send <payload>",
			Short: "Send a raw command line, e.g. ATTACH_IND;EURUSD;H1;Examples\\RSI;1",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return chartSend(cmd, "chart send", args[0])
			},
		},
	)
	return chartCmd
}

func createChartIndicatorCommand() *cobra.Command {
	indicatorCmd := &cobra.Command{
		Use:   "indicator",
		Short: "Attach or detach indicators",
	}

	attachCmd := &cobra.Command{
		Use:   "attach",
		Short: "Attach an indicator to a chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sub, _ := cmd.Flags().GetInt("subwindow")
			payload, err := listener.AttachIndicator(
				stringFlag(cmd, "symbol"), stringFlag(cmd, "period"), stringFlag(cmd, "indicator"), sub)
			if err != nil {
				return err
			}
			return chartSend(cmd, "chart indicator attach", payload)
		},
	}
	addIndicatorFlags(attachCmd)

	detachCmd := &cobra.Command{
		Use:   "detach",
		Short: "Remove an indicator from a chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sub, _ := cmd.Flags().GetInt("subwindow")
			payload, err := listener.DetachIndicator(
				stringFlag(cmd, "symbol"), stringFlag(cmd, "period"), stringFlag(cmd, "indicator"), sub)
			if err != nil {
				return err
			}
			return chartSend(cmd, "chart indicator detach", payload)
		},
	}
	addIndicatorFlags(detachCmd)

	indicatorCmd.AddCommand(attachCmd, detachCmd)
	return indicatorCmd
}

func createChartExpertCommand() *cobra.Command {
	expertCmd := &cobra.Command{
		Use:   "expert",
		Short: "Attach or detach experts",
	}

	attachCmd := &cobra.Command{
		Use:   "attach",
		Short: "Attach an expert to a chart through a template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := cli.ExpertAttachOptions{
				Symbol:   stringFlag(cmd, "symbol"),
				Period:   stringFlag(cmd, "period"),
				Expert:   stringFlag(cmd, "expert"),
				Template: stringFlag(cmd, "template"),
				Preset:   stringFlag(cmd, "preset"),
			}
			return withApp(cmd, func(ctx context.Context, app *cli.App) error {
				return app.ChartExpertAttach(ctx, opts)
			})
		},
	}
	addChartFlags(attachCmd)
	attachCmd.Flags().String("expert", "", `Expert path relative to MQL5\Experts`)
	attachCmd.Flags().String("template", "", "Existing template to apply instead of generating one")
	attachCmd.Flags().String("preset", "", "A .set file whose values become the expert inputs")
	_ = attachCmd.MarkFlagRequired("expert")

	detachCmd := &cobra.Command{
		Use:   "detach",
		Short: "Remove the expert from a chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			payload, err := listener.DetachExpert(stringFlag(cmd, "symbol"), stringFlag(cmd, "period"))
			if err != nil {
				return err
			}
			return chartSend(cmd, "chart expert detach", payload)
		},
	}
	addChartFlags(detachCmd)

	expertCmd.AddCommand(attachCmd, detachCmd)
	return expertCmd
}

func chartSend(cmd *cobra.Command, tag, payload string) error {
	return withApp(cmd, func(ctx context.Context, app *cli.App) error {
		return app.ChartSend(ctx, tag, payload)
	})
}
