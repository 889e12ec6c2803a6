package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/mtcli/internal/cli"
	"github.com/wizzomafizzo/mtcli/internal/ini"
	"github.com/wizzomafizzo/mtcli/internal/tester"
)

func createTesterCommand() *cobra.Command {
	testerCmd := &cobra.Command{
		Use:   "tester",
		Short: "Run the Strategy Tester",
	}
	testerCmd.AddCommand(createTesterRunCommand(), createTesterBatchCommand())
	return testerCmd
}

func createTesterRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one test or optimization",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params := testerParams(cmd)
			inputs, iniPath := stringFlag(cmd, "inputs-json"), stringFlag(cmd, "ini")
			return withApp(cmd, func(ctx context.Context, app *cli.App) error {
				return exitStatus(app.TesterRun(ctx, params, inputs, iniPath))
			})
		},
	}

	flags := cmd.Flags()
	flags.String("ea", "", `Expert relative to MQL5\Experts, e.g. Examples\MACD\MACD Sample`)
	flags.String("ea-parameters", "", `A .set file in MQL5\Profiles\Tester`)
	flags.String("symbol", "", "Symbol to test")
	flags.String("period", "", "Timeframe to test")
	flags.Var(newChoiceValue("everytick", ini.Models), "model", "Tick model")
	flags.Var(newChoiceValue("off", ini.Optimizations), "opt", "Optimization mode")
	flags.Var(newChoiceValue("", ini.Criteria), "criterion", "Optimization criterion")
	flags.String("date-from", "", "Start date (YYYY.MM.DD)")
	flags.String("date-to", "", "End date (YYYY.MM.DD)")
	flags.Var(newChoiceValue("", ini.ForwardModes), "forward", "Forward testing mode")
	flags.String("forward-date", "", "Forward start date when --forward=custom")
	flags.String("deposit", "", "Initial deposit")
	flags.String("currency", "", "Deposit currency")
	flags.String("leverage", "", "Leverage, e.g. 1:100")
	flags.String("login", "", "Emulated account number")
	flags.String("report", "", `Report path relative to the terminal folder ({ts} is replaced by a timestamp)`)
	flags.Bool("visual", false, "Visual testing")
	flags.Bool("replace-report", false, "Overwrite an existing report")
	flags.Bool("shutdown", false, "Close the terminal when the test ends")
	flags.Bool("use-local", false, "Use local agents")
	flags.Bool("use-remote", false, "Use remote agents")
	flags.Bool("use-cloud", false, "Use the MQL5 cloud network")
	flags.Int("exec-delay-ms", 0, "Execution delay (>0 fixed, -1 random)")
	flags.Int("port", 0, "Local agent port, for parallel runs")
	flags.String("inputs-json", "", "JSON or YAML file with expert inputs and optimization ranges")
	flags.String("ini", "", "Where to write the tester INI (default ./tester-<ts>.ini)")
	_ = cmd.MarkFlagRequired("ea")
	_ = cmd.MarkFlagRequired("symbol")
	_ = cmd.MarkFlagRequired("period")

	return cmd
}

// testerParams collects the run flags. Switches left untouched stay unset so the
// terminal keeps its own defaults.
func testerParams(cmd *cobra.Command) tester.Params {
	return tester.Params{
		Expert:           stringFlag(cmd, "ea"),
		ExpertParameters: stringFlag(cmd, "ea-parameters"),
		Symbol:           stringFlag(cmd, "symbol"),
		Period:           stringFlag(cmd, "period"),
		Model:            cmd.Flag("model").Value.String(),
		Optimization:     cmd.Flag("opt").Value.String(),
		Criterion:        cmd.Flag("criterion").Value.String(),
		FromDate:         stringFlag(cmd, "date-from"),
		ToDate:           stringFlag(cmd, "date-to"),
		Forward:          cmd.Flag("forward").Value.String(),
		ForwardDate:      stringFlag(cmd, "forward-date"),
		Deposit:          stringFlag(cmd, "deposit"),
		Currency:         stringFlag(cmd, "currency"),
		Leverage:         stringFlag(cmd, "leverage"),
		Login:            stringFlag(cmd, "login"),
		Report:           stringFlag(cmd, "report"),
		Visual:           optionalBool(cmd, "visual"),
		ReplaceReport:    optionalBool(cmd, "replace-report"),
		Shutdown:         optionalBool(cmd, "shutdown"),
		UseLocal:         optionalBool(cmd, "use-local"),
		UseRemote:        optionalBool(cmd, "use-remote"),
		UseCloud:         optionalBool(cmd, "use-cloud"),
		ExecDelayMs:      optionalInt(cmd, "exec-delay-ms"),
		Port:             optionalInt(cmd, "port"),
	}
}

func createTesterBatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run one test per combination of a parameter grid",
		Long: `Runs the tester once per combination of the plan's grid values. The plan is a JSON
or YAML file with a "base" object holding run options and a "grid" object mapping
option names to lists of values. Runs are sequential and the first non-zero exit
code is returned.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plan, dir := stringFlag(cmd, "plan"), stringFlag(cmd, "ini-dir")
			return withApp(cmd, func(ctx context.Context, app *cli.App) error {
				return exitStatus(app.TesterBatch(ctx, plan, dir))
			})
		},
	}
	cmd.Flags().String("plan", "", `Plan file with "base" and "grid"`)
	cmd.Flags().String("ini-dir", "", "Where to write the generated INI files (default: current directory)")
	_ = cmd.MarkFlagRequired("plan")
	return cmd
}
