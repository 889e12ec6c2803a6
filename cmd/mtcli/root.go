package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/mtcli/internal/cli"
	"github.com/wizzomafizzo/mtcli/internal/config"
	"github.com/wizzomafizzo/mtcli/internal/history"
	"github.com/wizzomafizzo/mtcli/internal/launcher"
	"github.com/wizzomafizzo/mtcli/internal/logging"
	"github.com/wizzomafizzo/mtcli/internal/platform/wsl"
	"github.com/wizzomafizzo/mtcli/internal/storage"
)

const rootExamples = `  mtcli detect
  mtcli open --symbol EURUSD --period M15 --template MyTemplate.tpl
  mtcli tester run --ea "Examples\MACD\MACD Sample" --symbol EURUSD --period M1 --visual \
    --date-from 2024.01.01 --date-to 2024.06.01 --report "\reports\run_{ts}.htm" --replace-report --shutdown`

// createNewRootCommand creates the main root command that shows help by default.
func createNewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mtcli",
		Short:         "Command line for MetaTrader 5 on Windows and WSL",
		Example:       rootExamples,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Show help when run without subcommands
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("terminal", "", "Path to terminal64.exe")
	flags.String("metaeditor", "", "Path to metaeditor64.exe")
	flags.String("data-dir", "", `Path to the data folder (...\MetaQuotes\Terminal\<id>)`)
	flags.String("log-level", "", "Log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(
		createDetectCommand(),
		createConfigCommand(),
		createBootstrapCommand(),
		createProfileCommand(),
		createOpenCommand(),
		createListenerCommand(),
		createChartCommand(),
		createScriptCommand(),
		createTesterCommand(),
		createMetaEditorCommand(),
		createGen4Command(),
		createHistoryCommand(),
	)

	return rootCmd
}

// createAppFromCommand resolves settings for cmd and wires an App with the real
// filesystem, process executor and run history. The returned cleanup closes the history.
func createAppFromCommand(cmd *cobra.Command) (context.Context, *cli.App, func(), error) {
	fs := afero.NewOsFs()

	configPath, err := config.DefaultPath()
	if err != nil {
		return nil, nil, nil, err
	}
	store := config.NewStore(fs, configPath)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	settings, err := config.Resolve(ctx, store, cmd.Flags())
	if err != nil {
		return nil, nil, nil, err
	}

	logCtx, err := logging.New(ctx, fs, logging.Config{
		Command: cmd.CommandPath(),
		Level:   logging.ParseLevel(settings.LogLevel),
	})
	if err != nil {
		// The log file is optional; keep going without it
		logCtx = zerolog.Nop().WithContext(ctx)
	}
	ctx = logCtx

	exec := launcher.NewOSExecutor()
	paths := wsl.NewConverter(wsl.DetectSystem(fs), exec)

	opts := cli.AppOptions{
		Fs:       fs,
		Out:      cmd.OutOrStdout(),
		Paths:    paths,
		Executor: exec,
		Store:    store,
		Settings: settings,
	}
	if wd, err := os.Getwd(); err == nil {
		opts.WorkDir = wd
	}

	cleanup := func() {}
	if runs := openHistory(ctx, fs); runs != nil {
		opts.Recorder = runs
		opts.History = runs
		cleanup = func() { _ = runs.Close() }
	}

	return ctx, cli.NewApp(opts), cleanup, nil
}

// openHistory opens the run history, returning nil when it is unavailable.
func openHistory(ctx context.Context, fs afero.Fs) *history.Store {
	path, err := storage.New(fs).GetHistoryPath()
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("Run history disabled")
		return nil
	}
	runs, err := history.Open(ctx, path)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("Run history disabled")
		return nil
	}
	return runs
}

// withApp runs fn with a wired App and closes it afterwards.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, app *cli.App) error) error {
	ctx, app, cleanup, err := createAppFromCommand(cmd)
	if err != nil {
		return err
	}
	defer cleanup()
	return fn(ctx, app)
}
