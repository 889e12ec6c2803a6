package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/mtcli/internal/cli"
)

func createMetaEditorCommand() *cobra.Command {
	editorCmd := &cobra.Command{
		Use:   "metaeditor",
		Short: "Run MetaEditor",
	}

	compileCmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile an MQL5 source file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, log := stringFlag(cmd, "file"), stringFlag(cmd, "log")
			syntaxOnly, _ := cmd.Flags().GetBool("syntax-only")
			return withApp(cmd, func(ctx context.Context, app *cli.App) error {
				return exitStatus(app.Compile(ctx, file, log, syntaxOnly))
			})
		},
	}
	compileCmd.Flags().String("file", "", "Source file to compile")
	compileCmd.Flags().String("log", "", "Compiler log (default: the source with .log)")
	compileCmd.Flags().Bool("syntax-only", false, "Only check syntax (/s)")
	_ = compileCmd.MarkFlagRequired("file")

	editorCmd.AddCommand(compileCmd)
	return editorCmd
}
