package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tablestyles/pkg/diff"
)

func newDiffCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "diff <old-document> <new-document>",
		Short: "Show how the compiled CSS changes between two documents",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, rootFlags)
			if err != nil {
				return err
			}

			before, err := app.compileFile("diff", args[0])
			if err != nil {
				return err
			}
			after, err := app.compileFile("diff", args[1])
			if err != nil {
				return err
			}

			out, stats := diff.Compare(before, after, args[0], args[1])
			if !stats.Changed() {
				fmt.Fprintln(cmd.OutOrStdout(), "no changes")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			fmt.Fprintf(cmd.OutOrStdout(), "%d lines added, %d removed\n", stats.Added, stats.Removed)
			return nil
		},
	}
}

// compileFile loads path and compiles it without touching the template service.
func (a *appContext) compileFile(operation, path string) (string, error) {
	doc, err := a.store.Load(a.ctx, path)
	if err != nil {
		return "", newCommandError(operation, "loading "+path, err, documentSuggestion(err))
	}
	return a.compiler.Compile(doc), nil
}
