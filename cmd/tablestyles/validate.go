package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <document>",
		Short: "Check a template document and report every problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, rootFlags)
			if err != nil {
				return err
			}

			doc, err := app.store.Load(app.ctx, args[0])
			if err != nil {
				return newCommandError("validate", args[0], err, documentSuggestion(err))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: valid (%d templates)\n", args[0], len(doc.Templates))
			return nil
		},
	}
}
