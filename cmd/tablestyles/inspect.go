package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tablestyles/internal/domain/stylesheet"
	"github.com/alexisbeaulieu97/tablestyles/internal/infrastructure/cssparse"
)

func newInspectCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <document>",
		Short: "Compile a document and list the generated selectors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, rootFlags)
			if err != nil {
				return err
			}
			if _, err := app.loadDocument("inspect", args[0]); err != nil {
				return err
			}

			blocks, err := cssparse.NewParser(app.logger).Parse(app.ctx, []byte(app.templates.CSS()))
			if err != nil {
				return newCommandError("inspect", "reading back the compiled stylesheet", err, "Report this as a bug together with the document.")
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SELECTOR\tDECLARATIONS")
			for _, b := range blocks {
				fmt.Fprintf(w, "%s\t%d\n", b.Selector, len(b.Declarations))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d rules, selector contract v%s\n", len(blocks), stylesheet.SelectorVersion)
			return nil
		},
	}
}
