package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tablestyles/internal/delta"
)

func newIDsCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "ids <delta.json|->",
		Short: "List the template ids referenced by an editor delta",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, rootFlags)
			if err != nil {
				return err
			}

			var raw []byte
			if args[0] == "-" {
				raw, err = io.ReadAll(cmd.InOrStdin())
			} else {
				raw, err = os.ReadFile(args[0])
			}
			if err != nil {
				return newCommandError("list template ids", "reading "+args[0], err, "Pass a readable delta file or '-' for stdin.")
			}

			ids, err := delta.AssignedTemplateIDs(raw)
			if err != nil {
				return newCommandError("list template ids", "decoding "+args[0], err, "The input must be a delta object with an ops array, or the array itself.")
			}
			app.logger.Debug(app.ctx, "assigned template ids extracted", "source", args[0], "count", len(ids))

			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
}
