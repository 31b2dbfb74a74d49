package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tablestyles/internal/domain/stylesheet"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "tablestyles %s\ncommit: %s\nbuilt: %s\nselectors: v%s\n", version, commit, date, stylesheet.SelectorVersion)
			return nil
		},
	}

	return cmd
}
