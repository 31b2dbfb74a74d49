package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	logLevel string
	jsonLogs bool
	scope    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "tablestyles",
		Short:         "tablestyles compiles table style templates into CSS",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&flags.jsonLogs, "json-logs", false, "Write logs as JSON")
	cmd.PersistentFlags().StringVar(&flags.scope, "scope", "", "Selector prefix for compiled rules, e.g. .ql-editor")

	cmd.AddCommand(newCompileCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newInspectCmd(flags))
	cmd.AddCommand(newDiffCmd(flags))
	cmd.AddCommand(newIDsCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newSetCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
