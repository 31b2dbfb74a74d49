package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	infraconfig "github.com/alexisbeaulieu97/tablestyles/internal/infrastructure/config"
)

type compileOptions struct {
	out string
}

func newCompileCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &compileOptions{}

	cmd := &cobra.Command{
		Use:   "compile <document>",
		Short: "Compile a template document into CSS",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, rootFlags, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write the stylesheet to this file instead of stdout")

	return cmd
}

func runCompile(cmd *cobra.Command, rootFlags *rootFlags, path string, opts *compileOptions) error {
	app, err := newAppContext(cmd, rootFlags)
	if err != nil {
		return err
	}

	if _, err := app.loadDocument("compile", path); err != nil {
		return err
	}
	css := app.templates.CSS()

	if strings.TrimSpace(opts.out) == "" {
		fmt.Fprint(cmd.OutOrStdout(), css)
		return nil
	}

	if err := infraconfig.WriteFileAtomic(opts.out, []byte(css)); err != nil {
		return newCommandError("compile", "writing "+opts.out, err, "Check that the output directory exists and is writable.")
	}
	app.log.WithFields(map[string]any{"out": opts.out, "bytes": len(css)}).Info("stylesheet written")
	return nil
}
