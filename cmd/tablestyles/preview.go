package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/tablestyles/internal/preview"
)

type previewOptions struct {
	rows    int
	cols    int
	width   int
	noColor bool
}

func newPreviewCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview <document> <template-id>",
		Short: "Draw a template applied to a table in the terminal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, rootFlags)
			if err != nil {
				return err
			}
			if _, err := app.loadDocument("preview", args[0]); err != nil {
				return err
			}

			tpl, err := app.templates.Template(args[1])
			if err != nil {
				return newCommandError("preview", fmt.Sprintf("looking up template %q", args[1]), err, "Run 'tablestyles inspect' to list the templates in the document.")
			}

			out, err := preview.Render(tpl, preview.Options{
				Rows:      opts.rows,
				Cols:      opts.cols,
				CellWidth: opts.width,
				Color:     !opts.noColor && isTerminal(cmd),
			})
			if err != nil {
				return newCommandError("preview", "rendering", err, "Use --rows and --cols of at least 1.")
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.rows, "rows", 4, "Number of table rows")
	cmd.Flags().IntVar(&opts.cols, "cols", 3, "Number of table columns")
	cmd.Flags().IntVar(&opts.width, "cell-width", 8, "Width of each cell in characters")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colors even on a terminal")

	return cmd
}

func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
