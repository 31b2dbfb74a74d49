package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tablestyles/internal/application/templates"
	"github.com/alexisbeaulieu97/tablestyles/internal/domain/style"
	"github.com/alexisbeaulieu97/tablestyles/internal/domain/template"
	"github.com/alexisbeaulieu97/tablestyles/internal/ports"
)

type setOptions struct {
	kind       string
	index      string
	fromBottom bool
	x          int
	y          int
	property   string
	value      string
	clear      bool
	create     bool
}

func newSetCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &setOptions{}

	cmd := &cobra.Command{
		Use:   "set <document> <template-id>",
		Short: "Set or clear one property of a template and save the document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(cmd, rootFlags, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVar(&opts.kind, "kind", "table", "Rule kind: table, row, column or cell")
	cmd.Flags().StringVar(&opts.index, "index", "", "1-based row or column index")
	cmd.Flags().BoolVar(&opts.fromBottom, "from-bottom", false, "Count the index from the last row or column")
	cmd.Flags().IntVar(&opts.x, "x", 0, "Zero-based cell column")
	cmd.Flags().IntVar(&opts.y, "y", 0, "Zero-based cell row")
	cmd.Flags().StringVar(&opts.property, "property", "", "Property: bgColor, color, width, height or border")
	cmd.Flags().StringVar(&opts.value, "value", "", "New property value")
	cmd.Flags().BoolVar(&opts.clear, "clear", false, "Clear the property instead of setting it")
	cmd.Flags().BoolVar(&opts.create, "create", false, "Create the template when it does not exist")
	cmd.MarkFlagsMutuallyExclusive("value", "clear")
	_ = cmd.MarkFlagRequired("property")

	return cmd
}

func runSet(cmd *cobra.Command, rootFlags *rootFlags, path, id string, opts *setOptions) error {
	addr, err := opts.address()
	if err != nil {
		return newCommandError("set", "reading the rule address", err, "Use --kind with --index for rows and columns or --x/--y for cells.")
	}
	prop := style.Property(opts.property)
	if !prop.IsKnown() {
		return newCommandError("set", "reading the property", fmt.Errorf("unknown property %q", opts.property), "Use one of bgColor, color, width, height or border.")
	}
	var value *string
	switch {
	case opts.clear:
	case cmd.Flags().Changed("value"):
		value = &opts.value
	default:
		return newCommandError("set", "reading the value", errors.New("no value given"), "Pass --value or --clear.")
	}

	app, err := newAppContext(cmd, rootFlags)
	if err != nil {
		return err
	}
	if _, err := app.loadDocument("set", path); err != nil {
		return err
	}

	sub := app.reportChanges(cmd, ports.EventTemplateCreated, ports.EventTemplateUpdated)
	defer sub()

	ctx := ports.WithClientOrigin(app.ctx)
	if opts.create {
		if _, err := app.templates.Template(id); template.HasCode(err, template.ErrCodeNotFound) {
			if _, err := app.templates.Create(ctx, id, nil); err != nil {
				return newCommandError("set", fmt.Sprintf("creating template %q", id), err, "Template ids start with a letter followed by letters, digits or '-'.")
			}
		}
	}

	if err := app.templates.Update(ctx, id, addr, prop, value); err != nil {
		return newCommandError("set", fmt.Sprintf("updating %s of template %q", addr, id), err, updateSuggestion(err, addr.Kind))
	}

	if err := app.store.Save(app.ctx, path, app.templates.Document()); err != nil {
		return newCommandError("set", "saving "+path, err, "Check that the document is writable.")
	}
	return nil
}

func (o *setOptions) address() (template.Address, error) {
	kind, err := style.ParseAddressKind(o.kind)
	if err != nil {
		return template.Address{}, err
	}
	var addr template.Address
	switch kind {
	case style.KindTable:
		addr = template.TableAddress()
	case style.KindRow:
		addr = template.RowAddress(o.index, o.fromBottom)
	case style.KindColumn:
		addr = template.ColumnAddress(o.index, o.fromBottom)
	case style.KindCell:
		addr = template.CellAddress(o.x, o.y)
	}
	return addr, addr.Validate()
}

// reportChanges prints one line per change event until the returned func is called.
func (a *appContext) reportChanges(cmd *cobra.Command, eventTypes ...string) func() {
	var subs []ports.Subscription
	for _, eventType := range eventTypes {
		sub, err := a.publisher.Subscribe(eventType, func(_ context.Context, event ports.DomainEvent) error {
			change, ok := event.Payload().(templates.TemplateChange)
			if !ok {
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d bytes of CSS)\n", event.EventType(), change.Template.ID, len(change.CSS))
			return nil
		})
		if err == nil {
			subs = append(subs, sub)
		}
	}
	return func() {
		for _, sub := range subs {
			sub.Unsubscribe()
		}
	}
}

func updateSuggestion(err error, kind style.AddressKind) string {
	switch {
	case template.HasCode(err, template.ErrCodeNotFound):
		return "Check the template id, or pass --create. Clearing needs an existing rule."
	case template.HasCode(err, template.ErrCodeValidation):
		names := make([]string, 0, 5)
		for _, p := range style.AllowedProperties(kind) {
			names = append(names, string(p))
		}
		return fmt.Sprintf("A %s rule accepts %v with a valid value.", kind, names)
	}
	return "Run 'tablestyles validate' on the document."
}
