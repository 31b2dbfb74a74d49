package template

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/alexisbeaulieu97/tablestyles/internal/domain/style"
)

// Validate checks every id, address and property value in the template.
// All problems are reported together.
func (t Template) Validate() error {
	_, err := t.Normalized()
	return err
}

// Normalized validates the template and returns a copy in which every
// value is stored in its canonical form (trimmed colors, canonical
// dimensions, normalised borders).
func (t Template) Normalized() (Template, error) {
	var errs error
	if err := style.ValidateTemplateID(t.ID); err != nil {
		errs = multierr.Append(errs, NewIDFormatError(t.ID, err))
	}

	out := Template{ID: t.ID, Cells: make(map[Coord]Declarations, len(t.Cells))}

	var err error
	out.Table, err = normalizeDeclarations(t.ID, TableAddress(), t.Table)
	errs = multierr.Append(errs, err)

	out.Rows, err = normalizeRules(t.ID, style.KindRow, t.Rows)
	errs = multierr.Append(errs, err)

	out.Cols, err = normalizeRules(t.ID, style.KindColumn, t.Cols)
	errs = multierr.Append(errs, err)

	for coord, decls := range t.Cells {
		addr := CellAddress(coord.X, coord.Y)
		if err := addr.Validate(); err != nil {
			errs = multierr.Append(errs, withTemplate(err, t.ID))
			continue
		}
		normalized, err := normalizeDeclarations(t.ID, addr, decls)
		errs = multierr.Append(errs, err)
		out.Cells[coord] = normalized
	}

	if errs != nil {
		return Template{}, errs
	}
	return out, nil
}

func normalizeRules(id string, kind style.AddressKind, rules []IndexedRule) ([]IndexedRule, error) {
	if rules == nil {
		return nil, nil
	}
	var errs error
	out := make([]IndexedRule, 0, len(rules))
	for i, r := range rules {
		addr := Address{Kind: kind, Index: r.Index, FromBottom: r.FromBottom}
		if err := addr.Validate(); err != nil {
			errs = multierr.Append(errs, withTemplate(err, id))
			continue
		}
		if FindRule(out, r.Index, r.FromBottom) >= 0 {
			errs = multierr.Append(errs, newValidationError(fmt.Sprintf("duplicate %s rule", kind), nil, map[string]interface{}{
				"template_id": id,
				"address":     addr.String(),
				"position":    i,
			}))
			continue
		}
		decls, err := normalizeDeclarations(id, addr, r.Declarations)
		errs = multierr.Append(errs, err)
		out = append(out, IndexedRule{Index: r.Index, FromBottom: r.FromBottom, Declarations: decls})
	}
	return out, errs
}

func normalizeDeclarations(id string, addr Address, decls Declarations) (Declarations, error) {
	var errs error
	out := make(Declarations, len(decls))
	for prop, value := range decls {
		if !style.IsAllowed(addr.Kind, prop) {
			errs = multierr.Append(errs, newValidationError("unsupported property", nil, map[string]interface{}{
				"template_id": id,
				"address":     addr.String(),
				"property":    string(prop),
			}))
			continue
		}
		normalized, err := prop.Normalize(value)
		if err != nil {
			errs = multierr.Append(errs, newValidationError("invalid property value", err, map[string]interface{}{
				"template_id": id,
				"address":     addr.String(),
				"property":    string(prop),
				"value":       value,
			}))
			continue
		}
		out[prop] = normalized
	}
	return out, errs
}

func withTemplate(err error, id string) error {
	if de, ok := err.(*DomainError); ok {
		return de.WithContext(map[string]interface{}{"template_id": id})
	}
	return err
}
