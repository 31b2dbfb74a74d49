package template

import (
	"github.com/alexisbeaulieu97/tablestyles/internal/domain/style"
)

// Declarations maps a property to its stored value.
type Declarations map[style.Property]string

// IndexedRule styles one row or column, addressed by a 1-based position
// counted from the first line or, with FromBottom, from the last one. Index
// is kept exactly as supplied; "01" and "1" are different rules.
type IndexedRule struct {
	Index        string
	FromBottom   bool
	Declarations Declarations
}

// Template is a named bundle of table, row, column and cell styling.
type Template struct {
	ID    string
	Table Declarations
	Rows  []IndexedRule
	Cols  []IndexedRule
	Cells map[Coord]Declarations
}

// New returns an empty template with the given id. The id is not validated.
func New(id string) Template {
	return Template{
		ID:    id,
		Table: Declarations{},
		Cells: map[Coord]Declarations{},
	}
}

// Clone returns a deep copy that shares no maps or slices with t.
func (t Template) Clone() Template {
	out := Template{
		ID:    t.ID,
		Table: t.Table.Clone(),
		Rows:  cloneRules(t.Rows),
		Cols:  cloneRules(t.Cols),
		Cells: make(map[Coord]Declarations, len(t.Cells)),
	}
	for coord, decls := range t.Cells {
		out.Cells[coord] = decls.Clone()
	}
	return out
}

// Clone copies the declarations. A nil receiver yields an empty map.
func (d Declarations) Clone() Declarations {
	out := make(Declarations, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

func cloneRules(rules []IndexedRule) []IndexedRule {
	if rules == nil {
		return nil
	}
	out := make([]IndexedRule, len(rules))
	for i, r := range rules {
		out[i] = IndexedRule{
			Index:        r.Index,
			FromBottom:   r.FromBottom,
			Declarations: r.Declarations.Clone(),
		}
	}
	return out
}

// IsEmpty reports whether the template declares nothing at all.
func (t Template) IsEmpty() bool {
	return len(t.Table) == 0 && len(t.Rows) == 0 && len(t.Cols) == 0 && len(t.Cells) == 0
}

// Lookup returns a copy of the declarations stored at addr.
func (t Template) Lookup(addr Address) (Declarations, bool) {
	switch addr.Kind {
	case style.KindTable:
		return t.Table.Clone(), true
	case style.KindRow, style.KindColumn:
		rules := t.rulesFor(addr.Kind)
		if i := FindRule(rules, addr.Index, addr.FromBottom); i >= 0 {
			return rules[i].Declarations.Clone(), true
		}
	case style.KindCell:
		if decls, ok := t.Cells[addr.Cell]; ok {
			return decls.Clone(), true
		}
	}
	return nil, false
}

func (t Template) rulesFor(kind style.AddressKind) []IndexedRule {
	if kind == style.KindColumn {
		return t.Cols
	}
	return t.Rows
}

func (t *Template) setRules(kind style.AddressKind, rules []IndexedRule) {
	if kind == style.KindColumn {
		t.Cols = rules
		return
	}
	t.Rows = rules
}

// Set writes value for prop at addr, creating the row, column or cell rule
// if needed. A nil value clears the property; clearing on a rule that does
// not exist fails with NOT_FOUND. Everything is validated before the
// template is touched.
func (t *Template) Set(addr Address, prop style.Property, value *string) error {
	if err := addr.Validate(); err != nil {
		return err
	}
	if !style.IsAllowed(addr.Kind, prop) {
		return newValidationError("unsupported property", nil, map[string]interface{}{
			"kind":     string(addr.Kind),
			"property": string(prop),
		})
	}

	var normalized string
	if value != nil {
		v, err := prop.Normalize(*value)
		if err != nil {
			return newValidationError("invalid property value", err, map[string]interface{}{
				"property": string(prop),
				"value":    *value,
			})
		}
		normalized = v
	} else if _, ok := t.Lookup(addr); !ok {
		return newNotFoundError("rule not found", map[string]interface{}{"address": addr.String()})
	}

	decls := t.declarationsFor(addr)
	if value == nil {
		delete(decls, prop)
		return nil
	}
	decls[prop] = normalized
	return nil
}

// declarationsFor returns the live declarations at addr, creating the rule
// lazily.
func (t *Template) declarationsFor(addr Address) Declarations {
	switch addr.Kind {
	case style.KindRow, style.KindColumn:
		rules, decls := FindOrCreateRule(t.rulesFor(addr.Kind), addr.Index, addr.FromBottom)
		t.setRules(addr.Kind, rules)
		return decls
	case style.KindCell:
		if t.Cells == nil {
			t.Cells = map[Coord]Declarations{}
		}
		decls, ok := t.Cells[addr.Cell]
		if !ok || decls == nil {
			decls = Declarations{}
			t.Cells[addr.Cell] = decls
		}
		return decls
	default:
		if t.Table == nil {
			t.Table = Declarations{}
		}
		return t.Table
	}
}

// DeleteRule removes the row or column rule, or the cell entry, at addr.
// The table defaults cannot be deleted, only cleared property by property.
func (t *Template) DeleteRule(addr Address) error {
	if err := addr.Validate(); err != nil {
		return err
	}
	switch addr.Kind {
	case style.KindRow, style.KindColumn:
		rules := t.rulesFor(addr.Kind)
		i := FindRule(rules, addr.Index, addr.FromBottom)
		if i < 0 {
			return newNotFoundError("rule not found", map[string]interface{}{"address": addr.String()})
		}
		t.setRules(addr.Kind, append(rules[:i:i], rules[i+1:]...))
		return nil
	case style.KindCell:
		if _, ok := t.Cells[addr.Cell]; !ok {
			return newNotFoundError("rule not found", map[string]interface{}{"address": addr.String()})
		}
		delete(t.Cells, addr.Cell)
		return nil
	}
	return newValidationError("table defaults cannot be deleted", nil, map[string]interface{}{"kind": string(addr.Kind)})
}
