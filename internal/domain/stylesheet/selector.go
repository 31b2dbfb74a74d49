package stylesheet

import (
	"strconv"

	"github.com/alexisbeaulieu97/tablestyles/internal/domain/template"
)

// SelectorVersion identifies the selector patterns below. Rendering
// surfaces match these selectors verbatim, so any change to them must bump
// the version.
const SelectorVersion = "1"

// TableSelector selects a table carrying the template's class.
func TableSelector(scope, id string) string {
	return scoped(scope, "table."+id)
}

// RowSelector selects the cells of one row.
func RowSelector(scope, id string, rule template.IndexedRule) string {
	return scoped(scope, "table."+id+" tr:"+nth(rule)+" > td")
}

// ColumnSelector selects the cells of one column.
func ColumnSelector(scope, id string, rule template.IndexedRule) string {
	return scoped(scope, "table."+id+" tr > td:"+nth(rule))
}

// CellSelector selects a single cell by zero-based coordinate.
func CellSelector(scope, id string, c template.Coord) string {
	return scoped(scope, "table."+id+" tr:nth-of-type("+strconv.Itoa(c.Y+1)+") > td:nth-of-type("+strconv.Itoa(c.X+1)+")")
}

func nth(rule template.IndexedRule) string {
	n, err := template.ParseIndex(rule.Index)
	if err != nil {
		// Validated on write; keep the raw text rather than fail.
		return pseudo(rule.FromBottom) + "(" + rule.Index + ")"
	}
	return pseudo(rule.FromBottom) + "(" + strconv.Itoa(n) + ")"
}

func pseudo(fromBottom bool) string {
	if fromBottom {
		return "nth-last-of-type"
	}
	return "nth-of-type"
}

func scoped(scope, selector string) string {
	if scope == "" {
		return selector
	}
	return scope + " " + selector
}
