package template

import (
	"github.com/alexisbeaulieu97/tablestyles/internal/domain/style"
)

// Resolve computes the declarations that apply to the cell at zero-based
// (row, col) in a table of rowCount x colCount, following the stylesheet
// cascade: table defaults, then row rules, then column rules, then the cell
// entry. Bottom-anchored rules are resolved against the given counts. The
// table's own width and height size the table box and are not inherited.
func Resolve(t Template, rowCount, colCount, row, col int) Declarations {
	out := t.Table.Clone()
	delete(out, style.PropWidth)
	delete(out, style.PropHeight)

	apply := func(rules []IndexedRule, count, line int) {
		for _, r := range OrderRules(rules) {
			if EffectivePosition(r, count) == line+1 {
				for k, v := range r.Declarations {
					out[k] = v
				}
			}
		}
	}
	apply(t.Rows, rowCount, row)
	apply(t.Cols, colCount, col)
	for k, v := range t.Cells[Coord{X: col, Y: row}] {
		out[k] = v
	}
	return out
}

// EffectivePosition maps a rule to its 1-based line in a table of count
// lines. Rules whose index cannot be parsed resolve to 0.
func EffectivePosition(r IndexedRule, count int) int {
	k := mustIndex(r.Index)
	if k == 0 {
		return 0
	}
	if r.FromBottom {
		return count - k + 1
	}
	return k
}
