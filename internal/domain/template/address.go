package template

import (
	"fmt"
	"strconv"

	"github.com/alexisbeaulieu97/tablestyles/internal/domain/style"
)

// Coord is a zero-based (column, row) cell coordinate.
type Coord struct {
	X int
	Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Address points at one rule inside a template. Kind selects which of the
// remaining fields are meaningful: Index/FromBottom for rows and columns,
// Cell for cells.
type Address struct {
	Kind       style.AddressKind
	Index      string
	FromBottom bool
	Cell       Coord
}

// TableAddress addresses the table-wide defaults.
func TableAddress() Address {
	return Address{Kind: style.KindTable}
}

// RowAddress addresses the rule for a 1-based row position, counted from the
// last row when fromBottom is set.
func RowAddress(index string, fromBottom bool) Address {
	return Address{Kind: style.KindRow, Index: index, FromBottom: fromBottom}
}

// ColumnAddress addresses the rule for a 1-based column position.
func ColumnAddress(index string, fromBottom bool) Address {
	return Address{Kind: style.KindColumn, Index: index, FromBottom: fromBottom}
}

// CellAddress addresses the cell at zero-based column x and row y.
func CellAddress(x, y int) Address {
	return Address{Kind: style.KindCell, Cell: Coord{X: x, Y: y}}
}

// Validate checks that the fields required by the address kind are well
// formed.
func (a Address) Validate() error {
	switch a.Kind {
	case style.KindTable:
		return nil
	case style.KindRow, style.KindColumn:
		if _, err := ParseIndex(a.Index); err != nil {
			return newValidationError("invalid line index", err, map[string]interface{}{
				"kind":  string(a.Kind),
				"index": a.Index,
			})
		}
		return nil
	case style.KindCell:
		if a.Cell.X < 0 || a.Cell.Y < 0 {
			return newValidationError("cell coordinates must be non-negative", nil, map[string]interface{}{
				"x": a.Cell.X,
				"y": a.Cell.Y,
			})
		}
		return nil
	}
	return newValidationError("unknown address kind", nil, map[string]interface{}{"kind": string(a.Kind)})
}

func (a Address) String() string {
	switch a.Kind {
	case style.KindRow, style.KindColumn:
		if a.FromBottom {
			return fmt.Sprintf("%s[-%s]", a.Kind, a.Index)
		}
		return fmt.Sprintf("%s[%s]", a.Kind, a.Index)
	case style.KindCell:
		return "cell" + a.Cell.String()
	}
	return string(a.Kind)
}

// ParseIndex converts a stored line index to its numeric 1-based position.
// The index must consist of ASCII digits only and be at least 1.
func ParseIndex(index string) (int, error) {
	if index == "" {
		return 0, fmt.Errorf("index is empty")
	}
	for _, r := range index {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("index %q must contain digits only", index)
		}
	}
	n, err := strconv.Atoi(index)
	if err != nil {
		return 0, fmt.Errorf("index %q: %w", index, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("index %q must be at least 1", index)
	}
	return n, nil
}

// IsValidIndex reports whether index is acceptable as a line index.
func IsValidIndex(index string) bool {
	_, err := ParseIndex(index)
	return err == nil
}
