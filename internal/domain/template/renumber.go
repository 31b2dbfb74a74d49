package template

import (
	"strconv"

	"github.com/alexisbeaulieu97/tablestyles/internal/domain/style"
)

// Placement says on which side of the reference line a new line goes.
type Placement int

const (
	Before Placement = iota
	After
)

func (p Placement) String() string {
	if p == After {
		return "after"
	}
	return "before"
}

// InsertLine renumbers rules and cells after a row or column was inserted
// next to the line at 1-based position. lineCount is the number of lines
// before the insertion. Start-anchored rules at or after the new line move
// down by one; bottom-anchored rules keep their target line, so only those
// pointing above the insertion point grow their index.
func (t *Template) InsertLine(axis style.AddressKind, position int, placement Placement, lineCount int) error {
	if err := checkLine(axis, position, lineCount); err != nil {
		return err
	}
	at := position
	if placement == After {
		at++
	}

	rules := cloneRules(t.rulesFor(axis))
	for i := range rules {
		k := mustIndex(rules[i].Index)
		switch {
		case !rules[i].FromBottom && k >= at:
			rules[i].Index = strconv.Itoa(k + 1)
		case rules[i].FromBottom && lineCount-k+1 < at:
			rules[i].Index = strconv.Itoa(k + 1)
		}
	}
	t.setRules(axis, mergeDuplicateRules(rules))

	t.shiftCells(axis, func(c int) (int, bool) {
		if c >= at-1 {
			return c + 1, true
		}
		return c, true
	})
	return nil
}

// RemoveLine renumbers rules and cells after the row or column at 1-based
// position was removed from a table that had lineCount lines. Rules and
// cells on the removed line are deleted, as is anything left pointing past
// the new last line.
func (t *Template) RemoveLine(axis style.AddressKind, position int, lineCount int) error {
	if err := checkLine(axis, position, lineCount); err != nil {
		return err
	}
	newCount := lineCount - 1

	src := t.rulesFor(axis)
	rules := make([]IndexedRule, 0, len(src))
	for _, r := range cloneRules(src) {
		k := mustIndex(r.Index)
		next := k
		if r.FromBottom {
			target := lineCount - k + 1
			if target == position {
				continue
			}
			if target < position {
				next = k - 1
			}
		} else {
			if k == position {
				continue
			}
			if k > position {
				next = k - 1
			}
		}
		if next > newCount {
			continue
		}
		if next != k {
			r.Index = strconv.Itoa(next)
		}
		rules = append(rules, r)
	}
	t.setRules(axis, mergeDuplicateRules(rules))

	removed := position - 1
	t.shiftCells(axis, func(c int) (int, bool) {
		switch {
		case c == removed:
			return 0, false
		case c > removed:
			c--
		}
		return c, c < newCount
	})
	return nil
}

func (t *Template) shiftCells(axis style.AddressKind, move func(int) (int, bool)) {
	if len(t.Cells) == 0 {
		return
	}
	shifted := make(map[Coord]Declarations, len(t.Cells))
	for coord, decls := range t.Cells {
		c := coord.Y
		if axis == style.KindColumn {
			c = coord.X
		}
		next, keep := move(c)
		if !keep {
			continue
		}
		if axis == style.KindColumn {
			coord.X = next
		} else {
			coord.Y = next
		}
		shifted[coord] = decls
	}
	t.Cells = shifted
}

func checkLine(axis style.AddressKind, position, lineCount int) error {
	if axis != style.KindRow && axis != style.KindColumn {
		return newValidationError("lines can only be rows or columns", nil, map[string]interface{}{"kind": string(axis)})
	}
	if lineCount < 1 || position < 1 || position > lineCount {
		return newNotFoundError(string(axis)+" does not exist", map[string]interface{}{
			"position":   position,
			"line_count": lineCount,
		})
	}
	return nil
}

// mustIndex parses an index that already passed validation. Anything that
// slipped through is treated as position 0, which no renumbering touches.
func mustIndex(index string) int {
	n, err := ParseIndex(index)
	if err != nil {
		return 0
	}
	return n
}
