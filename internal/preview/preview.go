// Package preview draws a template applied to a table of a given size in
// the terminal.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tablestyles/internal/domain/style"
	"github.com/alexisbeaulieu97/tablestyles/internal/domain/template"
)

const defaultCellWidth = 8

// Options control rendering.
type Options struct {
	Rows      int
	Cols      int
	CellWidth int
	// Color enables foreground and background colors. Only hex colors can be
	// shown; other color forms are listed in the legend instead.
	Color bool
}

// Render draws t on a Rows x Cols grid. Each cell shows its coordinate and
// the cascade of table, row, column and cell declarations that applies to it.
func Render(t template.Template, opts Options) (string, error) {
	if opts.Rows < 1 || opts.Cols < 1 {
		return "", fmt.Errorf("preview needs at least one row and one column, got %dx%d", opts.Rows, opts.Cols)
	}
	width := opts.CellWidth
	if width <= 0 {
		width = defaultCellWidth
	}

	lines := make([]string, 0, opts.Rows)
	for r := 0; r < opts.Rows; r++ {
		cells := make([]string, 0, opts.Cols)
		for c := 0; c < opts.Cols; c++ {
			decls := template.Resolve(t, opts.Rows, opts.Cols, r, c)
			cells = append(cells, cellStyle(decls, width, opts.Color).Render(fmt.Sprintf("%d,%d", c, r)))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	grid := lipgloss.JoinVertical(lipgloss.Left, lines...)
	frame := lipgloss.NewStyle()
	if border, ok := tableBorder(t.Table[style.PropBorder]); ok {
		frame = frame.Border(border)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("template %s (%dx%d)\n", t.ID, opts.Rows, opts.Cols))
	sb.WriteString(frame.Render(grid))
	sb.WriteString("\n")
	if legend := Legend(t, opts.Rows, opts.Cols); legend != "" {
		sb.WriteString(legend)
	}
	return sb.String(), nil
}

// Legend lists the resolved declarations of every styled cell, one per line,
// row-major.
func Legend(t template.Template, rows, cols int) string {
	var sb strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			decls := template.Resolve(t, rows, cols, r, c)
			if len(decls) == 0 {
				continue
			}
			parts := make([]string, 0, len(decls))
			for _, prop := range style.Properties {
				if v, ok := decls[prop]; ok {
					parts = append(parts, prop.CSSName()+": "+v)
				}
			}
			fmt.Fprintf(&sb, "  %d,%d  %s\n", c, r, strings.Join(parts, "; "))
		}
	}
	return sb.String()
}

func cellStyle(decls template.Declarations, width int, color bool) lipgloss.Style {
	s := lipgloss.NewStyle().Width(width).Padding(0, 1)
	if !color {
		return s
	}
	if bg, ok := terminalColor(decls[style.PropBgColor]); ok {
		s = s.Background(bg)
	}
	if fg, ok := terminalColor(decls[style.PropColor]); ok {
		s = s.Foreground(fg)
	}
	return s
}

// terminalColor converts hex colors to a lipgloss color, expanding the short
// #rgb and #rgba forms. The alpha channel is dropped.
func terminalColor(value string) (lipgloss.Color, bool) {
	if !style.IsHexColor(value) {
		return "", false
	}
	hex := strings.TrimPrefix(strings.TrimSpace(value), "#")
	switch len(hex) {
	case 3, 4:
		var sb strings.Builder
		for _, ch := range hex[:3] {
			sb.WriteRune(ch)
			sb.WriteRune(ch)
		}
		hex = sb.String()
	case 8:
		hex = hex[:6]
	}
	return lipgloss.Color("#" + strings.ToLower(hex)), true
}

func tableBorder(value string) (lipgloss.Border, bool) {
	if value == "" {
		return lipgloss.Border{}, false
	}
	for _, tok := range strings.Fields(strings.ToLower(value)) {
		switch tok {
		case "none", "hidden":
			return lipgloss.Border{}, false
		case "double":
			return lipgloss.DoubleBorder(), true
		case "dotted", "dashed":
			return lipgloss.HiddenBorder(), true
		case "ridge", "groove", "inset", "outset":
			return lipgloss.ThickBorder(), true
		}
	}
	return lipgloss.NormalBorder(), true
}
