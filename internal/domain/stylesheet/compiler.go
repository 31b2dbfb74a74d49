// Package stylesheet turns a template document into stylesheet text.
//
// Output is a pure function of the document: templates in document order,
// and within a template the table defaults, then row rules, column rules
// and cells. Blocks without declarations are skipped, so an empty document
// compiles to the empty string.
package stylesheet

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/tablestyles/internal/domain/style"
	"github.com/alexisbeaulieu97/tablestyles/internal/domain/template"
)

// Options tune selector construction.
type Options struct {
	// Scope is prepended to every selector, e.g. ".ql-editor".
	Scope string
}

// Block is one selector with its declarations in emission order.
type Block struct {
	Selector     string
	Declarations []Declaration
}

// Declaration is a single CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// Compiler renders documents with fixed options.
type Compiler struct {
	opts Options
}

// NewCompiler returns a Compiler using opts.
func NewCompiler(opts Options) *Compiler {
	opts.Scope = strings.TrimSpace(opts.Scope)
	return &Compiler{opts: opts}
}

// Compile renders doc with default options.
func Compile(doc template.Document) string {
	return NewCompiler(Options{}).Compile(doc)
}

// Compile renders the whole document.
func (c *Compiler) Compile(doc template.Document) string {
	var sb strings.Builder
	c.WriteTo(&sb, doc) //nolint:errcheck
	return sb.String()
}

// CompileTemplate renders a single template.
func (c *Compiler) CompileTemplate(t template.Template) string {
	return c.Compile(template.NewDocument(t))
}

// Blocks lists the rule blocks for doc in emission order.
func (c *Compiler) Blocks(doc template.Document) []Block {
	var blocks []Block
	for _, t := range doc.Templates {
		blocks = append(blocks, c.templateBlocks(t)...)
	}
	return blocks
}

// WriteTo writes the stylesheet for doc to w. Blocks are separated by a
// blank line.
func (c *Compiler) WriteTo(w io.Writer, doc template.Document) (int64, error) {
	var total int64
	for i, block := range c.Blocks(doc) {
		if i > 0 {
			n, err := fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
		n, err := writeBlock(w, block)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (c *Compiler) templateBlocks(t template.Template) []Block {
	var blocks []Block
	add := func(selector string, decls template.Declarations) {
		if b, ok := newBlock(selector, decls); ok {
			blocks = append(blocks, b)
		}
	}

	add(TableSelector(c.opts.Scope, t.ID), t.Table)
	for _, r := range template.OrderRules(t.Rows) {
		add(RowSelector(c.opts.Scope, t.ID, r), r.Declarations)
	}
	for _, r := range template.OrderRules(t.Cols) {
		add(ColumnSelector(c.opts.Scope, t.ID, r), r.Declarations)
	}
	for _, coord := range sortedCells(t.Cells) {
		add(CellSelector(c.opts.Scope, t.ID, coord), t.Cells[coord])
	}
	return blocks
}

func newBlock(selector string, decls template.Declarations) (Block, bool) {
	block := Block{Selector: selector}
	for _, prop := range style.Properties {
		if value, ok := decls[prop]; ok {
			block.Declarations = append(block.Declarations, Declaration{Property: prop.CSSName(), Value: value})
		}
	}
	return block, len(block.Declarations) > 0
}

// sortedCells orders coordinates row-major: by row, then by column.
func sortedCells(cells map[template.Coord]template.Declarations) []template.Coord {
	coords := make([]template.Coord, 0, len(cells))
	for c := range cells {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Y != coords[j].Y {
			return coords[i].Y < coords[j].Y
		}
		return coords[i].X < coords[j].X
	})
	return coords
}

func writeBlock(w io.Writer, block Block) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s {\n", block.Selector)
	total += n
	if err != nil {
		return total, err
	}
	for _, d := range block.Declarations {
		n, err = fmt.Fprintf(w, "  %s: %s;\n", d.Property, d.Value)
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}
