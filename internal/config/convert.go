package config

import (
	"sort"

	"github.com/alexisbeaulieu97/tablestyles/internal/domain/style"
	"github.com/alexisbeaulieu97/tablestyles/internal/domain/template"
)

// CurrentVersion is written into documents produced by FromDomain.
const CurrentVersion = "1.0"

// ToDomain converts a decoded document into the domain model. The result is
// normalised, so values are in canonical form and duplicate rule keys or ids
// are reported as domain errors.
func ToDomain(doc *Document) (template.Document, error) {
	if doc == nil {
		return template.Document{}, nil
	}

	raw := template.Document{Templates: make([]template.Template, 0, len(doc.Templates))}
	for _, dto := range doc.Templates {
		raw.Templates = append(raw.Templates, templateToDomain(dto))
	}
	return raw.Normalized()
}

func templateToDomain(dto Template) template.Template {
	t := template.New(dto.ID)
	if dto.Table != nil {
		t.Table = declarations(map[style.Property]string{
			style.PropBgColor: dto.Table.BgColor,
			style.PropColor:   dto.Table.Color,
			style.PropWidth:   dto.Table.Width,
			style.PropHeight:  dto.Table.Height,
			style.PropBorder:  dto.Table.Border,
		})
	}
	for _, r := range dto.Rows {
		t.Rows = append(t.Rows, template.IndexedRule{
			Index:      r.Index,
			FromBottom: r.FromBottom,
			Declarations: declarations(map[style.Property]string{
				style.PropBgColor: r.BgColor,
				style.PropColor:   r.Color,
				style.PropHeight:  r.Height,
				style.PropBorder:  r.Border,
			}),
		})
	}
	for _, c := range dto.Columns {
		t.Cols = append(t.Cols, template.IndexedRule{
			Index:      c.Index,
			FromBottom: c.FromBottom,
			Declarations: declarations(map[style.Property]string{
				style.PropBgColor: c.BgColor,
				style.PropColor:   c.Color,
				style.PropWidth:   c.Width,
				style.PropBorder:  c.Border,
			}),
		})
	}
	for _, c := range dto.Cells {
		coord := template.Coord{X: c.X, Y: c.Y}
		decls := declarations(map[style.Property]string{
			style.PropBgColor: c.BgColor,
			style.PropColor:   c.Color,
			style.PropBorder:  c.Border,
		})
		if existing, ok := t.Cells[coord]; ok {
			for k, v := range decls {
				existing[k] = v
			}
			continue
		}
		t.Cells[coord] = decls
	}
	return t
}

func declarations(values map[style.Property]string) template.Declarations {
	out := template.Declarations{}
	for prop, value := range values {
		if value != "" {
			out[prop] = value
		}
	}
	return out
}

// FromDomain converts a domain document into its file representation. Cells
// are written row-major so the output is stable.
func FromDomain(doc template.Document) *Document {
	out := &Document{Version: CurrentVersion, Templates: make([]Template, 0, len(doc.Templates))}
	for _, t := range doc.Templates {
		out.Templates = append(out.Templates, templateFromDomain(t))
	}
	return out
}

func templateFromDomain(t template.Template) Template {
	dto := Template{ID: t.ID}
	if len(t.Table) > 0 {
		dto.Table = &TableStyle{
			BgColor: t.Table[style.PropBgColor],
			Color:   t.Table[style.PropColor],
			Width:   t.Table[style.PropWidth],
			Height:  t.Table[style.PropHeight],
			Border:  t.Table[style.PropBorder],
		}
	}
	for _, r := range t.Rows {
		dto.Rows = append(dto.Rows, RowRule{
			Index:      r.Index,
			FromBottom: r.FromBottom,
			BgColor:    r.Declarations[style.PropBgColor],
			Color:      r.Declarations[style.PropColor],
			Height:     r.Declarations[style.PropHeight],
			Border:     r.Declarations[style.PropBorder],
		})
	}
	for _, c := range t.Cols {
		dto.Columns = append(dto.Columns, ColumnRule{
			Index:      c.Index,
			FromBottom: c.FromBottom,
			BgColor:    c.Declarations[style.PropBgColor],
			Color:      c.Declarations[style.PropColor],
			Width:      c.Declarations[style.PropWidth],
			Border:     c.Declarations[style.PropBorder],
		})
	}

	coords := make([]template.Coord, 0, len(t.Cells))
	for coord := range t.Cells {
		coords = append(coords, coord)
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Y != coords[j].Y {
			return coords[i].Y < coords[j].Y
		}
		return coords[i].X < coords[j].X
	})
	for _, coord := range coords {
		decls := t.Cells[coord]
		dto.Cells = append(dto.Cells, CellRule{
			X:       coord.X,
			Y:       coord.Y,
			BgColor: decls[style.PropBgColor],
			Color:   decls[style.PropColor],
			Border:  decls[style.PropBorder],
		})
	}
	return dto
}
