package config

// Document is the on-disk representation of a template document. The same
// shape is used for YAML, JSON and JSONC files.
type Document struct {
	Version   string     `yaml:"version,omitempty" json:"version,omitempty" validate:"omitempty,semver"`
	Templates []Template `yaml:"templates" json:"templates" validate:"dive"`
}

// Template describes one named table template.
type Template struct {
	ID      string       `yaml:"id" json:"id" validate:"required,template_id"`
	Table   *TableStyle  `yaml:"table,omitempty" json:"table,omitempty"`
	Rows    []RowRule    `yaml:"rows,omitempty" json:"rows,omitempty" validate:"dive"`
	Columns []ColumnRule `yaml:"columns,omitempty" json:"columns,omitempty" validate:"dive"`
	Cells   []CellRule   `yaml:"cells,omitempty" json:"cells,omitempty" validate:"dive"`
}

// TableStyle holds the table-wide defaults. Empty strings are unset.
type TableStyle struct {
	BgColor string `yaml:"bgColor,omitempty" json:"bgColor,omitempty" validate:"omitempty,css_color"`
	Color   string `yaml:"color,omitempty" json:"color,omitempty" validate:"omitempty,css_color"`
	Width   string `yaml:"width,omitempty" json:"width,omitempty" validate:"omitempty,css_dimension"`
	Height  string `yaml:"height,omitempty" json:"height,omitempty" validate:"omitempty,css_dimension"`
	Border  string `yaml:"border,omitempty" json:"border,omitempty" validate:"omitempty,css_border"`
}

// RowRule styles one row, counted from the top or, with FromBottom, from the last row.
type RowRule struct {
	Index      string `yaml:"index" json:"index" validate:"required,line_index"`
	FromBottom bool   `yaml:"fromBottom,omitempty" json:"fromBottom,omitempty"`
	BgColor    string `yaml:"bgColor,omitempty" json:"bgColor,omitempty" validate:"omitempty,css_color"`
	Color      string `yaml:"color,omitempty" json:"color,omitempty" validate:"omitempty,css_color"`
	Height     string `yaml:"height,omitempty" json:"height,omitempty" validate:"omitempty,css_dimension"`
	Border     string `yaml:"border,omitempty" json:"border,omitempty" validate:"omitempty,css_border"`
}

// ColumnRule styles one column.
type ColumnRule struct {
	Index      string `yaml:"index" json:"index" validate:"required,line_index"`
	FromBottom bool   `yaml:"fromBottom,omitempty" json:"fromBottom,omitempty"`
	BgColor    string `yaml:"bgColor,omitempty" json:"bgColor,omitempty" validate:"omitempty,css_color"`
	Color      string `yaml:"color,omitempty" json:"color,omitempty" validate:"omitempty,css_color"`
	Width      string `yaml:"width,omitempty" json:"width,omitempty" validate:"omitempty,css_dimension"`
	Border     string `yaml:"border,omitempty" json:"border,omitempty" validate:"omitempty,css_border"`
}

// CellRule styles the cell at zero-based column X and row Y.
type CellRule struct {
	X       int    `yaml:"x" json:"x" validate:"min=0"`
	Y       int    `yaml:"y" json:"y" validate:"min=0"`
	BgColor string `yaml:"bgColor,omitempty" json:"bgColor,omitempty" validate:"omitempty,css_color"`
	Color   string `yaml:"color,omitempty" json:"color,omitempty" validate:"omitempty,css_color"`
	Border  string `yaml:"border,omitempty" json:"border,omitempty" validate:"omitempty,css_border"`
}
