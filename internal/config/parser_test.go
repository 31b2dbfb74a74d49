package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/alexisbeaulieu97/tablestyles/internal/domain/style"
	"github.com/alexisbeaulieu97/tablestyles/internal/domain/template"
	tserrors "github.com/alexisbeaulieu97/tablestyles/pkg/errors"
)

const validYAML = `version: "1.0"
templates:
  - id: striped
    table:
      border: "1px  solid #000"
    rows:
      - index: 1
        bgColor: "#eee"
      - index: "01"
        fromBottom: true
        height: 2em
    columns:
      - index: 2
        width: 120 px
    cells:
      - x: 1
        y: 0
        color: red
`

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestParseFile(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		file     string
		contents string
		assert   func(t *testing.T, doc *Document, err error)
	}{
		{
			name:     "valid yaml document",
			file:     "styles.yaml",
			contents: validYAML,
			assert: func(t *testing.T, doc *Document, err error) {
				require.NoError(t, err)
				require.Len(t, doc.Templates, 1)
				tpl := doc.Templates[0]
				require.Equal(t, "striped", tpl.ID)
				require.Equal(t, "1", tpl.Rows[0].Index)
				require.Equal(t, "01", tpl.Rows[1].Index)
				require.True(t, tpl.Rows[1].FromBottom)
				require.Equal(t, "120 px", tpl.Columns[0].Width)
				require.Equal(t, 1, tpl.Cells[0].X)
			},
		},
		{
			name: "jsonc with comments and trailing commas",
			file: "styles.jsonc",
			contents: `{
  // table templates
  "templates": [
    {"id": "t1", "rows": [{"index": "2", "color": "blue",},],},
  ],
}`,
			assert: func(t *testing.T, doc *Document, err error) {
				require.NoError(t, err)
				require.Equal(t, "blue", doc.Templates[0].Rows[0].Color)
			},
		},
		{
			name:     "width on a row is an unknown field",
			file:     "styles.yaml",
			contents: "templates:\n  - id: t1\n    rows:\n      - index: 1\n        width: 10px\n",
			assert: func(t *testing.T, doc *Document, err error) {
				require.Nil(t, doc)
				var parseErr *tserrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 5, parseErr.Line)
			},
		},
		{
			name:     "malformed json reports its line",
			file:     "styles.json",
			contents: "{\n  \"templates\": [\n    {\"id\": \"t1\",}\n  ]\n}",
			assert: func(t *testing.T, doc *Document, err error) {
				var parseErr *tserrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, "json", parseErr.Format)
				require.Equal(t, 3, parseErr.Line)
			},
		},
		{
			name:     "unsupported extension",
			file:     "styles.toml",
			contents: "",
			assert: func(t *testing.T, doc *Document, err error) {
				var parseErr *tserrors.ParseError
				require.ErrorAs(t, err, &parseErr)
			},
		},
		{
			name:     "empty yaml is an empty document",
			file:     "empty.yml",
			contents: "",
			assert: func(t *testing.T, doc *Document, err error) {
				require.NoError(t, err)
				require.Empty(t, doc.Templates)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := writeFile(t, tc.file, tc.contents)
			doc, err := ParseFile(path)
			tc.assert(t, doc, err)
		})
	}
}

func TestParseReportsEveryInvalidField(t *testing.T) {
	t.Parallel()

	contents := `version: beta
templates:
  - id: 1bad
    rows:
      - index: 0
        bgColor: notacolor!
  - id: ok
    cells:
      - x: -1
        y: 0
  - id: ok
`
	_, err := Parse("styles.yaml", FormatYAML, []byte(contents))
	require.Error(t, err)

	fields := map[string]bool{}
	for _, e := range multierr.Errors(err) {
		var ve *tserrors.ValidationError
		require.ErrorAs(t, e, &ve)
		fields[ve.Field] = true
	}
	require.True(t, fields["version"])
	require.True(t, fields["templates[0].id"])
	require.True(t, fields["templates[0].rows[0].index"])
	require.True(t, fields["templates[0].rows[0].bgColor"])
	require.True(t, fields["templates[1].cells[0].x"])
	require.True(t, fields["templates[2].id"])
}

func TestToDomainNormalisesValues(t *testing.T) {
	t.Parallel()

	doc, err := Parse("styles.yaml", FormatYAML, []byte(validYAML))
	require.NoError(t, err)

	domain, err := ToDomain(doc)
	require.NoError(t, err)
	require.Len(t, domain.Templates, 1)

	tpl := domain.Templates[0]
	require.Equal(t, "1px solid #000", tpl.Table[style.PropBorder])
	require.Equal(t, "#eee", tpl.Rows[0].Declarations[style.PropBgColor])
	require.Equal(t, "01", tpl.Rows[1].Index)
	require.Equal(t, "120px", tpl.Cols[0].Declarations[style.PropWidth])
	require.Equal(t, "red", tpl.Cells[template.Coord{X: 1, Y: 0}][style.PropColor])
}

func TestToDomainRejectsDuplicateRules(t *testing.T) {
	t.Parallel()

	contents := "templates:\n  - id: t1\n    rows:\n      - index: 1\n      - index: 1\n"
	doc, err := Parse("styles.yaml", FormatYAML, []byte(contents))
	require.NoError(t, err)

	_, err = ToDomain(doc)
	require.True(t, template.HasCode(err, template.ErrCodeValidation))
}

func TestMarshalRoundTrip(t *testing.T) {
	t.Parallel()

	doc, err := Parse("styles.yaml", FormatYAML, []byte(validYAML))
	require.NoError(t, err)
	domain, err := ToDomain(doc)
	require.NoError(t, err)

	for _, format := range []Format{FormatYAML, FormatJSON} {
		out, err := Marshal(FromDomain(domain), format)
		require.NoError(t, err)

		reparsed, err := Parse("styles."+string(format), format, out)
		require.NoError(t, err, string(out))
		again, err := ToDomain(reparsed)
		require.NoError(t, err)
		require.Equal(t, domain, again)
	}
}

func TestGetValidatorIsShared(t *testing.T) {
	require.Same(t, GetValidator(), GetValidator())
}
