package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/alexisbeaulieu97/tablestyles/internal/domain/style"
)

func strPtr(s string) *string { return &s }

func TestTemplateSet_TableProperty(t *testing.T) {
	tpl := New("t1")
	require.NoError(t, tpl.Set(TableAddress(), style.PropWidth, strPtr("100 px")))
	assert.Equal(t, "100px", tpl.Table[style.PropWidth])

	require.NoError(t, tpl.Set(TableAddress(), style.PropWidth, nil))
	assert.NotContains(t, tpl.Table, style.PropWidth)
}

func TestTemplateSet_CreatesRowRuleLazily(t *testing.T) {
	tpl := New("t1")
	require.NoError(t, tpl.Set(RowAddress("2", false), style.PropBgColor, strPtr("#ff0000")))
	require.NoError(t, tpl.Set(RowAddress("1", true), style.PropColor, strPtr("red")))
	require.NoError(t, tpl.Set(RowAddress("2", false), style.PropHeight, strPtr("20px")))

	require.Len(t, tpl.Rows, 2)
	assert.Equal(t, IndexedRule{Index: "2", Declarations: Declarations{style.PropBgColor: "#ff0000", style.PropHeight: "20px"}}, tpl.Rows[0])
	assert.Equal(t, IndexedRule{Index: "1", FromBottom: true, Declarations: Declarations{style.PropColor: "red"}}, tpl.Rows[1])
}

func TestTemplateSet_EmptyRuleIsRetained(t *testing.T) {
	tpl := New("t1")
	require.NoError(t, tpl.Set(ColumnAddress("3", false), style.PropWidth, strPtr("5em")))
	require.NoError(t, tpl.Set(ColumnAddress("3", false), style.PropWidth, nil))

	require.Len(t, tpl.Cols, 1)
	assert.Empty(t, tpl.Cols[0].Declarations)
}

func TestTemplateSet_RejectsWidthOnRow(t *testing.T) {
	tpl := New("t1")
	err := tpl.Set(RowAddress("1", false), style.PropWidth, strPtr("10px"))
	require.Error(t, err)
	assert.True(t, HasCode(err, ErrCodeValidation))
	assert.Empty(t, tpl.Rows, "failed validation must not create a rule")
}

func TestTemplateSet_RejectsInvalidValues(t *testing.T) {
	tpl := New("t1")

	err := tpl.Set(TableAddress(), style.PropColor, strPtr("not a color!!"))
	require.Error(t, err)
	assert.True(t, HasCode(err, ErrCodeValidation))
	var formatErr *style.FormatError
	assert.ErrorAs(t, err, &formatErr)

	err = tpl.Set(CellAddress(0, 0), style.PropHeight, strPtr("1px"))
	require.Error(t, err)
	assert.True(t, HasCode(err, ErrCodeValidation))

	err = tpl.Set(CellAddress(-1, 0), style.PropColor, strPtr("red"))
	require.Error(t, err)
	assert.True(t, HasCode(err, ErrCodeValidation))

	err = tpl.Set(RowAddress("0", false), style.PropColor, strPtr("red"))
	require.Error(t, err)

	err = tpl.Set(RowAddress("x", false), style.PropColor, strPtr("red"))
	require.Error(t, err)

	assert.True(t, tpl.IsEmpty())
}

func TestTemplateSet_ClearOnMissingRuleIsNotFound(t *testing.T) {
	tpl := New("t1")
	err := tpl.Set(RowAddress("1", false), style.PropColor, nil)
	require.Error(t, err)
	assert.True(t, HasCode(err, ErrCodeNotFound))

	err = tpl.Set(CellAddress(1, 1), style.PropColor, nil)
	require.Error(t, err)
	assert.True(t, HasCode(err, ErrCodeNotFound))
	assert.True(t, tpl.IsEmpty())
}

func TestTemplateSet_Cells(t *testing.T) {
	tpl := New("t1")
	require.NoError(t, tpl.Set(CellAddress(2, 1), style.PropBorder, strPtr("1px  solid   black")))
	assert.Equal(t, Declarations{style.PropBorder: "1px solid black"}, tpl.Cells[Coord{X: 2, Y: 1}])

	decls, ok := tpl.Lookup(CellAddress(2, 1))
	require.True(t, ok)
	decls[style.PropColor] = "red"
	assert.NotContains(t, tpl.Cells[Coord{X: 2, Y: 1}], style.PropColor, "Lookup must return a copy")
}

func TestTemplate_DeleteRule(t *testing.T) {
	tpl := New("t1")
	require.NoError(t, tpl.Set(RowAddress("1", false), style.PropColor, strPtr("red")))
	require.NoError(t, tpl.Set(RowAddress("2", false), style.PropColor, strPtr("blue")))
	require.NoError(t, tpl.Set(CellAddress(0, 0), style.PropColor, strPtr("green")))

	require.NoError(t, tpl.DeleteRule(RowAddress("1", false)))
	require.Len(t, tpl.Rows, 1)
	assert.Equal(t, "2", tpl.Rows[0].Index)

	require.NoError(t, tpl.DeleteRule(CellAddress(0, 0)))
	assert.Empty(t, tpl.Cells)

	err := tpl.DeleteRule(RowAddress("1", false))
	assert.True(t, HasCode(err, ErrCodeNotFound))

	err = tpl.DeleteRule(TableAddress())
	assert.True(t, HasCode(err, ErrCodeValidation))
}

func TestTemplate_CloneIsDeep(t *testing.T) {
	tpl := New("t1")
	require.NoError(t, tpl.Set(TableAddress(), style.PropColor, strPtr("red")))
	require.NoError(t, tpl.Set(RowAddress("1", false), style.PropColor, strPtr("red")))
	require.NoError(t, tpl.Set(CellAddress(0, 0), style.PropColor, strPtr("red")))

	clone := tpl.Clone()
	require.Equal(t, tpl, clone)

	clone.Table[style.PropColor] = "blue"
	clone.Rows[0].Declarations[style.PropColor] = "blue"
	clone.Rows[0].Index = "9"
	clone.Cells[Coord{}][style.PropColor] = "blue"
	clone.Cells[Coord{X: 5}] = Declarations{}

	assert.Equal(t, "red", tpl.Table[style.PropColor])
	assert.Equal(t, "red", tpl.Rows[0].Declarations[style.PropColor])
	assert.Equal(t, "1", tpl.Rows[0].Index)
	assert.Equal(t, "red", tpl.Cells[Coord{}][style.PropColor])
	assert.Len(t, tpl.Cells, 1)
}

func TestTemplate_NormalizedReportsAllProblems(t *testing.T) {
	tpl := Template{
		ID:    "1bad",
		Table: Declarations{style.PropColor: "nope nope"},
		Rows: []IndexedRule{
			{Index: "1", Declarations: Declarations{style.PropWidth: "1px"}},
			{Index: "1", Declarations: Declarations{}},
		},
		Cells: map[Coord]Declarations{{X: -1}: {}},
	}

	err := tpl.Validate()
	require.Error(t, err)
	assert.True(t, HasCode(err, ErrCodeFormat))
	assert.True(t, HasCode(err, ErrCodeValidation))
	assert.Len(t, multierr.Errors(err), 5)
}

func TestTemplate_NormalizedCanonicalisesValues(t *testing.T) {
	tpl := Template{
		ID:    "t1",
		Table: Declarations{style.PropWidth: "10.0 px", style.PropBgColor: " red "},
		Cols:  []IndexedRule{{Index: "01", FromBottom: true, Declarations: Declarations{style.PropBorder: "solid   1px"}}},
	}
	out, err := tpl.Normalized()
	require.NoError(t, err)
	assert.Equal(t, "10px", out.Table[style.PropWidth])
	assert.Equal(t, "red", out.Table[style.PropBgColor])
	assert.Equal(t, "solid 1px", out.Cols[0].Declarations[style.PropBorder])
	assert.Equal(t, "01", out.Cols[0].Index)
	assert.Equal(t, " red ", tpl.Table[style.PropBgColor], "input must not be modified")
}
