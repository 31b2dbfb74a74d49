package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedProperties(t *testing.T) {
	assert.Equal(t, []Property{PropBgColor, PropColor, PropWidth, PropHeight, PropBorder}, AllowedProperties(KindTable))
	assert.Equal(t, []Property{PropBgColor, PropColor, PropHeight, PropBorder}, AllowedProperties(KindRow))
	assert.Equal(t, []Property{PropBgColor, PropColor, PropWidth, PropBorder}, AllowedProperties(KindColumn))
	assert.Equal(t, []Property{PropBgColor, PropColor, PropBorder}, AllowedProperties(KindCell))
	assert.Empty(t, AllowedProperties(AddressKind("page")))
}

func TestIsAllowed(t *testing.T) {
	assert.False(t, IsAllowed(KindRow, PropWidth))
	assert.False(t, IsAllowed(KindColumn, PropHeight))
	assert.False(t, IsAllowed(KindCell, PropWidth))
	assert.True(t, IsAllowed(KindColumn, PropWidth))
	assert.False(t, IsAllowed(KindTable, Property("margin")))
}

func TestProperty_Normalize(t *testing.T) {
	got, err := PropWidth.Normalize("1.50 px")
	require.NoError(t, err)
	assert.Equal(t, "1.5px", got)

	got, err = PropBgColor.Normalize(" #ff0000 ")
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", got)

	_, err = PropColor.Normalize("not a color!!")
	require.Error(t, err)

	_, err = PropHeight.Normalize("tall")
	require.Error(t, err)

	_, err = Property("margin").Normalize("1px")
	require.Error(t, err)
}

func TestProperty_CSSName(t *testing.T) {
	assert.Equal(t, "background-color", PropBgColor.CSSName())
	assert.Equal(t, "color", PropColor.CSSName())
	assert.Equal(t, "border", PropBorder.CSSName())
}

func TestParseAddressKind(t *testing.T) {
	kind, err := ParseAddressKind("col")
	require.NoError(t, err)
	assert.Equal(t, KindColumn, kind)

	kind, err = ParseAddressKind("Row")
	require.NoError(t, err)
	assert.Equal(t, KindRow, kind)

	_, err = ParseAddressKind("page")
	require.Error(t, err)
}

func TestIsValidTemplateID(t *testing.T) {
	for _, id := range []string{"a", "t1", "template-1", "A-b-C"} {
		assert.True(t, IsValidTemplateID(id), id)
	}
	for _, id := range []string{"", "1bad", "-a", "a_b", "a b", "é"} {
		assert.False(t, IsValidTemplateID(id), id)
	}
	require.Error(t, ValidateTemplateID("1bad"))
}

func TestParseBorder(t *testing.T) {
	cases := map[string]string{
		"1px solid #000":         "1px solid #000",
		"  2.50px   dashed red ": "2.5px dashed red",
		"solid":                  "solid",
		"1px solid rgb(0 0 0)":   "1px solid rgb(0 0 0)",
		"none":                   "none",
	}
	for in, want := range cases {
		got, err := ParseBorder(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "   ", "1px 2px", "solid dashed", "red blue", "1px solid #00"} {
		_, err := ParseBorder(in)
		require.Error(t, err, in)
	}
}
