package style

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDimension_Valid(t *testing.T) {
	cases := []struct {
		in    string
		value float64
		unit  string
	}{
		{"1px", 1, "px"},
		{"-10.10px", -10.1, "px"},
		{"1 px", 1, "px"},
		{"1.1 px", 1.1, "px"},
		{"0em", 0, "em"},
		{"25PX", 25, "PX"},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			d, err := ParseDimension(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.value, d.Value())
			require.Equal(t, tc.unit, d.Unit())
		})
	}
}

func TestParseDimension_Invalid(t *testing.T) {
	for _, in := range []string{"", "1", "px", "1 1", "1px-z", "1.px", "- 1px", "1.5", "px1", " 1px", "1px ", "1p x", "1%"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseDimension(in)
			require.Error(t, err)
			var formatErr *FormatError
			require.ErrorAs(t, err, &formatErr)
			require.Equal(t, in, formatErr.Input)
		})
	}
}

func TestNewDimension_RejectsBadUnits(t *testing.T) {
	for _, unit := range []string{"", "p x", "px1", "%", "-"} {
		_, err := NewDimension(1, unit)
		require.Error(t, err, "unit %q", unit)
	}

	_, err := NewDimension(math.NaN(), "px")
	require.Error(t, err)
	_, err = NewDimension(math.Inf(1), "px")
	require.Error(t, err)
}

func TestDimension_String(t *testing.T) {
	d, err := ParseDimension("-10.10px")
	require.NoError(t, err)
	require.Equal(t, "-10.1px", d.String())

	d, err = NewDimension(12, "em")
	require.NoError(t, err)
	require.Equal(t, "12em", d.String())

	d, err = NewDimension(0.25, "rem")
	require.NoError(t, err)
	require.Equal(t, "0.25rem", d.String())
}

func TestDimension_RoundTrip(t *testing.T) {
	values := []float64{0, 1, -1, 1.5, -10.1, 0.001, 123456789, 1e20, 3.14159, -0.5}
	units := []string{"px", "em", "Rem", "pt"}

	for _, v := range values {
		for _, u := range units {
			d, err := NewDimension(v, u)
			require.NoError(t, err)

			parsed, err := ParseDimension(d.String())
			require.NoError(t, err, "render %q", d.String())
			require.True(t, parsed.Equal(d), "round trip of %v%s gave %v%s", v, u, parsed.Value(), parsed.Unit())
		}
	}
}

func TestDimension_EqualIsCaseSensitive(t *testing.T) {
	a, err := NewDimension(1, "px")
	require.NoError(t, err)
	b, err := NewDimension(1, "PX")
	require.NoError(t, err)
	require.False(t, a.Equal(b))
	require.NotEqual(t, a, b)

	c, err := ParseDimension("1px")
	require.NoError(t, err)
	require.Equal(t, a, c)
}
