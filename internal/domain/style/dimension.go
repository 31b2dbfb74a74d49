package style

import (
	"math"
	"regexp"
	"strconv"
)

var (
	dimensionPattern = regexp.MustCompile(`^(-?\d+(?:\.\d+)?)\s*([A-Za-z]+)$`)
	unitPattern      = regexp.MustCompile(`^[A-Za-z]+$`)
)

// Dimension is an immutable numeric value paired with a CSS unit such as
// "px" or "em". Units are compared case-sensitively.
type Dimension struct {
	value float64
	unit  string
}

// NewDimension builds a Dimension from its parts.
func NewDimension(value float64, unit string) (Dimension, error) {
	if unit == "" {
		return Dimension{}, newFormatError("dimension unit", unit, "unit is empty")
	}
	if !unitPattern.MatchString(unit) {
		return Dimension{}, newFormatError("dimension unit", unit, "unit must contain letters only")
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Dimension{}, newFormatError("dimension", strconv.FormatFloat(value, 'g', -1, 64)+unit, "value is not finite")
	}
	return Dimension{value: value, unit: unit}, nil
}

// ParseDimension parses text of the form "<number><unit>", allowing
// whitespace between the number and the unit ("1 px").
func ParseDimension(text string) (Dimension, error) {
	m := dimensionPattern.FindStringSubmatch(text)
	if m == nil {
		return Dimension{}, newFormatError("dimension", text, "expected <number><unit>")
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Dimension{}, newFormatError("dimension", text, err.Error())
	}
	return NewDimension(value, m[2])
}

// IsValidDimension reports whether text parses as a Dimension.
func IsValidDimension(text string) bool {
	_, err := ParseDimension(text)
	return err == nil
}

// Value returns the numeric component.
func (d Dimension) Value() float64 { return d.value }

// Unit returns the unit component.
func (d Dimension) Unit() string { return d.unit }

// String renders the canonical form accepted by ParseDimension: integral
// values drop the fractional part, others keep the shortest exact decimal.
func (d Dimension) String() string {
	if d.value == math.Trunc(d.value) && math.Abs(d.value) < 1e15 {
		return strconv.FormatInt(int64(d.value), 10) + d.unit
	}
	return strconv.FormatFloat(d.value, 'f', -1, 64) + d.unit
}

// Equal compares value and unit.
func (d Dimension) Equal(other Dimension) bool {
	return d.value == other.value && d.unit == other.unit
}
