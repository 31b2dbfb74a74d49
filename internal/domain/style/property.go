package style

import (
	"fmt"
	"strings"
)

// Property names a style property as it appears in template documents.
type Property string

const (
	PropBgColor Property = "bgColor"
	PropColor   Property = "color"
	PropWidth   Property = "width"
	PropHeight  Property = "height"
	PropBorder  Property = "border"
)

// Properties lists every known property in declaration order. The compiler
// emits declarations in this order.
var Properties = []Property{PropBgColor, PropColor, PropWidth, PropHeight, PropBorder}

// AddressKind selects which part of a table a rule targets.
type AddressKind string

const (
	KindTable  AddressKind = "table"
	KindRow    AddressKind = "row"
	KindColumn AddressKind = "column"
	KindCell   AddressKind = "cell"
)

// AddressKinds lists the kinds in document order.
var AddressKinds = []AddressKind{KindTable, KindRow, KindColumn, KindCell}

type propertySpec struct {
	cssName   string
	normalize func(string) (string, error)
}

var propertySpecs = map[Property]propertySpec{
	PropBgColor: {cssName: "background-color", normalize: ParseColor},
	PropColor:   {cssName: "color", normalize: ParseColor},
	PropWidth:   {cssName: "width", normalize: canonicalDimension},
	PropHeight:  {cssName: "height", normalize: canonicalDimension},
	PropBorder:  {cssName: "border", normalize: ParseBorder},
}

var allowedByKind = map[AddressKind]map[Property]struct{}{
	KindTable:  setOf(PropBgColor, PropColor, PropWidth, PropHeight, PropBorder),
	KindRow:    setOf(PropBgColor, PropColor, PropHeight, PropBorder),
	KindColumn: setOf(PropBgColor, PropColor, PropWidth, PropBorder),
	KindCell:   setOf(PropBgColor, PropColor, PropBorder),
}

func setOf(props ...Property) map[Property]struct{} {
	set := make(map[Property]struct{}, len(props))
	for _, p := range props {
		set[p] = struct{}{}
	}
	return set
}

func canonicalDimension(text string) (string, error) {
	d, err := ParseDimension(strings.TrimSpace(text))
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

// ParseAddressKind maps a kind name to an AddressKind. "col" is accepted
// as an alias for "column".
func ParseAddressKind(name string) (AddressKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "table":
		return KindTable, nil
	case "row":
		return KindRow, nil
	case "column", "col":
		return KindColumn, nil
	case "cell":
		return KindCell, nil
	}
	return "", fmt.Errorf("unknown address kind %q", name)
}

// AllowedProperties returns the properties legal for kind in declaration
// order. Unknown kinds have no allowed properties.
func AllowedProperties(kind AddressKind) []Property {
	set := allowedByKind[kind]
	out := make([]Property, 0, len(set))
	for _, p := range Properties {
		if _, ok := set[p]; ok {
			out = append(out, p)
		}
	}
	return out
}

// IsAllowed reports whether prop may be set on an address of the given kind.
func IsAllowed(kind AddressKind, prop Property) bool {
	_, ok := allowedByKind[kind][prop]
	return ok
}

// IsKnown reports whether prop is a recognised property name.
func (p Property) IsKnown() bool {
	_, ok := propertySpecs[p]
	return ok
}

// CSSName returns the stylesheet property name, e.g. "background-color".
func (p Property) CSSName() string {
	return propertySpecs[p].cssName
}

// Normalize validates value against the property's grammar and returns the
// form that is stored and emitted.
func (p Property) Normalize(value string) (string, error) {
	spec, ok := propertySpecs[p]
	if !ok {
		return "", newFormatError("property", string(p), "unknown property")
	}
	return spec.normalize(value)
}
