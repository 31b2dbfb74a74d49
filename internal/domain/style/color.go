package style

import (
	"regexp"
	"strings"
)

const (
	number = `[+-]?(?:\d+(?:\.\d*)?|\.\d+)`
	angle  = number + `(?:deg|rad|grad|turn)?`
	alpha  = number + `%?`
)

var colorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`),
	regexp.MustCompile(`^[A-Za-z]+$`),
	regexp.MustCompile(`^hsla?\(\s*` + angle + `\s*,\s*` + number + `%\s*,\s*` + number + `%\s*(?:,\s*` + alpha + `\s*)?\)$`),
	regexp.MustCompile(`^hsla?\(\s*` + angle + `\s+` + number + `%\s+` + number + `%\s*(?:/\s*` + alpha + `\s*)?\)$`),
	regexp.MustCompile(`^rgba?\(\s*` + number + `%?\s*,\s*` + number + `%?\s*,\s*` + number + `%?\s*(?:,\s*` + alpha + `\s*)?\)$`),
	regexp.MustCompile(`^rgba?\(\s*` + number + `%?\s+` + number + `%?\s+` + number + `%?\s*(?:/\s*` + alpha + `\s*)?\)$`),
	regexp.MustCompile(`^var\(\s*--[A-Za-z0-9_-]+\s*\)$`),
}

// IsValidColor reports whether the trimmed text is a hex color, a bare
// color name, an hsl()/hsla() or rgb()/rgba() function, or a var(--name)
// reference. Color names are not checked against a palette.
func IsValidColor(text string) bool {
	trimmed := strings.TrimSpace(text)
	for _, p := range colorPatterns {
		if p.MatchString(trimmed) {
			return true
		}
	}
	return false
}

// IsValidOptionalColor treats nil as "unset", which is always valid.
func IsValidOptionalColor(text *string) bool {
	return text == nil || IsValidColor(*text)
}

// ParseColor returns the trimmed color text or a FormatError.
func ParseColor(text string) (string, error) {
	if !IsValidColor(text) {
		return "", newFormatError("color", text, "")
	}
	return strings.TrimSpace(text), nil
}

// IsHexColor reports whether text is a # prefixed hex color.
func IsHexColor(text string) bool {
	return colorPatterns[0].MatchString(strings.TrimSpace(text))
}
