package style

import (
	"strings"
)

var borderStyles = map[string]struct{}{
	"none": {}, "hidden": {}, "dotted": {}, "dashed": {}, "solid": {},
	"double": {}, "groove": {}, "ridge": {}, "inset": {}, "outset": {},
}

// ParseBorder validates a border shorthand ("1px solid #000") and returns
// it normalised: single spaces between tokens and canonical dimensions.
// Each of width, style and color may appear at most once.
func ParseBorder(text string) (string, error) {
	tokens := splitBorderTokens(text)
	if len(tokens) == 0 {
		return "", newFormatError("border", text, "empty value")
	}

	var haveWidth, haveStyle, haveColor bool
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if d, err := ParseDimension(tok); err == nil {
			if haveWidth {
				return "", newFormatError("border", text, "width given twice")
			}
			haveWidth = true
			out = append(out, d.String())
			continue
		}
		if _, ok := borderStyles[strings.ToLower(tok)]; ok {
			if haveStyle {
				return "", newFormatError("border", text, "style given twice")
			}
			haveStyle = true
			out = append(out, tok)
			continue
		}
		if IsValidColor(tok) {
			if haveColor {
				return "", newFormatError("border", text, "color given twice")
			}
			haveColor = true
			out = append(out, tok)
			continue
		}
		return "", newFormatError("border", text, "unexpected token "+tok)
	}
	return strings.Join(out, " "), nil
}

// splitBorderTokens splits on whitespace outside parentheses so that
// functional colors such as rgb(0 0 0) stay intact.
func splitBorderTokens(text string) []string {
	var tokens []string
	var current strings.Builder
	depth := 0
	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}
	for _, r := range strings.TrimSpace(text) {
		switch {
		case r == '(':
			depth++
			current.WriteRune(r)
		case r == ')':
			if depth > 0 {
				depth--
			}
			current.WriteRune(r)
		case depth == 0 && (r == ' ' || r == '\t' || r == '\n' || r == '\r'):
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return tokens
}
