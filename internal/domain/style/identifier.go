package style

import "regexp"

var templateIDPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9\-]*$`)

// IsValidTemplateID reports whether id can name a template. Valid ids are
// also valid CSS class identifiers.
func IsValidTemplateID(id string) bool {
	return templateIDPattern.MatchString(id)
}

// ValidateTemplateID returns a FormatError for ids that fail the grammar.
func ValidateTemplateID(id string) error {
	if !IsValidTemplateID(id) {
		return newFormatError("template id", id, "must start with a letter followed by letters, digits or '-'")
	}
	return nil
}
