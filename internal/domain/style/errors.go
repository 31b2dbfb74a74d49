package style

import "fmt"

// FormatError reports text that does not satisfy one of the style grammars.
type FormatError struct {
	Grammar string
	Input   string
	Reason  string
}

func newFormatError(grammar, input, reason string) *FormatError {
	return &FormatError{Grammar: grammar, Input: input, Reason: reason}
}

func (e *FormatError) Error() string {
	if e == nil {
		return ""
	}
	if e.Reason != "" {
		return fmt.Sprintf("invalid %s %q: %s", e.Grammar, e.Input, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q", e.Grammar, e.Input)
}
