package errors

import (
	"fmt"
)

// ParseError represents a document decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Format  string
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

// NewFormatParseError constructs a ParseError tagged with the document format
// (yaml, json) that failed to decode.
func NewFormatParseError(path, format string, line int, err error) error {
	pe := NewParseError(path, line, err).(*ParseError)
	pe.Format = format
	return pe
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	prefix := "parse error"
	if e.Format != "" {
		prefix = e.Format + " parse error"
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s:%d: %s", prefix, e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", prefix, e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures document validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// WriteError reports a failure persisting a document or stylesheet.
type WriteError struct {
	Path string
	Err  error
}

// NewWriteError constructs a WriteError.
func NewWriteError(path string, err error) error {
	return &WriteError{Path: path, Err: err}
}

func (e *WriteError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("write error: %s: %v", e.Path, e.Err)
}

// Unwrap exposes the root error.
func (e *WriteError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
