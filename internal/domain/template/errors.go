package template

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the error categories surfaced by template operations.
type ErrorCode string

const (
	ErrCodeFormat     ErrorCode = "FORMAT_ERROR"
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
	ErrCodeNotFound   ErrorCode = "NOT_FOUND"
	ErrCodeConflict   ErrorCode = "CONFLICT"
	ErrCodeInternal   ErrorCode = "INTERNAL_ERROR"
)

// DomainError represents a typed error enriched with contextual data while
// remaining free from infrastructure dependencies.
type DomainError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As usage.
func (e *DomainError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is allows errors.Is comparisons against other DomainError values.
func (e *DomainError) Is(target error) bool {
	var domainErr *DomainError
	if !errors.As(target, &domainErr) {
		return false
	}
	return e.Code == domainErr.Code && e.Message == domainErr.Message
}

// WithContext clones the error with additional contextual metadata.
func (e *DomainError) WithContext(ctx map[string]interface{}) *DomainError {
	if e == nil {
		return nil
	}
	merged := make(map[string]interface{}, len(e.Context)+len(ctx))
	for k, v := range e.Context {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Cause:   e.Cause,
		Context: merged,
	}
}

// NewDomainError constructs a DomainError with the supplied code and message.
func NewDomainError(code ErrorCode, message string, cause error, context map[string]interface{}) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// HasCode reports whether any DomainError in err's tree carries code. It
// follows both single and multi-error wrapping.
func HasCode(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}
	if de, ok := err.(*DomainError); ok && de != nil && de.Code == code {
		return true
	}
	switch u := err.(type) {
	case interface{ Unwrap() []error }:
		for _, inner := range u.Unwrap() {
			if HasCode(inner, code) {
				return true
			}
		}
	case interface{ Unwrap() error }:
		return HasCode(u.Unwrap(), code)
	}
	return false
}

func newFormatError(message string, cause error, context map[string]interface{}) *DomainError {
	return NewDomainError(ErrCodeFormat, message, cause, context)
}

func newValidationError(message string, cause error, context map[string]interface{}) *DomainError {
	return NewDomainError(ErrCodeValidation, message, cause, context)
}

func newNotFoundError(message string, context map[string]interface{}) *DomainError {
	return NewDomainError(ErrCodeNotFound, message, nil, context)
}

func newConflictError(id string) *DomainError {
	return NewDomainError(ErrCodeConflict, "template id already exists", nil, map[string]interface{}{
		"template_id": id,
	})
}

// NewTemplateNotFoundError reports a reference to a template id that is not
// present in the document.
func NewTemplateNotFoundError(id string) *DomainError {
	return newNotFoundError("template not found", map[string]interface{}{"template_id": id})
}

// NewConflictError reports an id collision on create or copy.
func NewConflictError(id string) *DomainError {
	return newConflictError(id)
}

// NewIDFormatError reports a template id that fails the id grammar.
func NewIDFormatError(id string, cause error) *DomainError {
	return newFormatError("invalid template id", cause, map[string]interface{}{"template_id": id})
}
