package main

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %s\n\nSuggestion: %s", e.operation, e.context, describeCause(e.cause), e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}

// describeCause lists every aggregated error on its own line.
func describeCause(err error) string {
	errs := multierr.Errors(err)
	if len(errs) <= 1 {
		return fmt.Sprint(err)
	}
	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = "  - " + e.Error()
	}
	return fmt.Sprintf("%d problems\n%s", len(errs), strings.Join(lines, "\n"))
}
