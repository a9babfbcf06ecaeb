package domain

import (
	"errors"
	"fmt"
)

// ErrCandidateLoad marks a fatal data-layer failure: without candidates
// nothing downstream can run.
var ErrCandidateLoad = errors.New("candidate load failed")

// ValidationError is a malformed-input error. Surfaced immediately as a
// 400, never retried.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// NewValidationError builds a field-scoped validation error.
func NewValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}
