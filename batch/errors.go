package batch

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when a job list, a job record or the limits
// fail validation. Use errors.Is; details are carried by *FieldError.
var ErrInvalidInput = errors.New("batch: invalid input")

// FieldError pinpoints the offending field of an invalid input.
//
// Index is the job position in the input slice, or -1 when the error
// concerns Limits or the request envelope.
type FieldError struct {
	Index  int
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("batch: invalid input: %s: %s", e.Field, e.Reason)
	}

	return fmt.Sprintf("batch: invalid input: job[%d].%s: %s", e.Index, e.Field, e.Reason)
}

// Unwrap lets errors.Is(err, ErrInvalidInput) match every FieldError.
func (e *FieldError) Unwrap() error { return ErrInvalidInput }

// fieldErrorf builds a *FieldError with a formatted reason.
func fieldErrorf(index int, field, format string, args ...interface{}) error {
	return &FieldError{Index: index, Field: field, Reason: fmt.Sprintf(format, args...)}
}
