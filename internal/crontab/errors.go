package crontab

import (
	"errors"
	"fmt"
)

// ErrNoOccurrence is returned when no instant within the search horizon
// satisfies the schedule.
var ErrNoOccurrence = errors.New("no occurrence within search horizon")

// ValidationError reports a malformed expression. Message is shown to users
// verbatim.
type ValidationError struct {
	Field   string // empty for expression-level errors
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

func fieldError(kind FieldKind, format string, args ...any) *ValidationError {
	return &ValidationError{
		Field:   kind.Name(),
		Message: kind.Name() + " " + fmt.Sprintf(format, args...),
	}
}
