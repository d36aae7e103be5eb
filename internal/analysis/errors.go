package analysis

import (
	"errors"
	"fmt"
)

// ErrInvalidInput matches every InvalidInputError with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports a document or request the engine refuses to analyze.
type InvalidInputError struct {
	Field   string
	Message string
	Cause   error
}

func (e *InvalidInputError) Error() string {
	msg := "invalid input"
	if e.Field != "" {
		msg += " in " + e.Field
	}
	msg += ": " + e.Message
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *InvalidInputError) Unwrap() error {
	return e.Cause
}

// Is makes errors.Is(err, ErrInvalidInput) hold for any InvalidInputError.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}
