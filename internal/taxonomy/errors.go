// Package taxonomy provides the read-only skill taxonomy used to recognize skills in text.
package taxonomy

import (
	"errors"
	"fmt"
)

// ErrTaxonomyUnavailable is returned when a taxonomy is needed but none has been loaded.
var ErrTaxonomyUnavailable = errors.New("skill taxonomy unavailable")

// LoadError represents an error reading or decoding taxonomy data.
type LoadError struct {
	Source  string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("taxonomy load error (%s): %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("taxonomy load error (%s): %s", e.Source, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// ValidationError represents invalid taxonomy data, such as an entry without a name.
type ValidationError struct {
	Entry   int
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("taxonomy validation error in entry %d: %s", e.Entry, e.Message)
}
