package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-matcher/internal/analysis"
	"github.com/jonathan/resume-matcher/internal/taxonomy"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrPayloadTooLarge indicates the request body exceeded the size limit
type ErrPayloadTooLarge struct {
	Limit int64
}

func (e *ErrPayloadTooLarge) Error() string {
	return fmt.Sprintf("request body exceeds %d bytes", e.Limit)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		tooLarge      *ErrPayloadTooLarge
		fieldErrs     validator.ValidationErrors
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &validationErr), errors.As(err, &fieldErrs), errors.Is(err, analysis.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, taxonomy.ErrTaxonomyUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ErrorMessage renders err for a response body. Validator errors are reduced to
// "field: rule" pairs using the JSON field path.
func ErrorMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		parts = append(parts, fmt.Sprintf("%s: failed on '%s'", fieldPath(fe.Namespace()), fe.Tag()))
	}
	return "validation error: " + strings.Join(parts, "; ")
}

// fieldPath drops the struct name prefix validator puts on namespaces
// ("AnalyzeRequest.Resume.RawText" becomes "Resume.RawText").
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}
