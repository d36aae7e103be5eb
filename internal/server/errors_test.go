package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/analysis"
	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/types"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "body", Message: "request body is empty"}
	assert.Equal(t, "validation error: body - request body is empty", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestErrPayloadTooLarge(t *testing.T) {
	err := &ErrPayloadTooLarge{Limit: 1024}
	assert.Equal(t, "request body exceeds 1024 bytes", err.Error())
	assert.Equal(t, http.StatusRequestEntityTooLarge, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	req := &types.AnalyzeRequest{}
	validatorErr := req.Validate()
	require.Error(t, validatorErr)

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "nil",
			err:      nil,
			expected: http.StatusOK,
		},
		{
			name:     "InvalidInputError",
			err:      &analysis.InvalidInputError{Field: "resume.raw_text", Message: "text is required"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped InvalidInputError",
			err:      fmt.Errorf("analyze: %w", &analysis.InvalidInputError{Field: "resume.role", Message: "unknown role"}),
			expected: http.StatusBadRequest,
		},
		{
			name:     "validator errors",
			err:      validatorErr,
			expected: http.StatusBadRequest,
		},
		{
			name:     "ErrValidation",
			err:      &ErrValidation{Field: "body", Message: "bad"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "taxonomy unavailable",
			err:      taxonomy.ErrTaxonomyUnavailable,
			expected: http.StatusServiceUnavailable,
		},
		{
			name:     "wrapped taxonomy unavailable",
			err:      fmt.Errorf("extract: %w", taxonomy.ErrTaxonomyUnavailable),
			expected: http.StatusServiceUnavailable,
		},
		{
			name:     "load error",
			err:      &taxonomy.LoadError{Source: "skills.yaml", Message: "parse failed"},
			expected: http.StatusInternalServerError,
		},
		{
			name:     "unknown error",
			err:      errors.New("boom"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	empty := ""
	req := &types.AnalyzeRequest{
		Resume:         &types.DocumentInput{RawText: &empty, Format: "pdf"},
		JobDescription: &types.DocumentInput{},
	}
	err := req.Validate()
	require.Error(t, err)

	msg := ErrorMessage(err)
	assert.Contains(t, msg, "validation error: ")
	assert.Contains(t, msg, "Resume.Format: failed on 'oneof'")
	assert.Contains(t, msg, "JobDescription.RawText: failed on 'required'")
	assert.NotContains(t, msg, "AnalyzeRequest.")

	plain := &analysis.InvalidInputError{Field: "resume.raw_text", Message: "text is not valid UTF-8"}
	assert.Equal(t, plain.Error(), ErrorMessage(plain))
}

func TestFieldPath(t *testing.T) {
	assert.Equal(t, "Resume.RawText", fieldPath("AnalyzeRequest.Resume.RawText"))
	assert.Equal(t, "Documents[1]", fieldPath("CompareRequest.Documents[1]"))
	assert.Equal(t, "Field", fieldPath("Field"))
}
