// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Role identifies which side of an analysis a document plays.
type Role string

const (
	// RoleResume marks a candidate document.
	RoleResume Role = "resume"
	// RoleJobDescription marks a target document.
	RoleJobDescription Role = "job_description"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleResume || r == RoleJobDescription
}

// Document is an immutable piece of already-extracted plain text.
// Construct it with NewDocument; the zero value has no role and is rejected by the engine.
type Document struct {
	ID      string `json:"id"`
	RawText string `json:"raw_text"`
	Role    Role   `json:"role"`
}

// NewDocument creates a document, generating an ID when id is empty.
func NewDocument(id string, role Role, rawText string) Document {
	if id == "" {
		id = uuid.New().String()
	}
	return Document{ID: id, RawText: rawText, Role: role}
}

// DocumentInput is the wire form of a document supplied by a caller.
// RawText is a pointer so that a missing or null text can be told apart from an empty one.
type DocumentInput struct {
	ID      string  `json:"id,omitempty"`
	RawText *string `json:"raw_text" validate:"required"`
	Format  string  `json:"format,omitempty" validate:"omitempty,oneof=text html"`
}

// Validate validates the DocumentInput using the validator.
func (d *DocumentInput) Validate() error {
	validate := validator.New()
	return validate.Struct(d)
}

// AnalyzeRequest is the request body for a resume/job-description analysis.
type AnalyzeRequest struct {
	Resume         *DocumentInput `json:"resume" validate:"required"`
	JobDescription *DocumentInput `json:"job_description" validate:"required"`
	SuggestLimit   int            `json:"suggest_limit,omitempty" validate:"gte=0"`
}

// Validate validates the AnalyzeRequest and both nested documents.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// CompareRequest is the request body for comparing two or more resumes.
type CompareRequest struct {
	Documents []*DocumentInput `json:"documents" validate:"required,min=2,dive,required"`
}

// Validate validates the CompareRequest and every nested document.
func (r *CompareRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
