package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewDocument_GeneratesID(t *testing.T) {
	doc := NewDocument("", RoleResume, "Go developer")
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, RoleResume, doc.Role)
	assert.Equal(t, "Go developer", doc.RawText)

	other := NewDocument("", RoleResume, "Go developer")
	assert.NotEqual(t, doc.ID, other.ID)
}

func TestNewDocument_KeepsID(t *testing.T) {
	doc := NewDocument("resume-1", RoleJobDescription, "")
	assert.Equal(t, "resume-1", doc.ID)
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleResume.Valid())
	assert.True(t, RoleJobDescription.Valid())
	assert.False(t, Role("cover_letter").Valid())
	assert.False(t, Role("").Valid())
}

func TestDocumentInput_Validate(t *testing.T) {
	t.Run("nil text rejected", func(t *testing.T) {
		in := &DocumentInput{}
		assert.Error(t, in.Validate())
	})

	t.Run("empty text accepted", func(t *testing.T) {
		in := &DocumentInput{RawText: strPtr("")}
		assert.NoError(t, in.Validate())
	})

	t.Run("html format accepted", func(t *testing.T) {
		in := &DocumentInput{RawText: strPtr("<p>Go</p>"), Format: "html"}
		assert.NoError(t, in.Validate())
	})

	t.Run("unknown format rejected", func(t *testing.T) {
		in := &DocumentInput{RawText: strPtr("x"), Format: "pdf"}
		assert.Error(t, in.Validate())
	})
}

func TestAnalyzeRequest_Validate(t *testing.T) {
	valid := &AnalyzeRequest{
		Resume:         &DocumentInput{RawText: strPtr("Python")},
		JobDescription: &DocumentInput{RawText: strPtr("Django")},
	}
	require.NoError(t, valid.Validate())

	missingJob := &AnalyzeRequest{Resume: &DocumentInput{RawText: strPtr("Python")}}
	assert.Error(t, missingJob.Validate())

	nullResumeText := &AnalyzeRequest{
		Resume:         &DocumentInput{},
		JobDescription: &DocumentInput{RawText: strPtr("Django")},
	}
	assert.Error(t, nullResumeText.Validate())

	negativeLimit := &AnalyzeRequest{
		Resume:         &DocumentInput{RawText: strPtr("Python")},
		JobDescription: &DocumentInput{RawText: strPtr("Django")},
		SuggestLimit:   -1,
	}
	assert.Error(t, negativeLimit.Validate())
}

func TestCompareRequest_Validate(t *testing.T) {
	one := &CompareRequest{Documents: []*DocumentInput{{RawText: strPtr("a")}}}
	assert.Error(t, one.Validate(), "at least two documents are required")

	two := &CompareRequest{Documents: []*DocumentInput{{RawText: strPtr("a")}, {RawText: strPtr("b")}}}
	assert.NoError(t, two.Validate())

	withNull := &CompareRequest{Documents: []*DocumentInput{{RawText: strPtr("a")}, {}}}
	assert.Error(t, withNull.Validate())
}
