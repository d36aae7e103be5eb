package analysis

import (
	"fmt"
	"unicode/utf8"

	"github.com/jonathan/resume-matcher/internal/types"
)

// DocumentFromInput converts a caller-supplied document into a Document with the given role.
// A nil input or nil text is rejected rather than treated as empty.
func DocumentFromInput(field string, in *types.DocumentInput, role types.Role) (types.Document, error) {
	if in == nil {
		return types.Document{}, &InvalidInputError{Field: field, Message: "document is required"}
	}
	if in.RawText == nil {
		return types.Document{}, &InvalidInputError{Field: field + ".raw_text", Message: "text is required"}
	}
	doc := types.NewDocument(in.ID, role, *in.RawText)
	if err := validateDocument(field, doc, role); err != nil {
		return types.Document{}, err
	}
	return doc, nil
}

// validateDocument checks a document's text and, when want is set, its role.
func validateDocument(field string, doc types.Document, want types.Role) error {
	if !doc.Role.Valid() {
		return &InvalidInputError{Field: field + ".role", Message: fmt.Sprintf("unknown role %q", doc.Role)}
	}
	if want != "" && doc.Role != want {
		return &InvalidInputError{
			Field:   field + ".role",
			Message: fmt.Sprintf("expected role %q, got %q", want, doc.Role),
		}
	}
	if !utf8.ValidString(doc.RawText) {
		return &InvalidInputError{Field: field + ".raw_text", Message: "text is not valid UTF-8"}
	}
	return nil
}
