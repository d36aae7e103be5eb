package ingestion

import (
	"fmt"

	"github.com/jonathan/resume-matcher/internal/types"
)

// FlattenInput returns in with its text reduced to plain text according to its format.
// Inputs without text are returned unchanged so that the caller's validation can reject them.
func FlattenInput(in *types.DocumentInput) (*types.DocumentInput, error) {
	if in == nil || in.RawText == nil || in.Format != FormatHTML {
		return in, nil
	}

	text, err := HTMLToText(*in.RawText)
	if err != nil {
		return nil, fmt.Errorf("failed to flatten HTML document %q: %w", in.ID, err)
	}

	out := *in
	out.RawText = &text
	out.Format = FormatText
	return &out, nil
}
