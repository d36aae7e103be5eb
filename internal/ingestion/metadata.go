package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Metadata contains metadata about an ingested document
type Metadata struct {
	Source    string `json:"source,omitempty"` // File path the text came from
	Format    string `json:"format"`           // text or html
	Timestamp string `json:"timestamp"`        // RFC3339 format
	Hash      string `json:"hash"`             // SHA256 hex digest of the cleaned text
	Words     int    `json:"words"`            // Whitespace-separated word count of the cleaned text
}

// NewMetadata creates a new Metadata instance with current timestamp
func NewMetadata(content, source, format string) *Metadata {
	return &Metadata{
		Source:    source,
		Format:    format,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(content),
		Words:     len(strings.Fields(content)),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// MarshalZerologObject lets Metadata be logged with zerolog's Object.
func (m *Metadata) MarshalZerologObject(e *zerolog.Event) {
	if m.Source != "" {
		e.Str("source", m.Source)
	}
	e.Str("format", m.Format).
		Str("timestamp", m.Timestamp).
		Str("hash", m.Hash).
		Int("words", m.Words)
}
