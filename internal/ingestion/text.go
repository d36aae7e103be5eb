// Package ingestion turns resume and job-description files into plain text ready for analysis.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	spaceRun      = regexp.MustCompile(`\s+`)
	blankLineRun  = regexp.MustCompile(`\n\n\n+`)
	controlFormat = strings.NewReplacer("\f", "\n", "\v", "\n", "\u00a0", " ")
)

// Document formats understood by the ingester.
const (
	FormatText = "text"
	FormatHTML = "html"
)

// CleanText cleans and normalizes text content while preserving structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// 1. Normalize line endings (CRLF → LF) and page breaks left over from PDF extraction
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = controlFormat.Replace(content)

	// 2. Split into lines for processing
	lines := strings.Split(content, "\n")

	// 3. Process each line
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	// 4. Join lines, then collapse runs of blank lines
	result := strings.Join(cleanedLines, "\n")
	result = blankLineRun.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}

// cleanLine cleans a single line while preserving structure
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	// Indentation carries no meaning for matching; bullets and headings keep their marker
	return spaceRun.ReplaceAllString(strings.TrimSpace(line), " ")
}

// FormatFromPath infers the document format from a file extension.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return FormatHTML
	default:
		return FormatText
	}
}

// IngestFromFile reads a text or HTML file and returns its cleaned text with metadata.
// HTML files are flattened to text first.
func IngestFromFile(path string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	format := FormatFromPath(path)
	text := string(content)
	if format == FormatHTML {
		if text, err = HTMLToText(text); err != nil {
			return "", nil, fmt.Errorf("failed to extract text from %s: %w", path, err)
		}
	}

	cleanedText := CleanText(text)
	return cleanedText, NewMetadata(cleanedText, path, format), nil
}
