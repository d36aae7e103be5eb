package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// blockElements end a line of text when flattened.
const blockElements = "p, div, li, ul, ol, h1, h2, h3, h4, h5, h6, tr, td, th, section, article, dd, dt, blockquote, pre"

// noiseElements never contain document text.
const noiseElements = "nav, footer, header, script, style, noscript, template, iframe, svg, form, button"

// JobPostingSelectors returns selectors for the main content of job board pages, most specific first.
func JobPostingSelectors() []string {
	return []string{
		".job-description",
		".job-content",
		"#job-description",
		"#job-content",
		".posting-content",
		".job-details",
		"[data-testid='job-description']",
		"main",
		"article",
		".content",
		"#content",
	}
}

// HTMLToText flattens an HTML document to plain text, one block element per line.
// It prefers the job-posting content region and falls back to the body.
func HTMLToText(html string) (string, error) {
	return ExtractMainText(html, JobPostingSelectors())
}

// ExtractMainText parses HTML and returns the main body text.
// It removes noise elements using noiseSelectors, then finds content using contentSelectors.
// If no content selectors match, it falls back to the body element.
func ExtractMainText(html string, contentSelectors []string, noiseSelectors ...string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(noiseElements).Remove()
	if len(noiseSelectors) > 0 {
		doc.Find(strings.Join(noiseSelectors, ", ")).Remove()
	}

	// Keep adjacent blocks from running together ("<li>Go</li><li>SQL</li>" must not become "GoSQL")
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find(blockElements).AfterHtml("\n")

	var mainContent *goquery.Selection
	for _, selector := range contentSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			mainContent = selection.First()
			break
		}
	}

	// Fallback to body if no selector matched
	if mainContent == nil {
		mainContent = doc.Find("body")
	}

	return cleanWhitespace(mainContent.Text()), nil
}

// cleanWhitespace trims every line and drops empty ones.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
