// Package observability provides human-readable summaries of analysis results for the CLI.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for text mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// writeList writes up to limit items as bullets, followed by a count of the rest.
func writeList(sb *strings.Builder, heading string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + ":\n")
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
	sb.WriteString("\n")
}

// PrintAnalysisReport outputs the scores, skill breakdown and top suggestions of an analysis.
func (p *Printer) PrintAnalysisReport(report *types.AnalysisReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:     %6.2f\n", report.OverallScore))
	sb.WriteString(fmt.Sprintf("Similarity:  %6.2f  (weight %.2f)\n", report.SemanticSimilarity, report.Weights.Semantic))
	sb.WriteString(fmt.Sprintf("Skill match: %6.2f  (weight %.2f)\n", report.SkillMatchScore, report.Weights.SkillMatch))
	sb.WriteString(fmt.Sprintf("Skills:      %d resume / %d job / %d matched\n",
		len(report.ResumeSkills), len(report.JobSkills), len(report.MatchedSkills)))
	sb.WriteString("\n")

	if len(report.MissingByCategory) > 0 {
		categories := make([]string, 0, len(report.MissingByCategory))
		for c := range report.MissingByCategory {
			categories = append(categories, c)
		}
		sort.Strings(categories)
		for _, c := range categories {
			writeList(&sb, fmt.Sprintf("Missing (%s)", c), report.MissingByCategory[c], maxItemsToShow)
		}
	} else {
		writeList(&sb, "Missing", report.MissingSkills, maxItemsToShow)
	}
	writeList(&sb, "Matched", report.MatchedSkills, maxItemsToShow)

	p.printBox("MATCH ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))

	p.PrintSuggestions(report.Suggestions)
}

// PrintSuggestions outputs the top suggestions, one per entry.
func (p *Printer) PrintSuggestions(suggestions []string) {
	if len(suggestions) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(suggestions), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, wrap(suggestions[i], boxWidth-7, "   ")))
	}
	if len(suggestions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(suggestions)-maxItemsToShow))
	}

	p.printBox("SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintComparisonReport outputs the overlap between two documents.
func (p *Printer) PrintComparisonReport(file1, file2 string, report *types.ComparisonReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Similarity: %.2f\n", report.SimilarityScore))
	sb.WriteString(fmt.Sprintf("%s: %d skills\n", file1, len(report.File1Skills)))
	sb.WriteString(fmt.Sprintf("%s: %d skills\n", file2, len(report.File2Skills)))
	sb.WriteString("\n")

	writeList(&sb, "Common", report.CommonSkills, maxItemsToShow)
	writeList(&sb, "Only in "+file1, report.UniqueToFile1, maxItemsToShow)
	writeList(&sb, "Only in "+file2, report.UniqueToFile2, maxItemsToShow)

	p.printBox("DOCUMENT COMPARISON", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintComparisonMatrix outputs the similarity of every document pair, most similar first.
func (p *Printer) PrintComparisonMatrix(matrix *types.ComparisonMatrix) {
	if matrix == nil || len(matrix.Pairs) == 0 {
		return
	}

	pairs := append([]types.PairwiseComparison(nil), matrix.Pairs...)
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Report.SimilarityScore > pairs[j].Report.SimilarityScore
	})

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Documents: %d, pairs: %d\n\n", len(matrix.DocumentIDs), len(pairs)))
	for _, pair := range pairs {
		sb.WriteString(fmt.Sprintf("%6.2f  %s <-> %s\n", pair.Report.SimilarityScore, pair.File1ID, pair.File2ID))
	}

	p.printBox("PAIRWISE COMPARISON", strings.TrimSuffix(sb.String(), "\n"))
}

// wrap breaks s into lines of at most width bytes, indenting continuation lines.
func wrap(s string, width int, indent string) string {
	words := strings.Fields(s)
	var sb strings.Builder
	line := 0
	for i, w := range words {
		if i > 0 {
			if line+1+len(w) > width {
				sb.WriteString("\n" + indent)
				line = len(indent)
			} else {
				sb.WriteString(" ")
				line++
			}
		}
		sb.WriteString(w)
		line += len(w)
	}
	return sb.String()
}
