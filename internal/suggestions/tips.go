package suggestions

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jonathan/resume-matcher/internal/textnorm"
)

// briefResumeWords is the word count below which a resume is considered too brief.
const briefResumeWords = 300

var (
	achievementVerbs = []string{"increased", "reduced", "improved"}
	weakVerbs        = []string{"helped", "assisted", "worked on", "involved in"}
)

// Writing tips, in the order they are emitted.
const (
	TipBrief   = "Your resume seems quite brief. Consider adding more details about your experiences and achievements."
	TipMetrics = "Include quantifiable achievements with metrics (e.g., 'increased sales by 25%', 'reduced processing time by 40%')."
)

// WritingTips returns general writing advice for a resume: length, quantified achievements and
// weak verbs. At most one weak-verb tip is returned.
func WritingTips(resumeText string) []string {
	tokens := textnorm.Tokenize(resumeText)
	tips := []string{}

	if len(tokens) < briefResumeWords {
		tips = append(tips, TipBrief)
	}

	if !hasMetrics(resumeText, tokens) {
		tips = append(tips, TipMetrics)
	}

	joined := " " + strings.Join(tokens, " ") + " "
	for _, verb := range weakVerbs {
		if strings.Contains(joined, " "+verb+" ") {
			tips = append(tips, fmt.Sprintf(
				"Replace '%s' with stronger action verbs like 'led', 'managed', 'developed', 'implemented'.", verb))
			break
		}
	}

	return tips
}

// hasMetrics reports whether the resume quantifies anything: a digit, a percent sign or an achievement verb.
func hasMetrics(raw string, tokens []string) bool {
	if strings.ContainsFunc(raw, func(r rune) bool { return unicode.IsDigit(r) || r == '%' }) {
		return true
	}
	for _, tok := range tokens {
		for _, verb := range achievementVerbs {
			if tok == verb {
				return true
			}
		}
	}
	return false
}
