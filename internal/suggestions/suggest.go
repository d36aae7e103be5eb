// Package suggestions turns missing skills into ranked, human-readable improvement suggestions.
package suggestions

import (
	"fmt"
	"sort"
)

// Rank orders missing skills by job-description frequency, highest first, breaking ties by name.
func Rank(missing []string, jobFreq map[string]int) []string {
	ranked := append([]string(nil), missing...)
	sort.SliceStable(ranked, func(i, j int) bool {
		fi, fj := jobFreq[ranked[i]], jobFreq[ranked[j]]
		if fi != fj {
			return fi > fj
		}
		return ranked[i] < ranked[j]
	})
	return ranked
}

// Suggest renders one suggestion per missing skill in rank order, keeping at most limit of them.
// A limit of zero or less keeps them all. The result is never nil.
func Suggest(missing []string, jobFreq map[string]int, limit int) []string {
	ranked := Rank(missing, jobFreq)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]string, 0, len(ranked))
	for _, skill := range ranked {
		out = append(out, Render(skill, jobFreq[skill]))
	}
	return out
}

// Render formats the suggestion for a single skill mentioned n times in the job description.
func Render(skill string, n int) string {
	unit := "times"
	if n == 1 {
		unit = "time"
	}
	return fmt.Sprintf("Consider developing expertise in %s, which appears %d %s in the job description.", skill, n, unit)
}
