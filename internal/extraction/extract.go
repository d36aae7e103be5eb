// Package extraction recognizes taxonomy skills in a token stream and counts their occurrences.
package extraction

import (
	"iter"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/textnorm"
	"github.com/jonathan/resume-matcher/internal/types"
)

// emphasisWindow is how many tokens on either side of a requirement marker count as emphasized.
const emphasisWindow = 8

// emphasisMarkers are tokens (or token pairs) that flag a hard requirement.
var emphasisMarkers = map[string]bool{
	"required":  true,
	"must have": true,
	"essential": true,
	"critical":  true,
	"key":       true,
	"necessary": true,
	"mandatory": true,
}

// Extract scans tokens with a window sized to the taxonomy's longest alias. At each position the
// longest matching alias wins; its skill is counted once and the scan resumes after the match.
// Otherwise the window advances by one token. A nil taxonomy yields taxonomy.ErrTaxonomyUnavailable.
func Extract(tokens iter.Seq[string], tax *taxonomy.Taxonomy) (types.SkillProfile, error) {
	if tax == nil {
		return types.SkillProfile{}, taxonomy.ErrTaxonomyUnavailable
	}

	profile := types.EmptySkillProfile()

	// Windows are measured in tokens; a phrase merged by the normalizer counts as one.
	var buf []string
	for tok := range tokens {
		buf = append(buf, tok)
	}

	maxWindow := tax.MaxPhraseWords()
	emphasized := markEmphasis(buf)

	for i := 0; i < len(buf); {
		size := 0
		skill := ""
		for k := min(maxWindow, len(buf)-i); k >= 1; k-- {
			if name, ok := tax.Lookup(strings.Join(buf[i:i+k], " ")); ok {
				size, skill = k, name
				break
			}
		}

		if size == 0 {
			i++
			continue
		}

		profile.Frequency[skill]++
		if emphasized[i] {
			profile.Emphasis[skill]++
		}
		i += size
	}

	for skill := range profile.Frequency {
		profile.Skills = append(profile.Skills, skill)
	}
	sort.Strings(profile.Skills)

	return profile, nil
}

// ExtractText normalizes raw text with the taxonomy's phrases and extracts its skills.
func ExtractText(raw string, tax *taxonomy.Taxonomy) (types.SkillProfile, error) {
	if tax == nil {
		return types.SkillProfile{}, taxonomy.ErrTaxonomyUnavailable
	}
	return Extract(textnorm.New(tax).Normalize(raw), tax)
}

// markEmphasis flags every position within emphasisWindow tokens of a requirement marker.
func markEmphasis(buf []string) []bool {
	near := make([]bool, len(buf))
	for i := range buf {
		if !isMarker(buf, i) {
			continue
		}
		for j := max(0, i-emphasisWindow); j <= min(len(buf)-1, i+emphasisWindow); j++ {
			near[j] = true
		}
	}
	return near
}

// isMarker reports whether a requirement marker starts at position i.
func isMarker(buf []string, i int) bool {
	if emphasisMarkers[buf[i]] {
		return true
	}
	return i+1 < len(buf) && emphasisMarkers[buf[i]+" "+buf[i+1]]
}
