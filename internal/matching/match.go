// Package matching compares the skill sets of a resume and a job description.
package matching

import (
	"sort"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Match splits the skills of both profiles into matched, missing and extra sets.
// Matched ∪ Missing is the job's skill set and Matched ∪ Extra is the resume's; the three are disjoint.
// All slices are sorted and never nil.
func Match(resume, job types.SkillProfile) types.MatchResult {
	resumeSet := resume.SkillSet()
	jobSet := job.SkillSet()

	result := types.MatchResult{
		Matched: []string{},
		Missing: []string{},
		Extra:   []string{},
	}

	for skill := range jobSet {
		if resumeSet[skill] {
			result.Matched = append(result.Matched, skill)
		} else {
			result.Missing = append(result.Missing, skill)
		}
	}
	for skill := range resumeSet {
		if !jobSet[skill] {
			result.Extra = append(result.Extra, skill)
		}
	}

	sort.Strings(result.Matched)
	sort.Strings(result.Missing)
	sort.Strings(result.Extra)

	return result
}
