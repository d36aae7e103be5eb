// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SkillProfile is the set of skills detected in one document plus per-skill occurrence counts.
type SkillProfile struct {
	Skills    []string       `json:"skills"`
	Frequency map[string]int `json:"frequency"`
	// Emphasis counts the occurrences found close to requirement markers such as "required" or "must have".
	Emphasis map[string]int `json:"emphasis,omitempty"`
}

// EmptySkillProfile returns a profile with no skills and initialized maps.
func EmptySkillProfile() SkillProfile {
	return SkillProfile{
		Skills:    []string{},
		Frequency: map[string]int{},
		Emphasis:  map[string]int{},
	}
}

// Has reports whether the profile contains skill.
func (p SkillProfile) Has(skill string) bool {
	return p.Frequency[skill] > 0
}

// Priority returns frequency plus emphasis for every skill in the profile.
// It never returns nil.
func (p SkillProfile) Priority() map[string]int {
	priority := make(map[string]int, len(p.Frequency))
	for skill, n := range p.Frequency {
		priority[skill] = n + p.Emphasis[skill]
	}
	return priority
}

// SkillSet returns the profile's skills as a lookup set.
func (p SkillProfile) SkillSet() map[string]bool {
	set := make(map[string]bool, len(p.Skills))
	for _, s := range p.Skills {
		set[s] = true
	}
	return set
}

// MatchResult is the set comparison of a resume profile against a job profile.
type MatchResult struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"` // in the job description, not in the resume
	Extra   []string `json:"extra"`   // in the resume, not in the job description
}
