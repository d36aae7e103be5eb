// Package scoring combines similarity and skill coverage into an overall match score.
package scoring

import (
	"math"

	"github.com/jonathan/resume-matcher/internal/types"
)

// weightTolerance absorbs float error when checking that weights sum to one.
const weightTolerance = 1e-9

// Weights is the weighting policy of the overall score.
type Weights struct {
	Semantic   float64 `json:"semantic"`
	SkillMatch float64 `json:"skill_match"`
}

// DefaultWeights weighs semantic similarity and skill match equally.
func DefaultWeights() Weights {
	return Weights{Semantic: 0.5, SkillMatch: 0.5}
}

// Validate checks that both weights are non-negative and sum to one.
func (w Weights) Validate() error {
	switch {
	case math.IsNaN(w.Semantic) || math.IsNaN(w.SkillMatch):
		return &WeightsError{Semantic: w.Semantic, SkillMatch: w.SkillMatch, Message: "weights must be numbers"}
	case w.Semantic < 0 || w.SkillMatch < 0:
		return &WeightsError{Semantic: w.Semantic, SkillMatch: w.SkillMatch, Message: "weights must be non-negative"}
	case math.Abs(w.Semantic+w.SkillMatch-1) > weightTolerance:
		return &WeightsError{Semantic: w.Semantic, SkillMatch: w.SkillMatch, Message: "weights must sum to 1"}
	}
	return nil
}

// Report converts the weights to their report representation.
func (w Weights) Report() types.ScoreWeights {
	return types.ScoreWeights{Semantic: w.Semantic, SkillMatch: w.SkillMatch}
}

// Scores holds the component and overall scores, each in [0,1].
type Scores struct {
	Semantic   float64
	SkillMatch float64
	Overall    float64
}

// SkillMatch is the fraction of the job's skills the resume covers, or 0 when the job lists none.
func SkillMatch(m types.MatchResult) float64 {
	total := len(m.Matched) + len(m.Missing)
	if total == 0 {
		return 0
	}
	return float64(len(m.Matched)) / float64(total)
}

// Aggregate combines a similarity score and a match result under w.
func Aggregate(w Weights, similarity float64, m types.MatchResult) Scores {
	skill := SkillMatch(m)
	sim := clamp(similarity)
	return Scores{
		Semantic:   sim,
		SkillMatch: skill,
		Overall:    clamp(w.Semantic*sim + w.SkillMatch*skill),
	}
}

// Percent scales a [0,1] score to 0-100 and rounds it to two decimals.
func Percent(v float64) float64 {
	return Round(v*100, 2)
}

// Round rounds v to the given number of decimal places, half away from zero.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
