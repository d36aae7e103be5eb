package scoring

import "fmt"

// WeightsError reports a weighting policy that cannot be used to combine scores.
type WeightsError struct {
	Semantic   float64
	SkillMatch float64
	Message    string
}

func (e *WeightsError) Error() string {
	return fmt.Sprintf("invalid score weights (semantic=%g, skill_match=%g): %s", e.Semantic, e.SkillMatch, e.Message)
}
