// Package comparison compares two documents by the overlap of their skill sets.
package comparison

import (
	"context"

	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/types"
	"golang.org/x/sync/errgroup"
)

// Compare matches p1 against p2 with p1 in the resume role. The similarity score is the Jaccard
// index of the two skill sets scaled to 0-100, or 0 when neither document has skills.
func Compare(p1, p2 types.SkillProfile) types.ComparisonReport {
	m := matching.Match(p1, p2)

	union := len(m.Matched) + len(m.Missing) + len(m.Extra)
	score := 0.0
	if union > 0 {
		score = scoring.Percent(float64(len(m.Matched)) / float64(union))
	}

	return types.ComparisonReport{
		SimilarityScore: score,
		File1Skills:     nonNil(p1.Skills),
		File2Skills:     nonNil(p2.Skills),
		CommonSkills:    m.Matched,
		UniqueToFile1:   m.Extra,
		UniqueToFile2:   m.Missing,
	}
}

// Pairwise compares every unordered pair of profiles, i < j, in row-major order.
// Pairs are computed concurrently; ids label the profiles at the same index.
func Pairwise(ctx context.Context, ids []string, profiles []types.SkillProfile) (types.ComparisonMatrix, error) {
	n := len(profiles)
	pairs := make([]types.PairwiseComparison, n*(n-1)/2)

	g, gCtx := errgroup.WithContext(ctx)
	k := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			idx, a, b := k, i, j
			k++
			g.Go(func() error {
				if err := gCtx.Err(); err != nil {
					return err
				}
				pairs[idx] = types.PairwiseComparison{
					File1ID: ids[a],
					File2ID: ids[b],
					Report:  Compare(profiles[a], profiles[b]),
				}
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return types.ComparisonMatrix{}, err
	}

	return types.ComparisonMatrix{DocumentIDs: append([]string(nil), ids...), Pairs: pairs}, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
