package comparison

import (
	"context"
	"sort"
	"testing"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profile(skills ...string) types.SkillProfile {
	p := types.EmptySkillProfile()
	for _, s := range skills {
		p.Frequency[s]++
		p.Skills = append(p.Skills, s)
	}
	sort.Strings(p.Skills)
	return p
}

func TestCompare_Scenario(t *testing.T) {
	r := Compare(profile("a", "b", "c"), profile("b", "c", "d"))

	assert.Equal(t, 50.0, r.SimilarityScore)
	assert.Equal(t, []string{"b", "c"}, r.CommonSkills)
	assert.Equal(t, []string{"a"}, r.UniqueToFile1)
	assert.Equal(t, []string{"d"}, r.UniqueToFile2)
	assert.Equal(t, []string{"a", "b", "c"}, r.File1Skills)
	assert.Equal(t, []string{"b", "c", "d"}, r.File2Skills)
}

func TestCompare_Edges(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 types.SkillProfile
		want   float64
	}{
		{"both empty", profile(), profile(), 0},
		{"one empty", profile("go"), profile(), 0},
		{"identical", profile("go", "sql"), profile("go", "sql"), 100},
		{"disjoint", profile("go"), profile("rust"), 0},
		{"thirds", profile("go"), profile("go", "rust", "zig"), 33.33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Compare(tt.p1, tt.p2)
			assert.Equal(t, tt.want, r.SimilarityScore)
			assert.NotNil(t, r.CommonSkills)
			assert.NotNil(t, r.File1Skills)
		})
	}
}

func TestCompare_Symmetric(t *testing.T) {
	a, b := profile("go", "sql", "docker"), profile("go", "kafka")

	ab, ba := Compare(a, b), Compare(b, a)
	assert.Equal(t, ab.SimilarityScore, ba.SimilarityScore)
	assert.Equal(t, ab.CommonSkills, ba.CommonSkills)
	assert.Equal(t, ab.UniqueToFile1, ba.UniqueToFile2)
}

func TestPairwise(t *testing.T) {
	ids := []string{"x", "y", "z"}
	profiles := []types.SkillProfile{profile("a", "b"), profile("b", "c"), profile("a", "b")}

	m, err := Pairwise(context.Background(), ids, profiles)
	require.NoError(t, err)

	assert.Equal(t, ids, m.DocumentIDs)
	require.Len(t, m.Pairs, 3)
	assert.Equal(t, "x", m.Pairs[0].File1ID)
	assert.Equal(t, "y", m.Pairs[0].File2ID)
	assert.Equal(t, "x", m.Pairs[1].File1ID)
	assert.Equal(t, "z", m.Pairs[1].File2ID)
	assert.Equal(t, 100.0, m.Pairs[1].Report.SimilarityScore)
	assert.Equal(t, "y", m.Pairs[2].File1ID)
	assert.Equal(t, "z", m.Pairs[2].File2ID)
}

func TestPairwise_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Pairwise(ctx, []string{"a", "b"}, []types.SkillProfile{profile("go"), profile("go")})
	assert.ErrorIs(t, err, context.Canceled)
}
