package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptySkillProfile(t *testing.T) {
	p := EmptySkillProfile()

	assert.NotNil(t, p.Skills)
	assert.Empty(t, p.Skills)
	assert.NotNil(t, p.Frequency)
	assert.NotNil(t, p.Emphasis)
	assert.False(t, p.Has("go"))
	assert.Empty(t, p.SkillSet())

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"skills": [], "frequency": {}}`, string(data))
}

func TestSkillProfile_HasAndSkillSet(t *testing.T) {
	p := SkillProfile{
		Skills:    []string{"go", "sql"},
		Frequency: map[string]int{"go": 3, "sql": 1},
	}

	assert.True(t, p.Has("go"))
	assert.True(t, p.Has("sql"))
	assert.False(t, p.Has("rust"))
	assert.Equal(t, map[string]bool{"go": true, "sql": true}, p.SkillSet())
}

func TestSkillProfile_Priority(t *testing.T) {
	p := SkillProfile{
		Skills:    []string{"docker", "kubernetes"},
		Frequency: map[string]int{"docker": 3, "kubernetes": 2},
		Emphasis:  map[string]int{"kubernetes": 2},
	}
	assert.Equal(t, map[string]int{"docker": 3, "kubernetes": 4}, p.Priority())

	assert.NotNil(t, SkillProfile{}.Priority())
	assert.Empty(t, EmptySkillProfile().Priority())
}
