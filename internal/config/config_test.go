package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/scoring"
)

func float(v float64) *float64 { return &v }

func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"semantic_weight": 0.3,
		"skill_weight": 0.7,
		"suggest_limit": 5,
		"writing_tips": true,
		"log_level": "debug"
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, scoring.Weights{Semantic: 0.3, SkillMatch: 0.7}, cfg.Weights())
	assert.Equal(t, 5, cfg.SuggestLimit)
	assert.True(t, cfg.WritingTips)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"empty", Config{}, ""},
		{"defaults", Defaults(), ""},
		{"negative suggest limit", Config{SuggestLimit: -1}, "suggest_limit"},
		{"port out of range", Config{Port: 70000}, "port"},
		{"negative rps", Config{RateLimitRPS: -1}, "rate_limit_rps"},
		{"negative burst", Config{RateLimitBurst: -1}, "rate_limit_burst"},
		{"bad weights", Config{SemanticWeight: float(0.8), SkillWeight: float(0.8)}, "weights must sum to 1"},
		{"negative weight", Config{SemanticWeight: float(1.5)}, "non-negative"},
		{"two taxonomy sources", Config{TaxonomyPath: "a.json", DatabaseURL: "postgres://x"}, "mutually exclusive"},
		{"missing taxonomy file", Config{TaxonomyPath: "/nonexistent/skills.yaml"}, "taxonomy file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWeights(t *testing.T) {
	assert.Equal(t, scoring.DefaultWeights(), (&Config{}).Weights())

	w := (&Config{SemanticWeight: float(0.25)}).Weights()
	assert.Equal(t, scoring.Weights{Semantic: 0.25, SkillMatch: 0.75}, w)

	w = (&Config{SkillWeight: float(1)}).Weights()
	assert.Equal(t, scoring.Weights{Semantic: 0, SkillMatch: 1}, w)
}

func TestMergeWithDefaults(t *testing.T) {
	partial := Config{
		SkillWeight: float(0.6),
		LogLevel:    "warn",
		Port:        9090,
	}

	merged := partial.MergeWithDefaults(Defaults())

	// Custom values should be preserved
	assert.Equal(t, "warn", merged.LogLevel)
	assert.Equal(t, 9090, merged.Port)
	assert.Nil(t, merged.SemanticWeight, "a single weight is not merged with the default pair")
	assert.InDelta(t, 0.4, merged.Weights().Semantic, 1e-12)

	// Default values should fill in empty fields
	assert.Equal(t, float64(DefaultRateLimitRPS), merged.RateLimitRPS)
	assert.Equal(t, DefaultRateLimitBurst, merged.RateLimitBurst)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{LogLevel: "debug", TaxonomyPath: "skills.yaml"}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "debug", merged.LogLevel)
	assert.Equal(t, "skills.yaml", merged.TaxonomyPath)
	assert.Equal(t, scoring.DefaultWeights(), merged.Weights())
}

func TestApplyEnv(t *testing.T) {
	cfg := &Config{LogLevel: "info", Port: 8000}

	err := cfg.ApplyEnv(env(map[string]string{
		"SEMANTIC_WEIGHT":  "0.2",
		"SKILL_WEIGHT":     "0.8",
		"DATABASE_URL":     "postgres://localhost/skills",
		"LOG_LEVEL":        "debug",
		"PORT":             "9000",
		"RATE_LIMIT_RPS":   "2.5",
		"RATE_LIMIT_BURST": "4",
	}))
	require.NoError(t, err)

	assert.Equal(t, scoring.Weights{Semantic: 0.2, SkillMatch: 0.8}, cfg.Weights())
	assert.Equal(t, "postgres://localhost/skills", cfg.DatabaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, 4, cfg.RateLimitBurst)
}

func TestApplyEnv_ReplacesPairs(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		env      map[string]string
		wantPath string
		wantURL  string
		want     scoring.Weights
	}{
		{
			name:    "database url replaces file taxonomy path",
			cfg:     Config{TaxonomyPath: "skills.yaml"},
			env:     map[string]string{"DATABASE_URL": "postgres://localhost/skills"},
			wantURL: "postgres://localhost/skills",
			want:    scoring.DefaultWeights(),
		},
		{
			name:     "taxonomy path replaces file database url",
			cfg:      Config{DatabaseURL: "postgres://localhost/skills"},
			env:      map[string]string{"TAXONOMY_PATH": "skills.json"},
			wantPath: "skills.json",
			want:     scoring.DefaultWeights(),
		},
		{
			name:     "single weight takes the complement",
			cfg:      Config{SemanticWeight: float(0.3), SkillWeight: float(0.7), TaxonomyPath: "skills.yaml"},
			env:      map[string]string{"SKILL_WEIGHT": "0.6"},
			wantPath: "skills.yaml",
			want:     scoring.Weights{Semantic: 0.4, SkillMatch: 0.6},
		},
		{
			name:    "empty values leave the file alone",
			cfg:     Config{SemanticWeight: float(0.3), SkillWeight: float(0.7), DatabaseURL: "postgres://db"},
			env:     map[string]string{"SKILL_WEIGHT": "", "TAXONOMY_PATH": ""},
			wantURL: "postgres://db",
			want:    scoring.Weights{Semantic: 0.3, SkillMatch: 0.7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			require.NoError(t, cfg.ApplyEnv(env(tt.env)))
			assert.Equal(t, tt.wantPath, cfg.TaxonomyPath)
			assert.Equal(t, tt.wantURL, cfg.DatabaseURL)
			assert.InDelta(t, tt.want.Semantic, cfg.Weights().Semantic, 1e-12)
			assert.InDelta(t, tt.want.SkillMatch, cfg.Weights().SkillMatch, 1e-12)
		})
	}
}

func TestApplyEnv_BothTaxonomySources(t *testing.T) {
	cfg := Config{}
	require.NoError(t, cfg.ApplyEnv(env(map[string]string{
		"TAXONOMY_PATH": "skills.json",
		"DATABASE_URL":  "postgres://localhost/skills",
	})))

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestApplyEnv_Invalid(t *testing.T) {
	for _, key := range []string{"SEMANTIC_WEIGHT", "SKILL_WEIGHT", "PORT", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST"} {
		t.Run(key, func(t *testing.T) {
			err := (&Config{}).ApplyEnv(env(map[string]string{key: "abc"}))
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestLoad(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{"suggest_limit": 3, "port": 7000}`), 0644))

	t.Setenv("PORT", "7100")
	t.Setenv("SEMANTIC_WEIGHT", "0.4")

	cfg, err := Load(tmpFile)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.SuggestLimit)
	assert.Equal(t, 7100, cfg.Port)
	assert.InDelta(t, 0.6, cfg.Weights().SkillMatch, 1e-12)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestLoad_EnvDatabaseURLOverridesFileTaxonomy(t *testing.T) {
	dir := t.TempDir()
	taxonomyFile := filepath.Join(dir, "skills.json")
	require.NoError(t, os.WriteFile(taxonomyFile, []byte(`{"skills": [{"name": "go"}]}`), 0644))
	cfgFile := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(cfgFile, []byte(`{"taxonomy_path": "`+taxonomyFile+`"}`), 0644))

	t.Setenv("TAXONOMY_PATH", "")
	t.Setenv("DATABASE_URL", "postgres://localhost/skills")

	cfg, err := Load(cfgFile)
	require.NoError(t, err)
	assert.Empty(t, cfg.TaxonomyPath)
	assert.Equal(t, "postgres://localhost/skills", cfg.DatabaseURL)
}

func TestLoad_NoFile(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Port)
}
