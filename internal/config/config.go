// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jonathan/resume-matcher/internal/scoring"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults, and environment variables and CLI flags
// override what the file sets.
type Config struct {
	// Scoring
	SemanticWeight *float64 `json:"semantic_weight,omitempty"` // Weight of text similarity in the overall score
	SkillWeight    *float64 `json:"skill_weight,omitempty"`    // Weight of skill coverage in the overall score
	SuggestLimit   int      `json:"suggest_limit,omitempty"`   // Maximum skill suggestions (0 = all)
	WritingTips    bool     `json:"writing_tips,omitempty"`    // Append resume writing tips to suggestions

	// Taxonomy sources
	TaxonomyPath string `json:"taxonomy_path,omitempty"` // JSON or YAML taxonomy file
	DatabaseURL  string `json:"database_url,omitempty"`  // PostgreSQL connection URL for the skill_aliases table

	// Logging
	LogLevel  string `json:"log_level,omitempty"`  // zerolog level name
	LogPretty bool   `json:"log_pretty,omitempty"` // Human-readable console output

	// Server
	Port           int     `json:"port,omitempty"`
	RateLimitRPS   float64 `json:"rate_limit_rps,omitempty"`   // Requests per second per client
	RateLimitBurst int     `json:"rate_limit_burst,omitempty"` // Burst size per client
}

// Default values applied by MergeWithDefaults(Defaults()).
const (
	DefaultLogLevel       = "info"
	DefaultPort           = 8080
	DefaultRateLimitRPS   = 10
	DefaultRateLimitBurst = 20
)

// Defaults returns the built-in configuration.
func Defaults() Config {
	w := scoring.DefaultWeights()
	return Config{
		SemanticWeight: &w.Semantic,
		SkillWeight:    &w.SkillMatch,
		LogLevel:       DefaultLogLevel,
		Port:           DefaultPort,
		RateLimitRPS:   DefaultRateLimitRPS,
		RateLimitBurst: DefaultRateLimitBurst,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Load reads the config file at path, if any, fills defaults and applies environment overrides.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	merged := cfg.MergeWithDefaults(Defaults())
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.SuggestLimit < 0 {
		return fmt.Errorf("config error: 'suggest_limit' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.RateLimitRPS < 0 {
		return fmt.Errorf("config error: 'rate_limit_rps' must be non-negative")
	}
	if c.RateLimitBurst < 0 {
		return fmt.Errorf("config error: 'rate_limit_burst' must be non-negative")
	}
	if c.TaxonomyPath != "" && c.DatabaseURL != "" {
		return fmt.Errorf("config error: 'taxonomy_path' and 'database_url' are mutually exclusive")
	}

	if c.TaxonomyPath != "" {
		if _, err := os.Stat(c.TaxonomyPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: taxonomy file not found: %s", c.TaxonomyPath)
		}
	}

	if c.SemanticWeight != nil || c.SkillWeight != nil {
		if err := c.Weights().Validate(); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}

	return nil
}

// Weights returns the scoring weights. When only one weight is set the other is its complement;
// when neither is set the defaults apply.
func (c *Config) Weights() scoring.Weights {
	switch {
	case c.SemanticWeight != nil && c.SkillWeight != nil:
		return scoring.Weights{Semantic: *c.SemanticWeight, SkillMatch: *c.SkillWeight}
	case c.SemanticWeight != nil:
		return scoring.Weights{Semantic: *c.SemanticWeight, SkillMatch: 1 - *c.SemanticWeight}
	case c.SkillWeight != nil:
		return scoring.Weights{Semantic: 1 - *c.SkillWeight, SkillMatch: *c.SkillWeight}
	default:
		return scoring.DefaultWeights()
	}
}

// MergeWithDefaults returns a new Config with unset fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// Weights are merged as a pair so that a single configured weight keeps its complement
	if result.SemanticWeight == nil && result.SkillWeight == nil {
		result.SemanticWeight = defaults.SemanticWeight
		result.SkillWeight = defaults.SkillWeight
	}

	// String fields: use default if empty
	if result.TaxonomyPath == "" && result.DatabaseURL == "" {
		result.TaxonomyPath = defaults.TaxonomyPath
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}

	// Numeric fields: use default if zero
	if result.SuggestLimit == 0 {
		result.SuggestLimit = defaults.SuggestLimit
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.RateLimitRPS == 0 {
		result.RateLimitRPS = defaults.RateLimitRPS
	}
	if result.RateLimitBurst == 0 {
		result.RateLimitBurst = defaults.RateLimitBurst
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ApplyEnv overrides fields from environment variables looked up with lookup
// (os.LookupEnv in production). Unset or empty variables leave the field alone.
// A weight or taxonomy source set alone in the environment replaces the pair from the file:
// the other weight becomes its complement and the other taxonomy source is cleared.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	semantic, err := envFloat(lookup, "SEMANTIC_WEIGHT")
	if err != nil {
		return err
	}
	skill, err := envFloat(lookup, "SKILL_WEIGHT")
	if err != nil {
		return err
	}
	if semantic != nil || skill != nil {
		c.SemanticWeight, c.SkillWeight = semantic, skill
	}

	path, _ := lookup("TAXONOMY_PATH")
	url, _ := lookup("DATABASE_URL")
	if path != "" || url != "" {
		c.TaxonomyPath, c.DatabaseURL = path, url
	}

	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup("PORT"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Port = n
	}
	if v, ok := lookup("RATE_LIMIT_RPS"); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_RPS %q: %w", v, err)
		}
		c.RateLimitRPS = f
	}
	if v, ok := lookup("RATE_LIMIT_BURST"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_BURST %q: %w", v, err)
		}
		c.RateLimitBurst = n
	}
	return nil
}

func envFloat(lookup func(string) (string, bool), key string) (*float64, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return &f, nil
}
