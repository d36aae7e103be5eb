package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/analysis"
	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/logging"
	"github.com/jonathan/resume-matcher/internal/taxonomy"
)

// Output formats accepted by --format
const (
	formatJSON = "json"
	formatText = "text"
)

// loadSettings loads the config file and environment, then applies the root flags.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if cmd.Flags().Changed("pretty") {
		cfg.LogPretty = logPretty
	}
	return cfg, nil
}

// applyTaxonomyFlag points the config at a taxonomy file given on the command line.
func applyTaxonomyFlag(cfg *config.Config, path string) error {
	if path == "" {
		return nil
	}
	cfg.TaxonomyPath = path
	cfg.DatabaseURL = ""
	return cfg.Validate()
}

// applyWeightFlags overrides the configured weights. A single changed flag gets its complement.
func applyWeightFlags(cmd *cobra.Command, cfg *config.Config, semantic, skill float64) error {
	semanticSet := cmd.Flags().Changed("semantic-weight")
	skillSet := cmd.Flags().Changed("skill-weight")

	switch {
	case semanticSet && skillSet:
		cfg.SemanticWeight, cfg.SkillWeight = &semantic, &skill
	case semanticSet:
		cfg.SemanticWeight, cfg.SkillWeight = &semantic, nil
	case skillSet:
		cfg.SemanticWeight, cfg.SkillWeight = nil, &skill
	default:
		return nil
	}
	return cfg.Validate()
}

func newLogger(cmd *cobra.Command, cfg *config.Config) zerolog.Logger {
	return logging.New(cfg.LogLevel, cfg.LogPretty, cmd.ErrOrStderr())
}

// taxonomySource returns the loader for the configured taxonomy and a function releasing
// whatever the loader holds open.
func taxonomySource(ctx context.Context, cfg *config.Config) (taxonomy.Loader, func(), error) {
	switch {
	case cfg.DatabaseURL != "":
		pool, err := taxonomy.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return taxonomy.DBLoader(pool), pool.Close, nil
	case cfg.TaxonomyPath != "":
		return taxonomy.FileLoader(cfg.TaxonomyPath), func() {}, nil
	default:
		return taxonomy.DefaultLoader(), func() {}, nil
	}
}

// buildEngine loads the taxonomy and creates an engine configured from cfg.
// The returned cleanup function must be called when the engine is no longer used.
func buildEngine(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*analysis.Engine, taxonomy.Loader, func(), error) {
	loader, cleanup, err := taxonomySource(ctx, cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open taxonomy source: %w", err)
	}

	store := taxonomy.NewStore(nil)
	tax, err := store.Reload(ctx, loader)
	if err != nil {
		cleanup()
		return nil, nil, nil, fmt.Errorf("failed to load taxonomy: %w", err)
	}
	logger.Debug().Str("source", tax.Source()).Int("skills", tax.Len()).Msg("taxonomy loaded")

	opts := analysis.DefaultOptions()
	opts.Weights = cfg.Weights()
	opts.SuggestLimit = cfg.SuggestLimit
	opts.WritingTips = cfg.WritingTips
	opts.Logger = logger

	engine, err := analysis.NewEngine(store, opts)
	if err != nil {
		cleanup()
		return nil, nil, nil, err
	}
	return engine, loader, cleanup, nil
}

// openOutput returns the writer for --out, falling back to the command's stdout.
// ingestFile reads path as plain text (HTML is flattened) and logs its metadata at debug.
func ingestFile(logger zerolog.Logger, path string) (string, error) {
	text, meta, err := ingestion.IngestFromFile(path)
	if err != nil {
		return "", err
	}
	logger.Debug().Object("document", meta).Msg("document ingested")
	return text, nil
}

func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func checkFormat(format string) error {
	if format != formatJSON && format != formatText {
		return fmt.Errorf("invalid --format %q: must be %q or %q", format, formatJSON, formatText)
	}
	return nil
}
