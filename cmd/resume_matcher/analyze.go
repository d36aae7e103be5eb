package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against a job description",
	Long: `Extracts skills from a resume and a job description, scores text similarity and skill coverage,
and suggests the missing skills the job description mentions most.

Files ending in .html or .htm are flattened to text first. Output is JSON unless --format text is given.`,
	RunE: runAnalyze,
}

var (
	analyzeResume         string
	analyzeJob            string
	analyzeFormat         string
	analyzeOutput         string
	analyzeTaxonomy       string
	analyzeSuggestLimit   int
	analyzeWritingTips    bool
	analyzeSemanticWeight float64
	analyzeSkillWeight    float64
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job description file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", formatJSON, "Output format: json or text")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Write the report to this file instead of stdout")
	analyzeCmd.Flags().StringVarP(&analyzeTaxonomy, "taxonomy", "t", "", "Path to a JSON or YAML taxonomy file")
	analyzeCmd.Flags().IntVar(&analyzeSuggestLimit, "suggest-limit", 0, "Maximum skill suggestions (0 = all)")
	analyzeCmd.Flags().BoolVar(&analyzeWritingTips, "writing-tips", false, "Append general resume writing tips")
	analyzeCmd.Flags().Float64Var(&analyzeSemanticWeight, "semantic-weight", 0.5, "Weight of text similarity in the overall score")
	analyzeCmd.Flags().Float64Var(&analyzeSkillWeight, "skill-weight", 0.5, "Weight of skill coverage in the overall score")

	if err := analyzeCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := analyzeCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	if err := checkFormat(analyzeFormat); err != nil {
		return err
	}

	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if err := applyTaxonomyFlag(cfg, analyzeTaxonomy); err != nil {
		return err
	}
	if err := applyWeightFlags(cmd, cfg, analyzeSemanticWeight, analyzeSkillWeight); err != nil {
		return err
	}
	if cmd.Flags().Changed("suggest-limit") {
		if analyzeSuggestLimit < 0 {
			return fmt.Errorf("--suggest-limit must be non-negative")
		}
		cfg.SuggestLimit = analyzeSuggestLimit
	}
	if cmd.Flags().Changed("writing-tips") {
		cfg.WritingTips = analyzeWritingTips
	}

	logger := newLogger(cmd, cfg)

	resumeText, err := ingestFile(logger, analyzeResume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}
	jobText, err := ingestFile(logger, analyzeJob)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	engine, _, cleanup, err := buildEngine(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	report, err := engine.Analyze(cmd.Context(),
		types.NewDocument(analyzeResume, types.RoleResume, resumeText),
		types.NewDocument(analyzeJob, types.RoleJobDescription, jobText))
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	// Schema drift is reported, never fatal
	if err := schemas.ValidateValue(schemas.AnalysisReport, report); err != nil {
		logger.Warn().Err(err).Msg("analysis report does not match its schema")
	}

	out, closeOut, err := openOutput(cmd, analyzeOutput)
	if err != nil {
		return err
	}

	if analyzeFormat == formatText {
		observability.NewPrinter(out).PrintAnalysisReport(report)
	} else if err := writeJSON(out, report); err != nil {
		_ = closeOut()
		return err
	}

	if err := closeOut(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
