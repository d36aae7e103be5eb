package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
)

var compareCmd = &cobra.Command{
	Use:   "compare FILE1 FILE2 [FILE...]",
	Short: "Compare the skills of two or more resumes",
	Long: `Extracts skills from each file and reports the overlap. Two files produce a single comparison;
more than two produce the comparison of every pair.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runCompare,
}

var (
	compareFormat   string
	compareOutput   string
	compareTaxonomy string
)

func init() {
	compareCmd.Flags().StringVarP(&compareFormat, "format", "f", formatJSON, "Output format: json or text")
	compareCmd.Flags().StringVarP(&compareOutput, "out", "o", "", "Write the report to this file instead of stdout")
	compareCmd.Flags().StringVarP(&compareTaxonomy, "taxonomy", "t", "", "Path to a JSON or YAML taxonomy file")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	if err := checkFormat(compareFormat); err != nil {
		return err
	}

	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if err := applyTaxonomyFlag(cfg, compareTaxonomy); err != nil {
		return err
	}
	logger := newLogger(cmd, cfg)

	docs := make([]types.Document, len(args))
	for i, path := range args {
		text, err := ingestFile(logger, path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		docs[i] = types.NewDocument(path, types.RoleResume, text)
	}

	engine, _, cleanup, err := buildEngine(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	var (
		result     any
		schemaName string
		printText  func(p *observability.Printer)
	)
	if len(docs) == 2 {
		report, err := engine.Compare(cmd.Context(), docs[0], docs[1])
		if err != nil {
			return fmt.Errorf("comparison failed: %w", err)
		}
		result, schemaName = report, schemas.ComparisonReport
		printText = func(p *observability.Printer) { p.PrintComparisonReport(args[0], args[1], report) }
	} else {
		matrix, err := engine.CompareMany(cmd.Context(), docs)
		if err != nil {
			return fmt.Errorf("comparison failed: %w", err)
		}
		result, schemaName = matrix, schemas.ComparisonMatrix
		printText = func(p *observability.Printer) { p.PrintComparisonMatrix(matrix) }
	}

	if err := schemas.ValidateValue(schemaName, result); err != nil {
		logger.Warn().Err(err).Str("schema", schemaName).Msg("comparison output does not match its schema")
	}

	out, closeOut, err := openOutput(cmd, compareOutput)
	if err != nil {
		return err
	}

	if compareFormat == formatText {
		printText(observability.NewPrinter(out))
	} else if err := writeJSON(out, result); err != nil {
		_ = closeOut()
		return err
	}

	if err := closeOut(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
