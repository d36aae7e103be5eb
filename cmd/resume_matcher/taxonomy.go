package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/taxonomy"
)

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "Inspect and validate skill taxonomies",
}

var taxonomyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the skills of the configured taxonomy",
	Long: `Lists every canonical skill with its category and aliases. The taxonomy comes from --taxonomy,
then the configured taxonomy_path or database_url, then the built-in default.`,
	Args: cobra.NoArgs,
	RunE: runTaxonomyList,
}

var taxonomyValidateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Validate a JSON or YAML taxonomy file",
	Long:  "Checks a taxonomy file against the taxonomy JSON Schema, then builds it to catch duplicate or empty aliases.",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaxonomyValidate,
}

var (
	taxonomyListFormat   string
	taxonomyListCategory string
	taxonomyListFile     string
)

func init() {
	taxonomyListCmd.Flags().StringVarP(&taxonomyListFormat, "format", "f", formatText, "Output format: json or text")
	taxonomyListCmd.Flags().StringVarP(&taxonomyListCategory, "category", "c", "", "Only list skills in this category")
	taxonomyListCmd.Flags().StringVarP(&taxonomyListFile, "taxonomy", "t", "", "Path to a JSON or YAML taxonomy file")

	taxonomyCmd.AddCommand(taxonomyListCmd, taxonomyValidateCmd)
	rootCmd.AddCommand(taxonomyCmd)
}

func runTaxonomyList(cmd *cobra.Command, _ []string) error {
	if err := checkFormat(taxonomyListFormat); err != nil {
		return err
	}

	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if err := applyTaxonomyFlag(cfg, taxonomyListFile); err != nil {
		return err
	}

	loader, cleanup, err := taxonomySource(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to open taxonomy source: %w", err)
	}
	defer cleanup()

	tax, err := loader(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load taxonomy: %w", err)
	}

	entries := make([]taxonomy.Entry, 0, tax.Len())
	for _, e := range tax.Entries() {
		if taxonomyListCategory == "" || e.Category == taxonomyListCategory {
			entries = append(entries, e)
		}
	}

	if taxonomyListFormat == formatJSON {
		return writeJSON(cmd.OutOrStdout(), map[string]any{"source": tax.Source(), "skills": entries})
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SKILL\tCATEGORY\tALIASES")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, e.Category, strings.Join(e.Aliases, ", "))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d skills from %s\n", len(entries), tax.Source())
	return nil
}

func runTaxonomyValidate(cmd *cobra.Command, args []string) error {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read taxonomy file: %w", err)
	}

	tax, err := validateTaxonomy(path, data)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Validation failed: %s\n", path)
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Validation passed: %d skills in %s\n", tax.Len(), path)
	return nil
}

// validateTaxonomy checks data against the taxonomy schema and then builds it.
// YAML is decoded first so both formats share the JSON Schema.
func validateTaxonomy(path string, data []byte) (*taxonomy.Taxonomy, error) {
	format := taxonomy.FormatFromPath(path)
	if format == taxonomy.FormatYAML {
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		if err := schemas.ValidateValue(schemas.Taxonomy, doc); err != nil {
			return nil, err
		}
	} else if err := schemas.ValidateBytes(schemas.Taxonomy, data); err != nil {
		return nil, err
	}

	return taxonomy.Parse(path, data, format)
}
