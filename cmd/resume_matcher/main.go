// Package main provides the resume_matcher CLI: document analysis, comparison, taxonomy tools
// and the HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_matcher",
	Short: "Resume and job description matching engine",
	Long: `resume_matcher scores how well a resume matches a job description, lists the missing skills
with suggestions, and compares resumes with each other.

Configuration can be loaded from a JSON file using --config. Environment variables override the file
and command-line flags override both.`,
	SilenceUsage: true,
}

var (
	configPath string
	logLevel   string
	logPretty  bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.json file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logPretty, "pretty", false, "Human-readable log output")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
