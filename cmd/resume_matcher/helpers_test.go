package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

const testTaxonomyJSON = `{
  "skills": [
    {"name": "python"},
    {"name": "sql"},
    {"name": "project management", "category": "soft"},
    {"name": "django"},
    {"name": "leadership", "category": "soft"},
    {"name": "docker"},
    {"name": "kubernetes", "aliases": ["k8s"]}
  ]
}`

// execute runs the root command in-process with a clean environment and fresh flag values.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	// .env values loaded by TestMain must not leak into command behaviour
	for _, key := range []string{"SEMANTIC_WEIGHT", "SKILL_WEIGHT", "TAXONOMY_PATH", "DATABASE_URL", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// writeFile writes content to name inside dir and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// fixtures writes the test taxonomy, a resume and a job description.
func fixtures(t *testing.T) (dir, tax, resume, job string) {
	t.Helper()
	dir = t.TempDir()
	tax = writeFile(t, dir, "skills.json", testTaxonomyJSON)
	resume = writeFile(t, dir, "resume.txt", "Experienced in Python, SQL, and project management.")
	job = writeFile(t, dir, "job.txt", "Looking for Python, Django, and leadership skills.")
	return dir, tax, resume, job
}
