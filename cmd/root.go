package cmd

import (
	"github.com/certready/certready/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "certready",
	Short: "Adaptive certification-exam practice engine",
	Long: "CertReady — adaptive scoring and scheduling engine for certification-exam\n" +
		"practice: competency tracking, adaptive question selection, SM-2 spaced\n" +
		"repetition and weighted mock exams over a local SQLite store.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CERTREADY_DB env var)")
	rootCmd.PersistentFlags().String("course", "", "Path to the course configuration JSON")
	rootCmd.PersistentFlags().String("user", "learner", "Learner id")
	rootCmd.PersistentFlags().Int64("seed", 0, "Random seed for the simulated learner (0 = time-based)")

	rootCmd.AddCommand(diagnosticCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(mockCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then CERTREADY_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
