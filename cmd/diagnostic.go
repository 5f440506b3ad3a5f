package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/certready/certready/internal/competency"
	"github.com/certready/certready/internal/simulation"
)

var diagnosticCmd = &cobra.Command{
	Use:   "diagnostic",
	Short: "Run a simulated diagnostic assessment to set the competency baseline",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		engine, st, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		params := runnerParams(cmd)
		runner := simulation.NewRunner(engine, params)

		err = engine.Tracker.Initialize(ctx, params.UserID, engine.Course)
		if errors.Is(err, competency.ErrAlreadyInitialized) {
			return fmt.Errorf("learner %q already has a baseline; run reset first", params.UserID)
		}
		if err != nil {
			return fmt.Errorf("initialize learner: %w", err)
		}

		reports, err := runner.Diagnostic(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Diagnostic baseline for %s (%s):\n", params.UserID, engine.Course.Name)
		printTopicReports(reports)
		return nil
	},
}

func printTopicReports(reports []simulation.TopicReport) {
	for _, tr := range reports {
		fmt.Printf("  %-6s %-28s %s  %s\n", tr.Topic.Code, tr.Topic.Name, tr.Score, tr.Status)
	}
}
