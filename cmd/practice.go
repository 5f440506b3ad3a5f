package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/certready/certready/internal/simulation"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Run one simulated adaptive practice session plus due reviews",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		engine, st, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		params := runnerParams(cmd)
		params.QuestionsPerDay, _ = cmd.Flags().GetInt("questions")
		runner := simulation.NewRunner(engine, params)

		answered, err := runner.PracticeDay(ctx)
		if err != nil {
			return err
		}
		reviewed, err := runner.Reviews(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Answered %d practice questions, reviewed %d due cards.\n", answered, reviewed)

		reports, err := runner.Snapshot(ctx)
		if err != nil {
			return err
		}
		fmt.Println("Competency:")
		printTopicReports(reports)

		competency, err := engine.Tracker.WeightedCourseCompetency(ctx, params.UserID, engine.Course)
		if err != nil {
			return err
		}
		fmt.Printf("Course competency: %s\n", competency)
		return nil
	},
}

func init() {
	practiceCmd.Flags().Int("questions", simulation.DefaultParams().QuestionsPerDay, "Questions per practice session")
}
