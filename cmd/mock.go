package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/certready/certready/internal/simulation"
)

var mockCmd = &cobra.Command{
	Use:   "mock",
	Short: "Assemble, play and score a simulated mock exam",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		engine, st, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		params := runnerParams(cmd)
		params.ExamSize, _ = cmd.Flags().GetInt("size")
		runner := simulation.NewRunner(engine, params)

		result, err := runner.Exam(ctx)
		if err != nil {
			return err
		}

		verdict := "FAIL"
		if result.Passed {
			verdict = "PASS"
		}
		fmt.Printf("Mock exam: %d/%d correct — %s%% (%s, passing %s%%)\n",
			result.Correct, result.Total, result.ScorePercent, verdict, engine.Course.PassingScore)
		fmt.Printf("Average pace: %s s/question\n", result.AvgSecondsPerQuestion)

		fmt.Println("By topic (weakest first):")
		for _, tr := range result.TopicBreakdown {
			fmt.Printf("  %-6s %-28s %d/%d  %s%%\n", tr.Code, tr.Name, tr.Correct, tr.Total, tr.Accuracy)
		}
		fmt.Println(result.Recommendation)
		return nil
	},
}

func init() {
	mockCmd.Flags().Int("size", simulation.DefaultParams().ExamSize, "Number of exam questions")
}
