package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show competency and spaced-review statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		engine, st, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		userID, _ := cmd.Flags().GetString("user")

		fmt.Printf("Learner %s — %s\n", userID, engine.Course.Name)
		fmt.Println("Competency:")
		for _, topic := range engine.Course.Topics {
			rec, err := engine.Tracker.Record(ctx, userID, topic.ID)
			if err != nil {
				return err
			}
			score := engine.Tracker.Params().InitialScore
			attempts := 0
			if rec != nil {
				score = rec.Score
				attempts = rec.Attempts
			}
			fmt.Printf("  %-6s %-28s %s  %-12s %d attempts\n",
				topic.Code, topic.Name, score, engine.Tracker.Status(score), attempts)
		}

		competency, err := engine.Tracker.WeightedCourseCompetency(ctx, userID, engine.Course)
		if err != nil {
			return err
		}
		fmt.Printf("Course competency: %s\n\n", competency)

		stats, err := engine.Scheduler.Statistics(ctx, userID, time.Now())
		if err != nil {
			return err
		}
		fmt.Println("Spaced review:")
		fmt.Printf("  cards:       %d (%d mastered)\n", stats.TotalCards, stats.Mastered)
		fmt.Printf("  due today:   %d\n", stats.DueToday)
		fmt.Printf("  due in 7d:   %d\n", stats.DueThisWeek)
		fmt.Printf("  success:     %s\n", stats.MeanSuccessRate)
		fmt.Printf("  streak:      %d days\n", stats.StreakDays)
		return nil
	},
}
