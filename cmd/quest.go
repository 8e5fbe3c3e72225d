package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var questCmd = &cobra.Command{
	Use:   "quest",
	Short: "Show today's quest progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, cleanup, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		q, err := eng.Quest(cmdContext(cmd))
		if err != nil {
			return err
		}

		fmt.Printf("Daily quest — %s\n", q.Date)
		fmt.Printf("  Rounds: %d of %d (%d%%)\n", q.RoundsToday, q.DailyGoal, q.ProgressPercent)
		if q.IsComplete {
			fmt.Println("  Quest complete ✓")
		} else {
			fmt.Print("  Remaining: ")
			for i, step := range q.RemainingSteps {
				if i > 0 {
					fmt.Print(", ")
				}
				fmt.Print(string(step))
			}
			fmt.Println()
		}
		if q.DueReviews > 0 {
			fmt.Printf("  Reviews due: %d\n", q.DueReviews)
		}
		if len(q.WeakestSkills) > 0 {
			fmt.Print("  Focus: ")
			for i, s := range q.WeakestSkills {
				if i > 0 {
					fmt.Print(", ")
				}
				fmt.Print(s.Label())
			}
			fmt.Println()
		}
		return nil
	},
}
