package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var weeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Show the weekly report",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, cleanup, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		r, err := eng.Weekly(cmdContext(cmd))
		if err != nil {
			return err
		}

		fmt.Printf("Weekly report %s — %s\n", r.From, r.To)
		fmt.Printf("  Rounds: %d across %d days, streak %d\n",
			r.RoundsThisWeek, r.SessionsThisWeek, r.Streak)
		fmt.Printf("  First-try accuracy: %d%%  (with recoveries: %d%%)\n",
			r.FirstTryAccuracy, r.MasteryAccuracy)
		if r.StrategyRecoveries > 0 {
			fmt.Printf("  Retry recoveries: %d\n", r.StrategyRecoveries)
		}

		if len(r.SkillTrends) > 0 {
			fmt.Println("\n  Skill trends:")
			for _, tr := range r.SkillTrends {
				arrow := "→"
				if tr.DeltaVsLastWeek > 0 {
					arrow = "↑"
				} else if tr.DeltaVsLastWeek < 0 {
					arrow = "↓"
				}
				fmt.Printf("    %-22s %d%%  %s %+d\n", tr.Label, tr.Accuracy, arrow, tr.DeltaVsLastWeek)
			}
		}

		for _, w := range r.Wins {
			fmt.Println("  ✓", w)
		}
		for _, n := range r.CoachNotes {
			fmt.Println("  •", n)
		}
		return nil
	},
}
