package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/cogniz/internal/mastery"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Show skill levels and due reviews",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, cleanup, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		ov, err := eng.Overview(cmdContext(cmd))
		if err != nil {
			return err
		}

		fmt.Printf("Skills for %s (streak: %d days, %d reviews due)\n\n",
			eng.Learner().Name, ov.Streak.CurrentStreak, ov.Due.Total)
		for _, st := range ov.States {
			next := "MAX"
			if st.Level < mastery.MaxLevel {
				next = fmt.Sprintf("%d XP to next", st.XPToNextLevel())
			}
			fmt.Printf("  %-22s Lv %d  %4d XP  (%s)", st.Skill.Label(), st.Level, st.XP, next)
			if due := ov.Due.BySkill[st.Skill]; due > 0 {
				fmt.Printf("  %d due", due)
			}
			fmt.Println()
		}
		return nil
	},
}
