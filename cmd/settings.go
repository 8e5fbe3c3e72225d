package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/cogniz/internal/session"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change session settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, cleanup, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		s, err := eng.Settings(cmdContext(cmd))
		if err != nil {
			return err
		}

		fmt.Printf("  rounds     %d       main rounds per session (1-4)\n", s.MainRounds)
		fmt.Printf("  boss       %-7s boss challenge round\n", onOff(s.BossEnabled))
		fmt.Printf("  intensity  %d       boss difficulty (1-5)\n", s.BossIntensity)
		fmt.Printf("  hints      %-7s guided, minimal, or off\n", s.HintMode)
		fmt.Printf("  goal       %d       daily quest rounds (1-10)\n", s.DailyGoal)
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, cleanup, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		ctx := cmdContext(cmd)
		s, err := eng.Settings(ctx)
		if err != nil {
			return err
		}

		key, value := args[0], args[1]
		switch key {
		case "rounds":
			s.MainRounds, err = strconv.Atoi(value)
		case "boss":
			s.BossEnabled, err = strconv.ParseBool(value)
		case "intensity":
			s.BossIntensity, err = strconv.Atoi(value)
		case "hints":
			s.HintMode = session.HintMode(value)
		case "goal":
			s.DailyGoal, err = strconv.Atoi(value)
		default:
			return fmt.Errorf("unknown setting %q (rounds, boss, intensity, hints, goal)", key)
		}
		if err != nil {
			return fmt.Errorf("invalid value %q for %s: %w", value, key, err)
		}

		saved, err := eng.SaveSettings(ctx, s)
		if err != nil {
			return err
		}
		fmt.Printf("%s set; session is now %d main round(s), boss %s (intensity %d), hints %s, goal %d\n",
			key, saved.MainRounds, onOff(saved.BossEnabled), saved.BossIntensity, saved.HintMode, saved.DailyGoal)
		return nil
	},
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func init() {
	settingsCmd.AddCommand(settingsSetCmd)
}
