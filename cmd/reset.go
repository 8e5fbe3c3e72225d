package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset learner progress",
	Long:  "Wipes skill levels, reviews, badges, streak, and settings for the learner. The profile itself and a snapshot of the wiped progress are kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, cleanup, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Printf("Reset all progress for %q? [y/N] ", eng.Learner().Name)
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if strings.ToLower(strings.TrimSpace(line)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := eng.Reset(cmdContext(cmd)); err != nil {
			return err
		}
		fmt.Println("Progress reset. A snapshot of the previous state was saved.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}
