package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/cogniz/internal/content"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect activity packs",
}

var contentValidateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Validate activity packs against the schema",
	Long:  "Validates the built-in packs, or every *.json pack under the given directory.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			issues []content.Issue
			err    error
		)
		if len(args) == 1 {
			issues, err = content.CheckDir(args[0])
		} else {
			issues, err = content.CheckBuiltin()
		}
		if err != nil {
			return err
		}

		if len(issues) == 0 {
			fmt.Println("All packs valid.")
			return nil
		}
		for _, issue := range issues {
			fmt.Println(issue)
		}
		return fmt.Errorf("%d issue(s) found", len(issues))
	},
}

func init() {
	contentCmd.AddCommand(contentValidateCmd)
}
