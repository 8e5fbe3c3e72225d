package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/cogniz/internal/content"
	"github.com/abhisek/cogniz/internal/store"
)

var validBands = []content.AgeBand{
	content.Band4to6, content.Band7to9, content.Band10to13,
	content.Band14to18, content.BandAdult,
}

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage learner profiles",
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List learner profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, cleanup, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		list, err := st.Learners().List(cmdContext(cmd))
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Println("No profiles yet. Create one with: cogniz profiles create <name>")
			return nil
		}
		for _, l := range list {
			fmt.Printf("  %-16s band %-6s since %s\n", l.Name, l.AgeBand, l.CreatedAt.Format("2006-01-02"))
		}
		return nil
	},
}

var profilesCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a learner profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		band, _ := cmd.Flags().GetString("band")
		if !bandValid(band) {
			return fmt.Errorf("invalid band %q (valid: %v)", band, validBands)
		}

		st, cleanup, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		ctx := cmdContext(cmd)
		name := args[0]
		if existing, err := st.Learners().GetByName(ctx, name); err != nil {
			return err
		} else if existing != nil {
			return fmt.Errorf("learner %q already exists", name)
		}

		l, err := st.Learners().Create(ctx, name, band)
		if err != nil {
			return err
		}
		fmt.Printf("Created %s (band %s)\n", l.Name, l.AgeBand)
		return nil
	},
}

var profilesRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Delete a learner profile and all its data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, cleanup, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		ctx := cmdContext(cmd)
		l, err := st.Learners().GetByName(ctx, args[0])
		if err != nil {
			return err
		}
		if l == nil {
			return fmt.Errorf("no learner named %q", args[0])
		}

		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Printf("Delete %q and all recorded progress? This cannot be undone. [y/N] ", l.Name)
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if strings.ToLower(strings.TrimSpace(line)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := st.DeleteLearner(ctx, l.ID); err != nil {
			return err
		}
		fmt.Printf("Deleted %s\n", l.Name)
		return nil
	},
}

func bandValid(band string) bool {
	for _, b := range validBands {
		if string(b) == band {
			return true
		}
	}
	return false
}

// openStore opens just the store, for commands that manage profiles
// without needing content or a resolved learner.
func openStore(cmd *cobra.Command) (*store.Store, func(), error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	return st, func() { st.Close() }, nil
}

func init() {
	profilesCreateCmd.Flags().String("band", string(content.BandAdult), "Age band for content selection")
	profilesRemoveCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesCreateCmd)
	profilesCmd.AddCommand(profilesRemoveCmd)
}
