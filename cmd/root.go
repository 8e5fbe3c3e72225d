package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/cogniz/internal/content"
	"github.com/abhisek/cogniz/internal/engine"
	"github.com/abhisek/cogniz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "cogniz",
	Short: "Critical thinking trainer",
	Long:  "Cogniz — terminal trainer that builds critical thinking skills through short adaptive rounds.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides COGNIZ_DB env var)")
	rootCmd.PersistentFlags().String("learner", "", "Learner profile name (defaults to the first profile)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(questCmd)
	rootCmd.AddCommand(skillsCmd)
	rootCmd.AddCommand(weeklyCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(contentCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then COGNIZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveLearner picks the profile to act as: --learner by name, else the
// first existing profile, else a freshly created default.
func resolveLearner(ctx context.Context, cmd *cobra.Command, st *store.Store) (*store.Learner, error) {
	name, _ := cmd.Flags().GetString("learner")
	if name != "" {
		l, err := st.Learners().GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if l == nil {
			return nil, fmt.Errorf("no learner named %q (see: cogniz profiles list)", name)
		}
		return l, nil
	}

	list, err := st.Learners().List(ctx)
	if err != nil {
		return nil, err
	}
	if len(list) > 0 {
		return list[0], nil
	}
	return st.Learners().Create(ctx, "learner", string(content.BandAdult))
}

// openEngine opens the store, loads the built-in packs, and resolves the
// learner. The caller must invoke the returned cleanup.
func openEngine(cmd *cobra.Command) (*engine.Engine, func(), error) {
	ctx := cmdContext(cmd)

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	lib, err := content.LoadBuiltin()
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("load content packs: %w", err)
	}

	learner, err := resolveLearner(ctx, cmd, st)
	if err != nil {
		st.Close()
		return nil, nil, err
	}

	return engine.New(st, lib, learner), func() { st.Close() }, nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
