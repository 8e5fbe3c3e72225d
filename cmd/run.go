package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/cogniz/internal/app"
)

// runApp opens the store, builds the engine, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	eng, cleanup, err := openEngine(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	return app.Run(eng)
}
