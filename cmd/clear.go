package cmd

import (
	"context"
	"fmt"

	"github.com/savyasachi6969/gemchat/internal"
	"github.com/spf13/cobra"
)

// clearCmd represents the clear command
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the active session's conversation memory",
	Long: `Delete all stored messages for the active session.

Clearing a session that has no messages succeeds silently.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := internal.OpenStore(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("failed to open conversation store: %w", err)
		}
		defer func() { _ = store.Close() }()

		if err := store.Clear(context.Background(), cfg.SessionID); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Cleared session %s\n", cfg.SessionID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
}
