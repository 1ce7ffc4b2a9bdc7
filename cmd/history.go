package cmd

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/savyasachi6969/gemchat/internal"
	"github.com/spf13/cobra"
)

const defaultHistoryTurns = 20

var historyTurns int

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	roleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent turns for the active session",
	Long:  `Show the most recent conversation turns for the active session as a table.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := internal.OpenStore(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("failed to open conversation store: %w", err)
		}
		defer func() { _ = store.Close() }()

		return displayHistory(cmd, store, historyTurns)
	},
}

// displayHistory renders the last n turns (user plus assistant rows) of the
// active session.
func displayHistory(cmd *cobra.Command, store *internal.Store, turns int) error {
	if turns <= 0 {
		turns = defaultHistoryTurns
	}

	// Two rows per turn.
	messages, err := store.Fetch(context.Background(), cfg.SessionID, turns*2)
	if err != nil {
		return fmt.Errorf("failed to fetch history: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("Last %d turns (session: %s)", turns, cfg.SessionID)))

	if len(messages) == 0 {
		fmt.Fprintln(out, "No messages yet.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tROLE\tCONTENT")
	for _, m := range messages {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			dateStyle.Render(m.CreatedAt),
			roleStyle.Render(m.Role),
			truncateContent(m.Content, 80),
		)
	}
	return w.Flush()
}

// truncateContent shortens a message for single-line table display.
func truncateContent(content string, max int) string {
	content = strings.ReplaceAll(content, "\n", " ")
	runes := []rune(content)
	if len(runes) <= max {
		return content
	}
	return string(runes[:max-1]) + "…"
}

func init() {
	historyCmd.Flags().IntVarP(&historyTurns, "turns", "n", defaultHistoryTurns, "Number of turns to show")
	rootCmd.AddCommand(historyCmd)
}
