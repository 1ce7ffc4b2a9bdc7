package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/savyasachi6969/gemchat/internal"
	"github.com/spf13/cobra"
)

// whoamiCmd represents the whoami command
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show runtime configuration",
	Long:  `Show the active model, database, session, and which search backend credential resolution selected.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Backend resolution happens once at construction; no network call.
		searcher := internal.NewSearcher(cfg)
		displayRuntimeConfig(cmd, searcher.Backend())
		return nil
	},
}

func displayRuntimeConfig(cmd *cobra.Command, backend internal.Backend) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headerStyle.Render("Runtime Config"))

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Model\t%s\n", cfg.Model)
	fmt.Fprintf(w, "DB\t%s\n", cfg.DBPath)
	fmt.Fprintf(w, "Session\t%s\n", cfg.SessionID)
	fmt.Fprintf(w, "History budget\t%d chars\n", cfg.HistoryCharBudget)
	fmt.Fprintf(w, "Search backend\t%s\n", backend)
	_ = w.Flush()
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
