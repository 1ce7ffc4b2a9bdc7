// Package cmd provides the command-line interface for gemchat.
package cmd

import (
	"fmt"
	"os"

	"github.com/savyasachi6969/gemchat/internal"
	"github.com/spf13/cobra"
)

var (
	verbose     bool
	dbPath      string
	sessionFlag string
	version     string = "dev"
	commit      string = "unknown"
	date        string = "unknown"

	// cfg is built once per invocation in PersistentPreRun and handed to
	// component constructors; commands never read the environment directly.
	cfg internal.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gemchat",
	Short: "Chat with Gemini, with memory and live web search",
	Long: `A CLI chat client for the Gemini API with conversation memory and
live web-search augmentation.

Every turn is logged to a local SQLite database, scoped by session. Messages
that look time-sensitive (prices, weather, "what's happening now") trigger a
single web search whose results are spliced into the prompt so the model can
ground its answer and cite sources.

Search backends are selected at startup from configured credentials:
Serper first, Google Custom Search second, otherwise search is disabled.

Quick Start:
  gemchat chat                  # Start an interactive session
  gemchat history               # Show recent turns for the session
  gemchat export --format md    # Write the session transcript to a file

Configuration is read from the environment (GEMINI_API_KEY, GEMINI_MODEL,
CHAT_DB, SESSION_ID, MAX_CONTEXT_CHARS, SERPER_API_KEY, GOOGLE_CSE_API_KEY,
GOOGLE_CSE_ID).`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)

		cfg = internal.LoadConfig()
		if dbPath != "" {
			cfg.DBPath = dbPath
		}
		if sessionFlag != "" {
			cfg.SessionID = sessionFlag
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the conversation database (overrides CHAT_DB)")
	rootCmd.PersistentFlags().StringVar(&sessionFlag, "session", "", "Session identifier (overrides SESSION_ID)")

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
