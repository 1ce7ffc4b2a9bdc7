package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/savyasachi6969/gemchat/internal"
	"github.com/spf13/cobra"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42")).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))

	replyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))
)

const replHelp = `Commands:
  /help      Show this help
  /new       Start a new session (clears memory for this session id)
  /history   Show the last 20 turns
  /whoami    Show config and which search backend is active
  /quit      Exit`

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start an interactive chat session with the configured Gemini model.

Type messages at the prompt; time-sensitive questions (e.g. "btc price",
"weather in mumbai") are augmented with a live web search before the model
is called. Slash commands (/help, /new, /history, /whoami, /quit) control
the session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.GeminiAPIKey == "" {
			return errors.New("GEMINI_API_KEY is not set")
		}

		store, err := internal.OpenStore(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("failed to open conversation store: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				internal.LogWarn("failed to close store: %v", err)
			}
		}()

		model, err := internal.NewGeminiClient(cfg.GeminiAPIKey, cfg.Model)
		if err != nil {
			return fmt.Errorf("failed to create model client: %w", err)
		}

		searcher := internal.NewSearcher(cfg)
		detector := internal.NewDetector(searcher)
		composer := internal.NewComposer(cfg.HistoryCharBudget)

		svc, err := internal.NewChatService(store, detector, composer, model, cfg.SessionID)
		if err != nil {
			return fmt.Errorf("failed to wire chat pipeline: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, bannerStyle.Render("Gemini Chat with Memory + Live Search"))
		fmt.Fprintf(out, "Session: %s (type /help for commands)\n\n", cfg.SessionID)

		scanner := bufio.NewScanner(cmd.InOrStdin())
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

		for {
			fmt.Fprint(out, promptStyle.Render("You> ")+" ")
			if !scanner.Scan() {
				fmt.Fprintln(out, "\nBye!")
				return scanner.Err()
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			if strings.HasPrefix(line, "/") {
				quit, err := runSlashCommand(cmd, store, searcher, line)
				if err != nil {
					return err
				}
				if quit {
					fmt.Fprintln(out, "Bye!")
					return nil
				}
				continue
			}

			reply, err := svc.HandleTurn(context.Background(), line)
			if err != nil {
				// Storage failures end the session; degraded model/search
				// replies never reach this path.
				return fmt.Errorf("turn failed: %w", err)
			}
			fmt.Fprintln(out, replyStyle.Render(reply))
		}
	},
}

// runSlashCommand handles a REPL slash command. It returns true when the
// session should end.
func runSlashCommand(cmd *cobra.Command, store *internal.Store, searcher internal.Searcher, line string) (bool, error) {
	out := cmd.OutOrStdout()

	switch strings.ToLower(line) {
	case "/help":
		fmt.Fprintln(out, replHelp)
	case "/new":
		if err := store.Clear(context.Background(), cfg.SessionID); err != nil {
			return false, fmt.Errorf("failed to clear session: %w", err)
		}
		fmt.Fprintln(out, noticeStyle.Render("New session started. Memory cleared."))
	case "/history":
		if err := displayHistory(cmd, store, defaultHistoryTurns); err != nil {
			return false, err
		}
	case "/whoami":
		displayRuntimeConfig(cmd, searcher.Backend())
	case "/quit", "/exit":
		return true, nil
	default:
		fmt.Fprintf(out, "Unknown command %s, type /help for commands.\n", line)
	}
	return false, nil
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
