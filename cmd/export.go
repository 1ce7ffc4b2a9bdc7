package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/savyasachi6969/gemchat/internal"
	"github.com/savyasachi6969/gemchat/internal/export"
	"github.com/spf13/cobra"
)

// Upper bound on rows pulled for an export; well beyond any realistic
// interactive session.
const exportFetchLimit = 10000

var (
	exportFormat string
	exportOutput string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the session transcript to a file",
	Long: `Export the active session's transcript in various formats (jsonl, md, yaml, json).

By default the transcript is written to gemchat-<session>.<ext> in the
current directory; use --output to choose a path, or "-" for stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		exporter, err := export.NewExporter(exportFormat)
		if err != nil {
			return err
		}

		store, err := internal.OpenStore(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("failed to open conversation store: %w", err)
		}
		defer func() { _ = store.Close() }()

		messages, err := store.Fetch(context.Background(), cfg.SessionID, exportFetchLimit)
		if err != nil {
			return fmt.Errorf("failed to fetch session: %w", err)
		}

		transcript := &internal.Transcript{SessionID: cfg.SessionID, Messages: messages}

		if exportOutput == "-" {
			return exporter.Export(transcript, cmd.OutOrStdout())
		}

		path := exportOutput
		if path == "" {
			path = fmt.Sprintf("gemchat-%s.%s", cfg.SessionID, exporter.Extension())
		}
		if dir := filepath.Dir(path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = f.Close() }()

		if err := exporter.Export(transcript, f); err != nil {
			return fmt.Errorf("failed to export transcript: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d message(s) to %s\n", len(messages), path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "jsonl", "Export format (jsonl, md, yaml, json)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path (\"-\" for stdout)")
	rootCmd.AddCommand(exportCmd)
}
