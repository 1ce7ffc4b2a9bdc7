package export

import (
	"fmt"
	"io"

	"github.com/savyasachi6969/gemchat/internal"
)

// MarkdownExporter exports transcripts in Markdown format
type MarkdownExporter struct{}

// Export writes the transcript as a Markdown document
func (e *MarkdownExporter) Export(transcript *internal.Transcript, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# Session %s\n\n", transcript.SessionID)
	_, _ = fmt.Fprintf(w, "**Messages:** %d\n\n", len(transcript.Messages))
	_, _ = fmt.Fprintf(w, "---\n\n")

	for i, msg := range transcript.Messages {
		timestamp := ""
		if msg.CreatedAt != "" {
			timestamp = fmt.Sprintf(" (%s)", msg.CreatedAt)
		}

		_, _ = fmt.Fprintf(w, "**%s:**%s\n\n%s\n\n", msg.Role, timestamp, msg.Content)

		if i < len(transcript.Messages)-1 {
			_, _ = fmt.Fprintf(w, "---\n\n")
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
