package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/savyasachi6969/gemchat/internal"
)

// JSONLExporter exports transcripts in JSONL format (one message per line)
type JSONLExporter struct{}

// Export writes each message as a single JSON line
func (e *JSONLExporter) Export(transcript *internal.Transcript, w io.Writer) error {
	enc := json.NewEncoder(w)

	for _, msg := range transcript.Messages {
		obj := map[string]interface{}{
			"session_id": transcript.SessionID,
			"role":       msg.Role,
			"content":    msg.Content,
		}
		if msg.CreatedAt != "" {
			obj["created_at"] = msg.CreatedAt
		}

		if err := enc.Encode(obj); err != nil {
			return fmt.Errorf("failed to encode message: %w", err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
