package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/savyasachi6969/gemchat/internal"
)

func TestJSONLExporter_Export(t *testing.T) {
	transcript := internal.CreateTestTranscript("s1")

	var buf bytes.Buffer
	exporter := &JSONLExporter{}
	if err := exporter.Export(transcript, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(transcript.Messages) {
		t.Fatalf("output has %d lines, want %d", len(lines), len(transcript.Messages))
	}

	for i, line := range lines {
		var obj map[string]interface{}
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", i, err)
		}
		if obj["session_id"] != "s1" {
			t.Errorf("line %d session_id = %v, want s1", i, obj["session_id"])
		}
		if obj["role"] != transcript.Messages[i].Role {
			t.Errorf("line %d role = %v, want %s", i, obj["role"], transcript.Messages[i].Role)
		}
	}
}

func TestJSONLExporter_EmptyTranscript(t *testing.T) {
	var buf bytes.Buffer
	exporter := &JSONLExporter{}
	if err := exporter.Export(internal.CreateTestTranscriptWithMessages("s1", nil), &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty transcript produced output: %q", buf.String())
	}
}
