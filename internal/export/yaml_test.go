package export

import (
	"bytes"
	"testing"

	"github.com/savyasachi6969/gemchat/internal"
	"gopkg.in/yaml.v3"
)

func TestYAMLExporter_Export(t *testing.T) {
	transcript := internal.CreateTestTranscript("s1")

	var buf bytes.Buffer
	exporter := &YAMLExporter{}
	if err := exporter.Export(transcript, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var decoded internal.Transcript
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded.SessionID != "s1" {
		t.Errorf("session_id = %q, want s1", decoded.SessionID)
	}
	if len(decoded.Messages) != 2 {
		t.Fatalf("messages = %d, want 2", len(decoded.Messages))
	}
	if decoded.Messages[0].Content != "hello" {
		t.Errorf("first message content = %q, want hello", decoded.Messages[0].Content)
	}
}
