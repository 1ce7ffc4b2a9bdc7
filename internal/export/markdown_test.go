package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/savyasachi6969/gemchat/internal"
)

func TestMarkdownExporter_Export(t *testing.T) {
	transcript := internal.CreateTestTranscript("s1")

	var buf bytes.Buffer
	exporter := &MarkdownExporter{}
	if err := exporter.Export(transcript, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"# Session s1",
		"**Messages:** 2",
		"**user:** (2024-01-01 10:00:00)",
		"hello",
		"**assistant:** (2024-01-01 10:00:01)",
		"hi there",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestMarkdownExporter_EmptyTranscript(t *testing.T) {
	var buf bytes.Buffer
	exporter := &MarkdownExporter{}
	if err := exporter.Export(internal.CreateTestTranscriptWithMessages("s1", nil), &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if !strings.Contains(buf.String(), "**Messages:** 0") {
		t.Errorf("output missing message count:\n%s", buf.String())
	}
}
