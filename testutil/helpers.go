// Package testutil provides shared helpers for tests.
package testutil

import (
	"encoding/json"
	"path/filepath"
	"testing"
)

// TempDBPath returns a database path inside a per-test temporary directory.
func TempDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "chat.db")
}

// JSONUnmarshal unmarshals JSON for testing
func JSONUnmarshal(t *testing.T, data []byte, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}
}
