package internal

import (
	"errors"
	"strings"
	"testing"
)

func TestStorageError(t *testing.T) {
	inner := errors.New("disk full")
	err := &StorageError{Op: "write", Path: "chat.db", Err: inner}

	if got := err.Error(); !strings.Contains(got, "write") || !strings.Contains(got, "chat.db") {
		t.Errorf("Error() = %q, want op and path included", got)
	}
	if !errors.Is(err, inner) {
		t.Error("errors.Is() failed to unwrap the inner error")
	}
}

func TestHTTPStatusError(t *testing.T) {
	err := &HTTPStatusError{StatusCode: 429, URL: "https://example.com", Body: "quota"}

	if got := err.Error(); !strings.Contains(got, "429") || !strings.Contains(got, "quota") {
		t.Errorf("Error() = %q, want status and body included", got)
	}
	if err.HTTPStatusCode() != 429 {
		t.Errorf("HTTPStatusCode() = %d, want 429", err.HTTPStatusCode())
	}
}
