package internal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGeminiClient_Validation(t *testing.T) {
	_, err := NewGeminiClient("", "gemini-1.5-flash")
	require.Error(t, err)

	_, err = NewGeminiClient("key", "  ")
	require.Error(t, err)

	c, err := NewGeminiClient("key", "gemini-1.5-flash")
	require.NoError(t, err)
	require.Equal(t, defaultGeminiBaseURL, c.baseURL)
}

func TestGenerate_Success(t *testing.T) {
	var gotPath, gotKey string
	var gotReq geminiRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{
					{"text": "Hello "},
					{"text": "there."},
				}}},
			},
		})
	}))
	defer server.Close()

	c, err := NewGeminiClient("test-key", "gemini-1.5-flash", WithGeminiBaseURL(server.URL))
	require.NoError(t, err)

	reply, err := c.Generate(context.Background(), "say hello")
	require.NoError(t, err)
	require.Equal(t, "Hello there.", reply)

	require.Equal(t, "/models/gemini-1.5-flash:generateContent", gotPath)
	require.Equal(t, "test-key", gotKey)
	require.Len(t, gotReq.Contents, 1)
	require.Equal(t, "say hello", gotReq.Contents[0].Parts[0].Text)
}

func TestGenerate_HTTPStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	c, err := NewGeminiClient("test-key", "gemini-1.5-flash", WithGeminiBaseURL(server.URL))
	require.NoError(t, err)

	_, err = c.Generate(context.Background(), "hello")
	require.Error(t, err)

	var statusErr *HTTPStatusError
	require.True(t, errors.As(err, &statusErr))
	require.Equal(t, http.StatusTooManyRequests, statusErr.HTTPStatusCode())
}

func TestGenerate_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	c, err := NewGeminiClient("test-key", "gemini-1.5-flash", WithGeminiBaseURL(server.URL))
	require.NoError(t, err)

	_, err = c.Generate(context.Background(), "hello")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no candidates")
}

func TestGenerate_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c, err := NewGeminiClient("test-key", "gemini-1.5-flash", WithGeminiBaseURL(server.URL))
	require.NoError(t, err)

	_, err = c.Generate(context.Background(), "hello")
	require.Error(t, err)
	require.Contains(t, err.Error(), "request failed")
}
