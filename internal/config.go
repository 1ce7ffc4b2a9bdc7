package internal

import (
	"os"
	"strconv"

	"github.com/google/uuid"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultModel         = "gemini-1.5-flash"
	DefaultDBPath        = "chat_memory.sqlite3"
	DefaultHistoryBudget = 12000
	DefaultHistoryLimit  = 100
	DefaultSearchCountry = "in"
	DefaultSearchLang    = "en"
)

// Config holds all runtime configuration. It is constructed once at process
// entry and passed into each component constructor; components never read
// the environment themselves.
type Config struct {
	// Model
	GeminiAPIKey string
	Model        string

	// Conversation store
	DBPath    string
	SessionID string

	// Prompt composition
	HistoryCharBudget int
	HistoryFetchLimit int

	// Search providers, checked in priority order: Serper first, then
	// Google Custom Search, otherwise search is disabled.
	SerperAPIKey    string
	GoogleCSEAPIKey string
	GoogleCSEID     string
	SearchCountry   string
	SearchLanguage  string
}

// LoadConfig reads configuration from environment variables, generating a
// fresh session identifier when SESSION_ID is unset.
func LoadConfig() Config {
	return Config{
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		Model:             getEnv("GEMINI_MODEL", DefaultModel),
		DBPath:            getEnv("CHAT_DB", DefaultDBPath),
		SessionID:         getEnv("SESSION_ID", NewSessionID()),
		HistoryCharBudget: getEnvInt("MAX_CONTEXT_CHARS", DefaultHistoryBudget),
		HistoryFetchLimit: DefaultHistoryLimit,
		SerperAPIKey:      os.Getenv("SERPER_API_KEY"),
		GoogleCSEAPIKey:   os.Getenv("GOOGLE_CSE_API_KEY"),
		GoogleCSEID:       os.Getenv("GOOGLE_CSE_ID"),
		SearchCountry:     getEnv("SEARCH_COUNTRY", DefaultSearchCountry),
		SearchLanguage:    getEnv("SEARCH_LANGUAGE", DefaultSearchLang),
	}
}

// NewSessionID generates an opaque session identifier.
func NewSessionID() string {
	return "sess-" + uuid.NewString()[:8]
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		LogWarn("ignoring invalid %s=%q", key, val)
		return defaultVal
	}
	return n
}
