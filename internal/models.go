package internal

// Message roles stored with each conversation row.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message is one persisted half of a conversation turn. Rows are immutable
// once written; ordering within a session is (created_at, id).
type Message struct {
	ID        int64  `json:"id" yaml:"id"`
	SessionID string `json:"session_id" yaml:"session_id"`
	Role      string `json:"role" yaml:"role"`
	Content   string `json:"content" yaml:"content"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
}

// Link is a single search hit: title plus URL.
type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// SearchResult is the provider-normalized response shape. Answer is empty
// when the provider returned nothing recognizable as a direct answer.
// Snippets and Links keep provider order and hold at most five entries each.
type SearchResult struct {
	Answer   string
	Snippets []string
	Links    []Link
}

// Intent classifies the purpose of a user message for live-context lookup.
type Intent int

const (
	IntentNone Intent = iota
	IntentPrice
	IntentWeather
	IntentRecency
)

func (i Intent) String() string {
	switch i {
	case IntentPrice:
		return "price"
	case IntentWeather:
		return "weather"
	case IntentRecency:
		return "recency"
	default:
		return "none"
	}
}

// LiveContext is the search-derived block spliced into a model prompt.
// It is transient: only the final assistant reply is persisted.
type LiveContext struct {
	Intent Intent
	Query  string
	Block  string
}

// Transcript is a session's ordered message history in exportable form.
type Transcript struct {
	SessionID string    `json:"session_id" yaml:"session_id"`
	Messages  []Message `json:"messages" yaml:"messages"`
}
