package internal

import (
	"fmt"
	"strings"
)

// SystemPrimer is the fixed instruction prepended to every prompt.
const SystemPrimer = "You are a helpful assistant. If a '[Live Search]' context is provided, " +
	"use it to answer time-sensitive questions and cite the listed sources in plain text."

const groundingInstruction = "Please ground your answer in the [Live Search] data when relevant, " +
	"and include short plain-text citations to the listed sources (just the URLs)."

// Composer renders the final model input from the system primer, bounded
// conversation history, the user message, and an optional live-context block.
type Composer struct {
	historyCharBudget int
}

// NewComposer creates a composer with the given history character budget.
// A non-positive budget falls back to the default.
func NewComposer(historyCharBudget int) *Composer {
	if historyCharBudget <= 0 {
		historyCharBudget = DefaultHistoryBudget
	}
	return &Composer{historyCharBudget: historyCharBudget}
}

// HistoryText renders history rows as "<role> (<timestamp>): <content>"
// lines under a system line, truncated to the trailing budget characters so
// the most recent content always survives.
func (c *Composer) HistoryText(rows []Message) string {
	chunks := make([]string, 0, len(rows)+1)
	chunks = append(chunks, "system: "+SystemPrimer)
	for _, m := range rows {
		chunks = append(chunks, fmt.Sprintf("%s (%s): %s", m.Role, m.CreatedAt, m.Content))
	}
	return truncateTail(strings.Join(chunks, "\n"), c.historyCharBudget)
}

// Build assembles the full prompt. liveBlock may be empty, in which case the
// grounding instruction is omitted.
func (c *Composer) Build(rows []Message, userMessage, liveBlock string) string {
	parts := []string{
		SystemPrimer,
		"\nConversation so far:\n" + c.HistoryText(rows),
		"\nUser:\n" + userMessage,
	}
	if liveBlock != "" {
		parts = append(parts, "\n"+liveBlock, "\n"+groundingInstruction)
	}
	return strings.Join(parts, "\n\n")
}

// truncateTail hard-cuts s to its last max characters. The cut is by rune,
// not byte, so a multibyte character is never split.
func truncateTail(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[len(runes)-max:])
}
