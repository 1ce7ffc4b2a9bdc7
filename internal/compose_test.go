package internal

import (
	"strings"
	"testing"
)

func TestTruncateTail(t *testing.T) {
	long := strings.Repeat("abcde", 4000) // 20000 chars

	got := truncateTail(long, 12000)
	if len(got) != 12000 {
		t.Fatalf("truncateTail() length = %d, want 12000", len(got))
	}
	if got != long[len(long)-12000:] {
		t.Error("truncateTail() does not equal the input's last 12000 characters")
	}

	if got := truncateTail("short", 12000); got != "short" {
		t.Errorf("truncateTail() on short input = %q, want unchanged", got)
	}
}

func TestTruncateTail_RuneSafe(t *testing.T) {
	s := strings.Repeat("°", 10)
	got := truncateTail(s, 4)
	if got != "°°°°" {
		t.Errorf("truncateTail() = %q, want four degree signs", got)
	}
}

func TestHistoryText_Format(t *testing.T) {
	composer := NewComposer(0)
	rows := []Message{
		{Role: RoleUser, Content: "hello", CreatedAt: "2024-01-01 10:00:00"},
		{Role: RoleAssistant, Content: "hi", CreatedAt: "2024-01-01 10:00:01"},
	}

	got := composer.HistoryText(rows)
	want := "system: " + SystemPrimer + "\n" +
		"user (2024-01-01 10:00:00): hello\n" +
		"assistant (2024-01-01 10:00:01): hi"
	if got != want {
		t.Errorf("HistoryText() =\n%q\nwant\n%q", got, want)
	}
}

func TestHistoryText_KeepsMostRecentOnOverflow(t *testing.T) {
	composer := NewComposer(100)
	rows := []Message{
		{Role: RoleUser, Content: strings.Repeat("old ", 100), CreatedAt: "2024-01-01 10:00:00"},
		{Role: RoleUser, Content: "the newest message", CreatedAt: "2024-01-01 10:00:01"},
	}

	got := composer.HistoryText(rows)
	if len([]rune(got)) != 100 {
		t.Errorf("HistoryText() length = %d, want 100", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "the newest message") {
		t.Errorf("HistoryText() dropped the most recent content:\n%q", got)
	}
}

func TestBuild_WithoutLiveBlock(t *testing.T) {
	composer := NewComposer(0)
	got := composer.Build(nil, "hello", "")

	if !strings.HasPrefix(got, SystemPrimer) {
		t.Error("Build() does not start with the system primer")
	}
	if !strings.Contains(got, "Conversation so far:") {
		t.Error("Build() missing conversation section")
	}
	if !strings.Contains(got, "User:\nhello") {
		t.Error("Build() missing user message section")
	}
	if strings.Contains(got, "[Live Search]") || strings.Contains(got, "ground your answer") {
		t.Error("Build() without a live block must not carry live-search sections")
	}
}

func TestBuild_WithLiveBlock(t *testing.T) {
	composer := NewComposer(0)
	block := "[Live Search] Bitcoin price:\nAnswerBox: $65,000"
	got := composer.Build(nil, "btc price", block)

	if !strings.Contains(got, block) {
		t.Error("Build() missing the live block")
	}
	if !strings.Contains(got, groundingInstruction) {
		t.Error("Build() missing the grounding instruction")
	}
	if strings.Index(got, block) > strings.Index(got, groundingInstruction) {
		t.Error("Build() places the grounding instruction before the live block")
	}
	if strings.Index(got, "User:\nbtc price") > strings.Index(got, block) {
		t.Error("Build() places the live block before the user message")
	}
}
