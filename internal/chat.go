package internal

import (
	"context"
	"errors"
	"fmt"
)

// MessageStore is the persistence contract the orchestrator consumes.
type MessageStore interface {
	Add(ctx context.Context, sessionID, role, content string) error
	Fetch(ctx context.Context, sessionID string, limit int) ([]Message, error)
	Clear(ctx context.Context, sessionID string) error
}

// ContextProvider supplies an optional live-context block for a message.
type ContextProvider interface {
	LiveContext(ctx context.Context, message string) *LiveContext
}

// TextModel is the language-model contract: one composed prompt in, one
// text reply out.
type TextModel interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ChatService sequences one conversation turn: load history, detect and
// fetch live context, compose the prompt, invoke the model, persist both
// sides of the turn. Turns run one at a time per session.
type ChatService struct {
	store        MessageStore
	live         ContextProvider
	composer     *Composer
	model        TextModel
	sessionID    string
	historyLimit int
}

// NewChatService wires the pipeline for a single session.
func NewChatService(store MessageStore, live ContextProvider, composer *Composer, model TextModel, sessionID string) (*ChatService, error) {
	if store == nil {
		return nil, errors.New("chat: message store must not be nil")
	}
	if live == nil {
		return nil, errors.New("chat: context provider must not be nil")
	}
	if composer == nil {
		return nil, errors.New("chat: composer must not be nil")
	}
	if model == nil {
		return nil, errors.New("chat: model must not be nil")
	}
	if sessionID == "" {
		return nil, errors.New("chat: session id must not be empty")
	}
	return &ChatService{
		store:        store,
		live:         live,
		composer:     composer,
		model:        model,
		sessionID:    sessionID,
		historyLimit: DefaultHistoryLimit,
	}, nil
}

// SessionID returns the session this service writes to.
func (s *ChatService) SessionID() string {
	return s.sessionID
}

// HandleTurn processes one user message to completion and returns the reply
// text. Model failures degrade to a visible error-text reply so the
// conversation keeps going; storage failures propagate, since losing the
// turn would break the memory guarantee. A partially persisted turn (user
// row written, assistant row failed) is left as-is.
func (s *ChatService) HandleTurn(ctx context.Context, userMessage string) (string, error) {
	rows, err := s.store.Fetch(ctx, s.sessionID, s.historyLimit)
	if err != nil {
		return "", err
	}

	var liveBlock string
	if lc := s.live.LiveContext(ctx, userMessage); lc != nil {
		liveBlock = lc.Block
		LogDebug("live context attached: intent=%s query=%q", lc.Intent, lc.Query)
	}

	prompt := s.composer.Build(rows, userMessage, liveBlock)

	reply, err := s.model.Generate(ctx, prompt)
	if err != nil {
		LogWarn("model call failed: %v", err)
		reply = fmt.Sprintf("Error from model: %v", err)
	}
	if reply == "" {
		reply = "(no response)"
	}

	if err := s.store.Add(ctx, s.sessionID, RoleUser, userMessage); err != nil {
		return "", err
	}
	if err := s.store.Add(ctx, s.sessionID, RoleAssistant, reply); err != nil {
		return "", err
	}

	return reply, nil
}
