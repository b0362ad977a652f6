package llm

import (
	"context"
	"errors"
)

// Message is one turn of a multi-turn conversation sent to the model.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Chat message roles understood by the providers.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Client abstracts the hosted language model. Complete handles single-turn
// prompts; Chat replays an ordered message history for conversational flows.
// Neither interprets the response content.
type Client interface {
	Complete(ctx context.Context, system, payload string) (string, error)
	Chat(ctx context.Context, system string, messages []Message) (string, error)
}

// ErrUnavailable signals that the model call itself failed (network, auth,
// rate limit). It says nothing about the response content.
var ErrUnavailable = errors.New("language model unavailable")

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// Complete returns ErrUnavailable.
func (PlaceholderClient) Complete(ctx context.Context, system, payload string) (string, error) {
	_ = ctx
	_ = system
	_ = payload
	return "", ErrUnavailable
}

// Chat returns ErrUnavailable.
func (PlaceholderClient) Chat(ctx context.Context, system string, messages []Message) (string, error) {
	_ = ctx
	_ = system
	_ = messages
	return "", ErrUnavailable
}
