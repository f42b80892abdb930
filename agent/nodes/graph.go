// Package node holds the steps of the orchestrator's message-handling
// graph. Each node takes the accumulated GraphState and returns it with
// its own contribution filled in.
package node

import (
	"context"
	"errors"
	"strings"
	"time"

	contractx "github.com/pumpernickelhq/bakery-assistant/agent/contract"
	statex "github.com/pumpernickelhq/bakery-assistant/agent/state"
)

var (
	ErrInvalidMessage = errors.New("message is empty")
	ErrInvalidSession = errors.New("session id is empty")
)

type GraphInput struct {
	SessionID string
	Text      string
}

type GraphOutput struct {
	Reply  string
	Intent contractx.Intent
}

type GraphState struct {
	SessionID string
	Text      string
	Now       time.Time

	Session *statex.SessionState
	Intent  contractx.Intent
	Message string
}

// Responder produces the reply for a classified message.
type Responder interface {
	// Inquiry answers a product or business question.
	Inquiry(ctx context.Context, message string) (string, error)
	// Order advances an order draft: it either places the order (placed
	// true) or returns a reply asking for the missing details.
	Order(ctx context.Context, draft string) (reply string, placed bool, err error)
	// Escalation acknowledges a hand-off to a human.
	Escalation(ctx context.Context, message string) (string, error)
}

func ValidateRequest(in GraphInput, nowFn func() time.Time) (*GraphState, error) {
	sessionID := strings.TrimSpace(in.SessionID)
	if sessionID == "" {
		return nil, ErrInvalidSession
	}

	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, ErrInvalidMessage
	}

	return &GraphState{
		SessionID: sessionID,
		Text:      text,
		Now:       nowFn().UTC(),
	}, nil
}
