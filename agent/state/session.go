package state

import (
	"errors"
	"time"
)

var ErrMissingSessionID = errors.New("session id is empty")

// SessionState is the per-conversation state the assistant keeps between
// messages: who it is talking to, what they wanted last, and any order
// details collected so far.
type SessionState struct {
	SessionID  string `json:"session_id"`
	CustomerID string `json:"customer_id"`

	// LastIntent is the most recent classified intent (inquiry, order,
	// escalation).
	LastIntent string `json:"last_intent,omitempty"`

	// OrderDraft accumulates the customer's order details across turns
	// until the completeness check passes and the order is placed.
	OrderDraft string `json:"order_draft,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

func NewSessionState(sessionID, customerID string, now time.Time) *SessionState {
	return &SessionState{
		SessionID:  sessionID,
		CustomerID: customerID,
		UpdatedAt:  now.UTC(),
	}
}

func (s *SessionState) Touch(now time.Time) {
	s.UpdatedAt = now.UTC()
}

// AppendDraft folds a new message into the order draft.
func (s *SessionState) AppendDraft(text string) {
	if s.OrderDraft == "" {
		s.OrderDraft = text
		return
	}
	s.OrderDraft += "\n" + text
}

// ClearDraft drops the accumulated order details, typically after the
// order has been placed.
func (s *SessionState) ClearDraft() {
	s.OrderDraft = ""
}

func (s *SessionState) Validate() error {
	if s == nil {
		return ErrNilSessionState
	}
	if s.SessionID == "" {
		return ErrMissingSessionID
	}
	return nil
}
