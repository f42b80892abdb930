package state

import (
	"context"
	"sync"
	"time"
)

// InMemoryStore keeps session state in process memory. It backs deployments
// without a Redis instance and the test suite.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]SessionState
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{sessions: make(map[string]SessionState)}
}

func (s *InMemoryStore) Load(_ context.Context, sessionID string) (*SessionState, error) {
	if sessionID == "" {
		return nil, ErrMissingSessionID
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrStateNotFound
	}
	copied := st
	return &copied, nil
}

func (s *InMemoryStore) Save(_ context.Context, st *SessionState) error {
	if st == nil {
		return ErrNilSessionState
	}
	if err := st.Validate(); err != nil {
		return err
	}
	if st.UpdatedAt.IsZero() {
		st.UpdatedAt = time.Now().UTC()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[st.SessionID] = *st
	return nil
}

func (s *InMemoryStore) Delete(_ context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrMissingSessionID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
