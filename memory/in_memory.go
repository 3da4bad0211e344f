package memory

import (
	"sync"
)

// InMemoryStore is a process-local Store keeping per-session conversation
// history in an append-only slice.
//
// Concurrency: protected by RWMutex.
// Retention: unbounded; callers wanting a window pass a limit to History or
// Clear sessions explicitly. Suitable for tests and single-process
// deployments; swap for a durable backend when history must survive restarts.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]Message // sessionID -> ordered messages
}

// NewInMemoryStore creates a new in-memory conversation store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{sessions: make(map[string][]Message)}
}

// Add appends a message to the session's history.
func (s *InMemoryStore) Add(sessionID string, msg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = append(s.sessions[sessionID], msg)
	return nil
}

// History returns a copy of up to limit most recent messages in
// chronological order.
func (s *InMemoryStore) History(sessionID string, limit int) ([]Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	messages := s.sessions[sessionID]
	if limit > 0 && len(messages) > limit {
		messages = messages[len(messages)-limit:]
	}
	out := make([]Message, len(messages))
	copy(out, messages)
	return out, nil
}

// Clear removes all messages recorded for the session.
func (s *InMemoryStore) Clear(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
