package intent

import (
	"sync"

	"stayhub/internal/domain/booking"

	"github.com/google/uuid"
)

// Store is the transient, process-local bridge between the discovery view
// and checkout: one booking intent slot per browsing session. It replaces
// ambient global storage with an explicit single-slot channel owned by the
// server.
type Store struct {
	mu    sync.Mutex
	slots map[uuid.UUID]*booking.Intent
}

func NewStore() *Store {
	return &Store{slots: make(map[uuid.UUID]*booking.Intent)}
}

// Put overwrites any existing intent for the session unconditionally.
// There is exactly one browsing session per actor, so last-writer-wins
// is the whole story.
func (s *Store) Put(sessionID uuid.UUID, it *booking.Intent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[sessionID] = it
}

// Peek returns the current intent without consuming it. Absence means
// "no active booking" and the caller redirects back to discovery.
func (s *Store) Peek(sessionID uuid.UUID) (*booking.Intent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.slots[sessionID]
	return it, ok
}

// TakeAndClear returns the current intent and clears the slot in one
// observable step. A second take without an intervening Put reports
// absence, never a stale replay.
func (s *Store) TakeAndClear(sessionID uuid.UUID) (*booking.Intent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.slots[sessionID]
	if ok {
		delete(s.slots, sessionID)
	}
	return it, ok
}

// Clear drops the slot if present; used after a successful submission.
func (s *Store) Clear(sessionID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, sessionID)
}
