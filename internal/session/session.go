// Package session implements server-side browser sessions. A session binds a
// client-held identifier (carried in an HttpOnly cookie) to a sanitized user
// view. Sessions live only in process memory; restarting the server logs
// everyone out.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/reut-b/profile-site/models"
)

// Store is the session-store contract used by the HTTP layer.
//
// The per-browser state machine has two states: anonymous (no entry for the
// session ID) and authenticated (an entry holding a sanitized user view).
// Set performs the anonymous-to-authenticated transition on login; Destroy
// and TTL expiry perform the reverse.
type Store interface {
	// Get returns the user bound to sessionID. Expired entries read as
	// absent.
	Get(sessionID string) (models.UserView, bool)

	// Set binds user to sessionID for the store's TTL, replacing any
	// previous binding.
	Set(sessionID string, user models.UserView)

	// Destroy removes the session. Destroying an unknown ID is a no-op.
	Destroy(sessionID string)
}

// NewSessionID returns a fresh unguessable session identifier.
// Prefers time-ordered UUIDv7, falling back to v4 if entropy gathering for
// v7 fails.
func NewSessionID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

type entry struct {
	user      models.UserView
	expiresAt time.Time
}

// MemoryStore is the in-memory [Store] implementation. Safe for concurrent
// use; reads and writes from different requests synchronize only on the
// internal mutex.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore constructs a MemoryStore whose sessions expire ttl after
// each Set.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get implements [Store]. A hit on an expired entry removes it.
func (s *MemoryStore) Get(sessionID string) (models.UserView, bool) {
	s.mu.RLock()
	e, ok := s.entries[sessionID]
	s.mu.RUnlock()

	if !ok {
		return models.UserView{}, false
	}

	if s.now().After(e.expiresAt) {
		s.Destroy(sessionID)
		return models.UserView{}, false
	}

	return e.user, true
}

// Set implements [Store].
func (s *MemoryStore) Set(sessionID string, user models.UserView) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[sessionID] = entry{
		user:      user,
		expiresAt: s.now().Add(s.ttl),
	}
}

// Destroy implements [Store].
func (s *MemoryStore) Destroy(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, sessionID)
}

// Purge removes every expired session and returns how many were evicted.
// Called periodically by the sweeper so that abandoned sessions do not
// accumulate between reads.
func (s *MemoryStore) Purge() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, id)
			evicted++
		}
	}

	return evicted
}

// Len returns the number of live entries, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}
