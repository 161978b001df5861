package sessionstore

import (
	"context"
	"sync"
	"time"

	"github.com/wvwild/adventure-hub/internal/domain/filter"
	"github.com/wvwild/adventure-hub/internal/domain/hub"
)

type sessionRecord struct {
	state     filter.State
	expiresAt time.Time
}

// MemoryStore keeps session state in process memory for single-instance and test setups.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]sessionRecord
	now      func() time.Time
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]sessionRecord),
		now:      time.Now,
	}
}

// Save implements hub.SessionStore.
func (s *MemoryStore) Save(_ context.Context, id string, state filter.State, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	exp := time.Time{}
	if ttl > 0 {
		exp = now.Add(ttl)
	}
	s.sessions[id] = sessionRecord{state: state.Clone(), expiresAt: exp}
	s.evictLocked(now)
	return nil
}

// Load implements hub.SessionStore.
func (s *MemoryStore) Load(_ context.Context, id string) (filter.State, bool, error) {
	s.mu.RLock()
	record, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return filter.State{}, false, nil
	}
	if hasExpired(record.expiresAt, s.now()) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return filter.State{}, false, nil
	}
	return record.state.Clone(), true, nil
}

// Delete implements hub.SessionStore.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Len reports the number of stored sessions, expired ones included until evicted.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *MemoryStore) evictLocked(now time.Time) {
	for id, record := range s.sessions {
		if hasExpired(record.expiresAt, now) {
			delete(s.sessions, id)
		}
	}
}

func hasExpired(ts, now time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return !ts.After(now)
}

var _ hub.SessionStore = (*MemoryStore)(nil)
