// Package otp provides a keyed one-time-code store with per-entry expiry.
// It replaces ad-hoc process-global state: the store is constructed once and
// injected into whichever service needs short-lived verification codes.
package otp

import (
	"sync"
	"time"
)

type entry struct {
	code      string
	expiresAt time.Time
}

type Store struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

func NewStore() *Store {
	return &Store{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Put registers a code for key, replacing any previous code. Each entry has
// its own TTL.
func (s *Store) Put(key, code string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{code: code, expiresAt: s.now().Add(ttl)}
}

// Consume verifies code against the entry for key. On success the entry is
// deleted so a code can be used at most once. Expired entries are removed
// lazily and never verify.
func (s *Store) Consume(key, code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return false
	}
	if s.now().After(e.expiresAt) {
		delete(s.entries, key)
		return false
	}
	if e.code != code {
		return false
	}
	delete(s.entries, key)
	return true
}

// Delete removes the entry for key, if any.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}
