package cache

import (
	"sync"
	"time"
)

// Store is a scoped key-value cache with per-entry expiry.
// It replaces ambient browser storage: everything that used to live in
// local/session storage goes through an injected Store instead.
type Store interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{}, ttl time.Duration)
	Invalidate(key string)
}

type entry struct {
	value     interface{}
	expiresAt time.Time
}

type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(key string) (interface{}, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}

	// Expiry is checked on read, not by a background sweeper
	if s.now().After(e.expiresAt) {
		delete(s.entries, key)
		return nil, false
	}

	return e.value, true
}

func (s *MemoryStore) Set(key string, value interface{}, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry{
		value:     value,
		expiresAt: s.now().Add(ttl),
	}
}

func (s *MemoryStore) Invalidate(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
}
