package cache

import (
	"context"
	"encoding/json"
	"sync"
)

// Store is the storage backend behind a Cache. Implementations must
// be safe for concurrent use.
type Store interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) (json.RawMessage, bool, error)

	// Set stores a value, replacing any previous one wholesale.
	Set(ctx context.Context, key string, data json.RawMessage) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every entry owned by this store.
	Clear(ctx context.Context) error
}

// MemoryStore is an in-process Store. It is the default backend and
// lives exactly as long as its client.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]json.RawMessage
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]json.RawMessage)}
}

// Get returns the stored value for key, if any.
func (s *MemoryStore) Get(_ context.Context, key string) (json.RawMessage, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.entries[key]
	return data, ok, nil
}

// Set stores a value under key.
func (s *MemoryStore) Set(_ context.Context, key string, data json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = data
	return nil
}

// Delete removes key.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

// Clear removes all entries.
func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]json.RawMessage)
	return nil
}

// Len returns the number of stored entries.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
