// Package loader resolves a language to a translation dictionary from
// bundled data, persisted storage, the network, or a combination of them.
package loader

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrNotCached reports that a key has no usable persisted entry.
var ErrNotCached = errors.New("loader: not cached")

// storageTimeout bounds every individual storage operation.
const storageTimeout = 5 * time.Second

// Storage is a persisted key-value store for serialized cache entries.
// Implementations must honor context cancellation on blocking operations.
// Get returns ErrNotCached for absent keys.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// MemoryStorage is an in-process Storage, used as the default backend and in
// tests.
type MemoryStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStorage creates an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		data: make(map[string][]byte),
	}
}

// Get retrieves the stored bytes for key.
func (s *MemoryStorage) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.data[key]
	if !ok {
		return nil, ErrNotCached
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Set stores data under key.
func (s *MemoryStorage) Set(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.data[key] = stored
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *MemoryStorage) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

// Len returns the number of stored keys.
func (s *MemoryStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Verify MemoryStorage implements Storage
var _ Storage = (*MemoryStorage)(nil)
