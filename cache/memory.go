package cache

import (
	"sync"
	"time"
)

// entry holds a cached value with its absolute expiry.
type entry struct {
	value     any
	expiresAt time.Time
}

// Memory is a thread-safe in-memory cache with per-entry TTL. Expired
// entries are evicted lazily on the next read, never proactively.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewMemory creates an empty in-memory cache.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]entry),
	}
}

// Get retrieves a value from the cache.
// Returns the value and true if present and unexpired, nil and false otherwise.
func (c *Memory) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if !time.Now().Before(e.expiresAt) {
		// Entry expired - clean it up
		c.mu.Lock()
		if current, ok := c.entries[key]; ok && current.expiresAt.Equal(e.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}

	return e.value, true
}

// Set stores a value with the given TTL, overwriting any prior entry.
func (c *Memory) Set(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

// Clear removes all entries from the cache.
func (c *Memory) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Size returns the number of tracked entries, including expired ones that
// have not yet been evicted by a read.
func (c *Memory) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Verify Memory implements Cache
var _ Cache = (*Memory)(nil)
