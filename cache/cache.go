// Package cache provides the TTL key-value store backing the client facade.
package cache

import "time"

// Cache is the interface for TTL-bounded response caching.
type Cache interface {
	// Get returns the cached value only while it is unexpired; an expired
	// entry behaves as a miss.
	Get(key string) (any, bool)

	// Set stores value until now+ttl, unconditionally overwriting any prior
	// entry at the same key. A non-positive ttl stores an already-expired
	// entry.
	Set(key string, value any, ttl time.Duration)

	// Clear removes all entries.
	Clear()

	// Size reports the number of tracked entries. Logically expired entries
	// that have not yet been lazily evicted are counted.
	Size() int
}
