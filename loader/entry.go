package loader

import (
	"time"

	langsync "github.com/YonasValentin/langsync.xyz-sub000"
)

// SchemaVersion tags the persisted entry layout. Entries written with a
// different version are treated as absent and evicted on read.
const SchemaVersion = "1.0.0"

// staleFraction of the original TTL: once remaining lifetime drops below it,
// the entry is still returnable but triggers a background refresh.
const staleFraction = 0.10

// persistedEntry is the JSON layout written to Storage.
type persistedEntry struct {
	Translations langsync.Dictionary `json:"translations"`
	CachedAt     int64               `json:"cachedAt"`  // epoch-ms
	ExpiresAt    int64               `json:"expiresAt"` // epoch-ms
	Version      string              `json:"version"`
}

func newPersistedEntry(dict langsync.Dictionary, ttl time.Duration) persistedEntry {
	now := time.Now().UnixMilli()
	return persistedEntry{
		Translations: dict,
		CachedAt:     now,
		ExpiresAt:    now + ttl.Milliseconds(),
		Version:      SchemaVersion,
	}
}

func (e *persistedEntry) expired(now int64) bool {
	return now >= e.ExpiresAt
}

// stale reports whether the remaining lifetime has fallen below the stale
// fraction of the original TTL. Stale entries remain valid and returnable.
func (e *persistedEntry) stale(now int64) bool {
	original := e.ExpiresAt - e.CachedAt
	if original <= 0 {
		return true
	}
	remaining := e.ExpiresAt - now
	return float64(remaining) < float64(original)*staleFraction
}
