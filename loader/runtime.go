package loader

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	langsync "github.com/YonasValentin/langsync.xyz-sub000"
)

// Default runtime loader settings.
const (
	DefaultPrefix = "@langsync"
	DefaultTTL    = 24 * time.Hour
)

// selectedLanguageKey is the suffix of the fixed key holding the user's
// last-selected language.
const selectedLanguageKey = "selected-language"

// Fetcher fetches a language's dictionary from the hosted API.
// *langsync.Client satisfies it.
type Fetcher interface {
	GetLanguageTranslations(ctx context.Context, language string, opts ...langsync.CallOption) (langsync.Dictionary, error)
}

// Connectivity reports whether the network is reachable. Injected so the
// loader has no ambient platform dependency and tests can fake it.
type Connectivity interface {
	Online(ctx context.Context) bool
}

// alwaysOnline is the default checker for environments without a platform
// reachability signal.
type alwaysOnline struct{}

func (alwaysOnline) Online(context.Context) bool { return true }

// RefreshCallback observes background refresh outcomes; err is nil on
// success. Failures never propagate to the foreground call.
type RefreshCallback func(language string, err error)

// Runtime loads dictionaries from persisted storage, falling back to the
// network on a miss. Entries read past their staleness threshold trigger a
// non-blocking background refresh.
type Runtime struct {
	fetcher   Fetcher
	storage   Storage
	checker   Connectivity
	logger    *zap.Logger
	prefix    string
	ttl       time.Duration
	bgSync    bool
	onRefresh RefreshCallback

	mu         sync.Mutex
	refreshing map[string]bool
}

// RuntimeOption is a functional option for configuring the Runtime loader.
type RuntimeOption func(*Runtime)

// WithStorage sets the persisted storage backend (default: in-memory).
func WithStorage(s Storage) RuntimeOption {
	return func(r *Runtime) {
		r.storage = s
	}
}

// WithConnectivity sets the reachability checker (default: always online).
func WithConnectivity(c Connectivity) RuntimeOption {
	return func(r *Runtime) {
		r.checker = c
	}
}

// WithPrefix sets the storage key prefix.
func WithPrefix(prefix string) RuntimeOption {
	return func(r *Runtime) {
		r.prefix = prefix
	}
}

// WithTTL sets the lifetime of persisted entries.
func WithTTL(ttl time.Duration) RuntimeOption {
	return func(r *Runtime) {
		r.ttl = ttl
	}
}

// WithBackgroundSync enables staleness-triggered background refresh. The
// callback may be nil.
func WithBackgroundSync(cb RefreshCallback) RuntimeOption {
	return func(r *Runtime) {
		r.bgSync = true
		r.onRefresh = cb
	}
}

// WithRuntimeLogger sets the logger. The loader is silent by default.
func WithRuntimeLogger(logger *zap.Logger) RuntimeOption {
	return func(r *Runtime) {
		r.logger = logger
	}
}

// NewRuntime creates a runtime loader around the given fetcher.
func NewRuntime(fetcher Fetcher, opts ...RuntimeOption) *Runtime {
	r := &Runtime{
		fetcher:    fetcher,
		storage:    NewMemoryStorage(),
		checker:    alwaysOnline{},
		logger:     zap.NewNop(),
		prefix:     DefaultPrefix,
		ttl:        DefaultTTL,
		refreshing: make(map[string]bool),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// LoadTranslations resolves a dictionary for language.
//
// A valid persisted entry returns immediately; if it is also stale and
// background sync is enabled, a refresh is scheduled without blocking the
// return. On a miss the loader fails with an OfflineError when unreachable,
// otherwise fetches, persists, and returns the dictionary. Unlike background
// refreshes, failures on this foreground path always surface to the caller.
func (r *Runtime) LoadTranslations(ctx context.Context, language string) (langsync.Dictionary, error) {
	if entry, ok := r.readEntry(ctx, language, false); ok {
		if r.bgSync && entry.stale(time.Now().UnixMilli()) {
			r.scheduleRefresh(language)
		}
		return entry.Translations, nil
	}

	if !r.checker.Online(ctx) {
		return nil, &langsync.OfflineError{Message: "no cached translations for " + language}
	}

	dict, err := r.fetcher.GetLanguageTranslations(ctx, language)
	if err != nil {
		return nil, err
	}
	if err := r.writeEntry(ctx, language, dict); err != nil {
		return nil, err
	}
	return dict, nil
}

// Refresh forces a network fetch for language, bypassing the persisted
// entry. When offline it falls back to any still-present entry, expired or
// not, and fails only when storage has nothing at all.
func (r *Runtime) Refresh(ctx context.Context, language string) (langsync.Dictionary, error) {
	if !r.checker.Online(ctx) {
		if entry, ok := r.readEntry(ctx, language, true); ok {
			return entry.Translations, nil
		}
		return nil, &langsync.OfflineError{Message: "cannot refresh " + language}
	}

	dict, err := r.fetcher.GetLanguageTranslations(ctx, language, langsync.WithRefresh())
	if err != nil {
		return nil, err
	}
	if err := r.writeEntry(ctx, language, dict); err != nil {
		return nil, err
	}
	return dict, nil
}

// PreloadLanguages loads each language in parallel, best-effort: individual
// failures are logged and never abort the batch.
func (r *Runtime) PreloadLanguages(ctx context.Context, languages ...string) {
	var wg sync.WaitGroup
	for _, language := range languages {
		wg.Add(1)
		go func(language string) {
			defer wg.Done()
			if _, err := r.LoadTranslations(ctx, language); err != nil {
				r.logger.Warn("preload failed",
					zap.String("language", language),
					zap.Error(err))
			}
		}(language)
	}
	wg.Wait()
}

// ClearLanguage evicts the persisted entry for language.
func (r *Runtime) ClearLanguage(ctx context.Context, language string) error {
	opCtx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()
	return r.storage.Delete(opCtx, r.key(language))
}

// SelectedLanguage returns the persisted last-selected language, or "" when
// none was stored.
func (r *Runtime) SelectedLanguage(ctx context.Context) (string, error) {
	opCtx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	data, err := r.storage.Get(opCtx, r.prefix+":"+selectedLanguageKey)
	if errors.Is(err, ErrNotCached) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// SetSelectedLanguage persists the last-selected language preference.
func (r *Runtime) SetSelectedLanguage(ctx context.Context, language string) error {
	opCtx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()
	return r.storage.Set(opCtx, r.prefix+":"+selectedLanguageKey, []byte(language))
}

// scheduleRefresh starts at most one background refresh per language; the
// in-flight marker is cleared regardless of outcome.
func (r *Runtime) scheduleRefresh(language string) {
	r.mu.Lock()
	if r.refreshing[language] {
		r.mu.Unlock()
		return
	}
	r.refreshing[language] = true
	r.mu.Unlock()

	go func() {
		defer func() {
			r.mu.Lock()
			delete(r.refreshing, language)
			r.mu.Unlock()
		}()

		// Detached from the triggering call: the refresh outlives it by
		// design. The request engine applies its own per-attempt timeouts.
		ctx := context.Background()

		dict, err := r.fetcher.GetLanguageTranslations(ctx, language, langsync.WithRefresh())
		if err == nil {
			err = r.writeEntry(ctx, language, dict)
		}
		if err != nil {
			r.logger.Warn("background refresh failed",
				zap.String("language", language),
				zap.Error(err))
		} else {
			r.logger.Debug("background refresh complete",
				zap.String("language", language))
		}
		if r.onRefresh != nil {
			r.onRefresh(language, err)
		}
	}()
}

// readEntry loads and validates the persisted entry for language. Read
// failures and undecodable or version-mismatched entries are treated as "not
// cached"; the latter two are also evicted. allowExpired admits logically
// expired entries for the offline Refresh fallback.
func (r *Runtime) readEntry(ctx context.Context, language string, allowExpired bool) (*persistedEntry, bool) {
	opCtx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	key := r.key(language)
	data, err := r.storage.Get(opCtx, key)
	if err != nil {
		if !errors.Is(err, ErrNotCached) {
			r.logger.Debug("storage read failed",
				zap.String("language", language),
				zap.Error(err))
		}
		return nil, false
	}

	var entry persistedEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		r.logger.Debug("evicting undecodable entry", zap.String("language", language))
		_ = r.storage.Delete(opCtx, key)
		return nil, false
	}
	if entry.Version != SchemaVersion {
		r.logger.Debug("evicting entry with mismatched schema version",
			zap.String("language", language),
			zap.String("version", entry.Version))
		_ = r.storage.Delete(opCtx, key)
		return nil, false
	}
	if !allowExpired && entry.expired(time.Now().UnixMilli()) {
		return nil, false
	}
	return &entry, true
}

// writeEntry persists dict for language. Write failures propagate.
func (r *Runtime) writeEntry(ctx context.Context, language string, dict langsync.Dictionary) error {
	entry := newPersistedEntry(dict, r.ttl)
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	opCtx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()
	return r.storage.Set(opCtx, r.key(language), data)
}

func (r *Runtime) key(language string) string {
	return r.prefix + ":" + language
}
