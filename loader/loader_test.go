package loader

import (
	"context"
	"sync"

	langsync "github.com/YonasValentin/langsync.xyz-sub000"
)

// fakeFetcher is an in-memory Fetcher spy.
type fakeFetcher struct {
	mu       sync.Mutex
	calls    int
	lastLang string
	dicts    map[string]langsync.Dictionary
	errFor   map[string]error
	block    chan struct{} // when non-nil, calls wait until closed
}

func newFakeFetcher(dicts map[string]langsync.Dictionary) *fakeFetcher {
	return &fakeFetcher{
		dicts:  dicts,
		errFor: make(map[string]error),
	}
}

func (f *fakeFetcher) GetLanguageTranslations(ctx context.Context, language string, opts ...langsync.CallOption) (langsync.Dictionary, error) {
	f.mu.Lock()
	f.calls++
	f.lastLang = language
	block := f.block
	err := f.errFor[language]
	dict, ok := f.dicts[language]
	f.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, &langsync.CancelledError{Cause: ctx.Err()}
		}
	}
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &langsync.NotFoundError{Message: "no dictionary for " + language}
	}
	return dict, nil
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeConnectivity reports a fixed reachability state.
type fakeConnectivity struct {
	online bool
}

func (f *fakeConnectivity) Online(context.Context) bool {
	return f.online
}
