package loader

import (
	"context"

	langsync "github.com/YonasValentin/langsync.xyz-sub000"
)

// Hybrid serves bundled languages straight from the bundle, with no network
// or cache interaction, and delegates everything else to a Runtime loader.
type Hybrid struct {
	bundled *Bundled
	runtime *Runtime
}

// NewHybrid composes a bundled and a runtime loader.
func NewHybrid(bundled *Bundled, runtime *Runtime) *Hybrid {
	return &Hybrid{
		bundled: bundled,
		runtime: runtime,
	}
}

// LoadTranslations returns the bundled dictionary when the bundle can serve
// the language (exactly or via tag matching), otherwise takes the runtime
// cached/network path.
func (h *Hybrid) LoadTranslations(ctx context.Context, language string) (langsync.Dictionary, error) {
	if matched, ok := h.bundled.Resolve(language); ok {
		return h.bundled.LoadTranslations(matched)
	}
	return h.runtime.LoadTranslations(ctx, language)
}

// Refresh forces a network fetch for non-bundled languages. Bundled
// languages are immutable at runtime and return their bundled dictionary.
func (h *Hybrid) Refresh(ctx context.Context, language string) (langsync.Dictionary, error) {
	if matched, ok := h.bundled.Resolve(language); ok {
		return h.bundled.LoadTranslations(matched)
	}
	return h.runtime.Refresh(ctx, language)
}

// PreloadLanguages warms the runtime loader for the given languages,
// excluding those the bundle already serves.
func (h *Hybrid) PreloadLanguages(ctx context.Context, languages ...string) {
	var remote []string
	for _, language := range languages {
		if _, ok := h.bundled.Resolve(language); ok {
			continue
		}
		remote = append(remote, language)
	}
	if len(remote) > 0 {
		h.runtime.PreloadLanguages(ctx, remote...)
	}
}

// Bundled returns the underlying bundled loader.
func (h *Hybrid) Bundled() *Bundled {
	return h.bundled
}

// Runtime returns the underlying runtime loader.
func (h *Hybrid) Runtime() *Runtime {
	return h.runtime
}
