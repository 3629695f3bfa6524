package langsync

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/YonasValentin/langsync.xyz-sub000/cache"
)

// Defaults applied by NewClient for zero-valued Config fields.
const (
	DefaultBaseURL  = "https://api.langsync.xyz/v1"
	DefaultTimeout  = 10 * time.Second
	DefaultCacheTTL = time.Hour
	DefaultRetries  = 3
)

// Config holds the constructor-level configuration for a Client.
type Config struct {
	// APIKey authenticates against the hosted API. Required.
	APIKey string

	// ProjectID identifies the localization project. Required.
	ProjectID string

	// BaseURL points at the hosted API. Defaults to DefaultBaseURL.
	BaseURL string

	// Timeout bounds each request attempt. Every retry gets a fresh full
	// timeout budget. Defaults to DefaultTimeout.
	Timeout time.Duration

	// CacheTTL is the lifetime of cached responses. Defaults to
	// DefaultCacheTTL.
	CacheTTL time.Duration

	// Retries is the ceiling on total attempts per request, not on resends
	// after the first. Defaults to DefaultRetries.
	Retries int
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithCache sets the response cache.
func WithCache(store cache.Cache) Option {
	return func(c *Client) {
		c.cache = store
	}
}

// WithLogger sets the logger. The client is silent by default.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// callOptions carry per-call behavior through the facade methods.
type callOptions struct {
	refresh   bool
	languages []string
}

// CallOption is a per-call option for the facade methods.
type CallOption func(*callOptions)

// WithRefresh forces a network fetch, bypassing both the response cache and
// the in-flight request table.
func WithRefresh() CallOption {
	return func(o *callOptions) {
		o.refresh = true
	}
}

// WithLanguages restricts GetAllTranslations to an explicit language list
// instead of the project's configured languages.
func WithLanguages(languages ...string) CallOption {
	return func(o *callOptions) {
		o.languages = languages
	}
}

func newCallOptions(opts []CallOption) callOptions {
	var o callOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
