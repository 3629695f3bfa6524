package langsync

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/YonasValentin/langsync.xyz-sub000/cache"
)

// Client is the LangSync API client. It composes a TTL response cache with
// the request engine; all methods are safe for concurrent use.
type Client struct {
	cfg    Config
	http   *http.Client
	cache  cache.Cache
	logger *zap.Logger

	inflight singleflight.Group
}

// NewClient creates a Client for the given configuration. APIKey and
// ProjectID are required; missing fields fail fast with a ConfigError before
// anything reaches the network layer.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, &ConfigError{Field: "APIKey", Message: "is required"}
	}
	if cfg.ProjectID == "" {
		return nil, &ConfigError{Field: "ProjectID", Message: "is required"}
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	if cfg.Retries <= 0 {
		cfg.Retries = DefaultRetries
	}

	c := &Client{
		cfg:    cfg,
		http:   &http.Client{Transport: defaultTransport.Clone()},
		cache:  cache.NewMemory(),
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// GetProject fetches the project's metadata, including its configured
// languages.
func (c *Client) GetProject(ctx context.Context, opts ...CallOption) (*Project, error) {
	co := newCallOptions(opts)
	key := projectKey(c.cfg.ProjectID)

	if !co.refresh {
		if v, ok := c.cache.Get(key); ok {
			if p, ok := v.(*Project); ok {
				return p, nil
			}
		}
	}

	data, err := c.request(ctx, "/projects/"+url.PathEscape(c.cfg.ProjectID), co)
	if err != nil {
		return nil, err
	}

	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding project payload: %w", err)
	}

	c.cache.Set(key, &p, c.cfg.CacheTTL)
	return &p, nil
}

// GetTranslations fetches every language's dictionary for the project in a
// single request.
func (c *Client) GetTranslations(ctx context.Context, opts ...CallOption) (map[string]Dictionary, error) {
	co := newCallOptions(opts)
	key := translationsKey(c.cfg.ProjectID)

	if !co.refresh {
		if v, ok := c.cache.Get(key); ok {
			if all, ok := v.(map[string]Dictionary); ok {
				return all, nil
			}
		}
	}

	data, err := c.request(ctx, "/projects/"+url.PathEscape(c.cfg.ProjectID)+"/translations", co)
	if err != nil {
		return nil, err
	}

	var all map[string]Dictionary
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("decoding translations payload: %w", err)
	}

	c.cache.Set(key, all, c.cfg.CacheTTL)
	return all, nil
}

// GetLanguageTranslations fetches a single language's dictionary.
func (c *Client) GetLanguageTranslations(ctx context.Context, language string, opts ...CallOption) (Dictionary, error) {
	if language == "" {
		return nil, &ConfigError{Field: "language", Message: "is required"}
	}

	co := newCallOptions(opts)
	key := languageKey(c.cfg.ProjectID, language)

	if !co.refresh {
		if v, ok := c.cache.Get(key); ok {
			if dict, ok := v.(Dictionary); ok {
				return dict, nil
			}
		}
	}

	endpoint := "/projects/" + url.PathEscape(c.cfg.ProjectID) + "/translations/" + url.PathEscape(language)
	data, err := c.request(ctx, endpoint, co)
	if err != nil {
		return nil, err
	}

	var dict Dictionary
	if err := json.Unmarshal(data, &dict); err != nil {
		return nil, fmt.Errorf("decoding dictionary payload: %w", err)
	}

	c.cache.Set(key, dict, c.cfg.CacheTTL)
	return dict, nil
}

// GetAllTranslations fetches the dictionaries for the languages given via
// WithLanguages, or for the project's configured languages when none are
// given. Per-language fetches run in parallel; a failure in any one of them
// fails the whole call.
func (c *Client) GetAllTranslations(ctx context.Context, opts ...CallOption) (map[string]Dictionary, error) {
	co := newCallOptions(opts)

	languages := co.languages
	if len(languages) == 0 {
		p, err := c.GetProject(ctx, opts...)
		if err != nil {
			return nil, err
		}
		languages = p.Languages
	}

	g, gctx := errgroup.WithContext(ctx)
	var mu sync.Mutex
	result := make(map[string]Dictionary, len(languages))

	for _, language := range languages {
		language := language
		g.Go(func() error {
			dict, err := c.GetLanguageTranslations(gctx, language, opts...)
			if err != nil {
				return err
			}
			mu.Lock()
			result[language] = dict
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// ClearCache removes every cached response.
func (c *Client) ClearCache() {
	c.cache.Clear()
}

// CacheSize reports the number of tracked cache entries.
func (c *Client) CacheSize() int {
	return c.cache.Size()
}

// ProjectID returns the configured project identifier.
func (c *Client) ProjectID() string {
	return c.cfg.ProjectID
}
