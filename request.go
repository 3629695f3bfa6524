package langsync

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 8 << 20

// defaultTransport reuses connections across requests; per-attempt deadlines
// come from the request context, not the transport.
var defaultTransport = &http.Transport{
	Proxy:                 http.ProxyFromEnvironment,
	MaxIdleConns:          100,
	MaxIdleConnsPerHost:   100,
	IdleConnTimeout:       90 * time.Second,
	TLSHandshakeTimeout:   10 * time.Second,
	ExpectContinueTimeout: 1 * time.Second,
	ForceAttemptHTTP2:     true,
	DialContext: (&net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext,
}

// request performs a GET against the fully-resolved endpoint path and returns
// the envelope's data payload.
//
// Identical concurrent requests are coalesced: callers ride the in-flight
// attempt sequence (retries included) and observe its eventual result. The
// in-flight entry is keyed by the resolved path, inserted before the first
// attempt, and removed once the whole sequence settles. A refresh call
// bypasses the table entirely, and retries never re-enter it.
//
// Cancelling the context of the caller that opened a shared flight cancels it
// for every rider; per-caller cancellation of a shared result is deliberately
// not attempted.
func (c *Client) request(ctx context.Context, endpoint string, opts callOptions) (json.RawMessage, error) {
	if opts.refresh {
		return c.fetchWithRetry(ctx, endpoint)
	}

	v, err, shared := c.inflight.Do(endpoint, func() (any, error) {
		return c.fetchWithRetry(ctx, endpoint)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		c.logger.Debug("request coalesced", zap.String("endpoint", endpoint))
	}
	return v.(json.RawMessage), nil
}

// fetchWithRetry runs the attempt sequence. Retries is a ceiling on total
// attempts; only network-classified failures are retried, each with a fresh
// timeout budget and no backoff sleep.
func (c *Client) fetchWithRetry(ctx context.Context, endpoint string) (json.RawMessage, error) {
	var lastErr error
	for attempt := 1; attempt <= c.cfg.Retries; attempt++ {
		data, err := c.fetchOnce(ctx, endpoint)
		if err == nil {
			return data, nil
		}
		lastErr = err
		if !IsRetryable(err) || attempt == c.cfg.Retries {
			return nil, err
		}
		c.logger.Debug("retrying request",
			zap.String("endpoint", endpoint),
			zap.Int("attempt", attempt),
			zap.Error(err))
	}
	return nil, lastErr
}

// fetchOnce issues a single attempt under a fresh timeout derived from the
// caller's context. The deferred cancel releases the timer and detaches the
// derived context on every exit path.
func (c *Client) fetchOnce(ctx context.Context, endpoint string) (json.RawMessage, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, c.cfg.BaseURL+endpoint, nil)
	if err != nil {
		return nil, &NetworkError{Message: "building request", Cause: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", UserAgent())
	req.Header.Set(ClientHeader, UserAgent())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyTransportError(ctx, attemptCtx, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, classifyTransportError(ctx, attemptCtx, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errorFromStatus(resp, body)
	}

	var env apiEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &APIError{Status: resp.StatusCode, Message: "malformed response envelope: " + err.Error()}
	}
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = "request failed"
		}
		return nil, &ApplicationError{Message: msg, Meta: env.Meta}
	}
	return env.Data, nil
}

// classifyTransportError decides the error kind for a failed attempt.
// Exactly one cause is recorded: the caller's own context ending wins over
// the attempt timeout, and only the timeout is retryable.
func classifyTransportError(parent, attempt context.Context, err error) error {
	if parent.Err() != nil {
		return &CancelledError{Cause: parent.Err()}
	}
	if attempt.Err() == context.DeadlineExceeded || errors.Is(err, context.DeadlineExceeded) {
		return &NetworkError{Message: "request timed out", Cause: err, Timeout: true}
	}
	return &NetworkError{Message: "request failed", Cause: err}
}

// errorFromStatus maps a non-2xx response to a typed terminal error, parsing
// the body for a structured message and metadata.
func errorFromStatus(resp *http.Response, body []byte) error {
	msg, meta := parseErrorBody(body)
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		if msg == "" {
			msg = "invalid API key"
		}
		return &AuthError{Message: msg}
	case http.StatusNotFound:
		if msg == "" {
			msg = "resource not found"
		}
		return &NotFoundError{Message: msg, Meta: meta}
	case http.StatusTooManyRequests:
		retryAfter, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		if msg == "" {
			msg = "rate limit exceeded"
		}
		return &RateLimitError{Message: msg, RetryAfter: retryAfter}
	default:
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: msg, Meta: meta}
	}
}

// parseErrorBody extracts the error/message field from a JSON error body;
// any remaining fields are returned as metadata.
func parseErrorBody(body []byte) (string, map[string]any) {
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", nil
	}
	msg, _ := raw["error"].(string)
	if msg == "" {
		msg, _ = raw["message"].(string)
	}
	delete(raw, "error")
	delete(raw, "message")
	if len(raw) == 0 {
		return msg, nil
	}
	return msg, raw
}
