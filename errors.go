package langsync

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every error the SDK produces. The retry decision in
// the request engine is a pure function of the kind, never of the underlying
// transport error's concrete type.
type ErrorKind int

const (
	// KindUnknown is the zero kind, reported for errors the SDK did not produce.
	KindUnknown ErrorKind = iota
	// KindConfig indicates invalid constructor configuration.
	KindConfig
	// KindAuth indicates the API rejected the credentials (HTTP 401).
	KindAuth
	// KindNotFound indicates a missing resource (HTTP 404).
	KindNotFound
	// KindRateLimit indicates the API throttled the request (HTTP 429).
	KindRateLimit
	// KindAPI indicates any other non-2xx HTTP response.
	KindAPI
	// KindApplication indicates a 2xx response whose envelope reported failure.
	KindApplication
	// KindNetwork indicates a transport failure, including timeouts.
	KindNetwork
	// KindCancelled indicates the caller's own context ended the request.
	KindCancelled
	// KindOffline indicates no cached data and no network connectivity.
	KindOffline
)

// ConfigError indicates missing or invalid client configuration.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: %s: %s", e.Field, e.Message)
}

// AuthError indicates the API rejected the provided API key.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication error: %s", e.Message)
}

// NotFoundError indicates the requested resource does not exist.
// Meta carries any extra fields the API returned alongside the error.
type NotFoundError struct {
	Message string
	Meta    map[string]any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found: %s", e.Message)
}

// RateLimitError indicates the API throttled the request. RetryAfter is the
// parsed Retry-After hint in seconds (0 when the header was absent); the SDK
// does not wait on the caller's behalf.
type RateLimitError struct {
	Message    string
	RetryAfter int
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited: %s (retry after %ds)", e.Message, e.RetryAfter)
	}
	return fmt.Sprintf("rate limited: %s", e.Message)
}

// APIError indicates a non-2xx response not covered by a more specific type.
type APIError struct {
	Status  int
	Message string
	Meta    map[string]any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// ApplicationError indicates a 2xx response whose envelope carried
// success=false. It is terminal; the server-provided message is preserved.
type ApplicationError struct {
	Message string
	Meta    map[string]any
}

func (e *ApplicationError) Error() string {
	return fmt.Sprintf("application error: %s", e.Message)
}

// NetworkError indicates a transport-level failure. Timeout distinguishes the
// per-attempt timeout from generic connectivity failures; both are retryable.
type NetworkError struct {
	Message string
	Cause   error
	Timeout bool
}

func (e *NetworkError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("network error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("network error: %s", e.Message)
}

func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// CancelledError indicates the caller's own context was cancelled or expired
// while the request was in flight. Never retried.
type CancelledError struct {
	Cause error
}

func (e *CancelledError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("request cancelled: %v", e.Cause)
	}
	return "request cancelled"
}

func (e *CancelledError) Unwrap() error {
	return e.Cause
}

// OfflineError indicates a loader had no cached data and no connectivity.
// Distinct from NetworkError so callers can show an offline UX state.
type OfflineError struct {
	Message string
}

func (e *OfflineError) Error() string {
	return fmt.Sprintf("offline: %s", e.Message)
}

// Kind returns the ErrorKind for err, unwrapping as needed.
func Kind(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case isAs[*ConfigError](err):
		return KindConfig
	case isAs[*AuthError](err):
		return KindAuth
	case isAs[*NotFoundError](err):
		return KindNotFound
	case isAs[*RateLimitError](err):
		return KindRateLimit
	case isAs[*APIError](err):
		return KindAPI
	case isAs[*ApplicationError](err):
		return KindApplication
	case isAs[*CancelledError](err):
		return KindCancelled
	case isAs[*OfflineError](err):
		return KindOffline
	case isAs[*NetworkError](err):
		return KindNetwork
	}
	return KindUnknown
}

// IsRetryable reports whether the request engine may retry after err.
// Only network failures (timeouts included) qualify; HTTP errors,
// application errors, and caller cancellation are terminal.
func IsRetryable(err error) bool {
	return Kind(err) == KindNetwork
}

// IsTimeout reports whether err is a network error caused by the
// per-attempt timeout rather than a generic transport failure.
func IsTimeout(err error) bool {
	var nerr *NetworkError
	return errors.As(err, &nerr) && nerr.Timeout
}

func isAs[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}
