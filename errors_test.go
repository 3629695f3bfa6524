package langsync

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind ErrorKind
	}{
		{"nil", nil, KindUnknown},
		{"config", &ConfigError{Field: "APIKey"}, KindConfig},
		{"auth", &AuthError{Message: "bad key"}, KindAuth},
		{"not found", &NotFoundError{Message: "gone"}, KindNotFound},
		{"rate limit", &RateLimitError{Message: "slow down"}, KindRateLimit},
		{"api", &APIError{Status: 500}, KindAPI},
		{"application", &ApplicationError{Message: "nope"}, KindApplication},
		{"network", &NetworkError{Message: "refused"}, KindNetwork},
		{"timeout", &NetworkError{Message: "timed out", Timeout: true}, KindNetwork},
		{"cancelled", &CancelledError{Cause: context.Canceled}, KindCancelled},
		{"offline", &OfflineError{Message: "no connectivity"}, KindOffline},
		{"foreign", errors.New("not ours"), KindUnknown},
		{"wrapped network", fmt.Errorf("outer: %w", &NetworkError{Message: "refused"}), KindNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Kind(tt.err); got != tt.kind {
				t.Errorf("Kind(%v) = %d, want %d", tt.err, got, tt.kind)
			}
		})
	}
}

func TestIsRetryable(t *testing.T) {
	retryable := []error{
		&NetworkError{Message: "refused"},
		&NetworkError{Message: "timed out", Timeout: true},
	}
	for _, err := range retryable {
		if !IsRetryable(err) {
			t.Errorf("IsRetryable(%v) = false, want true", err)
		}
	}

	terminal := []error{
		nil,
		&AuthError{Message: "bad key"},
		&NotFoundError{Message: "gone"},
		&RateLimitError{Message: "slow down"},
		&APIError{Status: 500},
		&ApplicationError{Message: "nope"},
		&CancelledError{Cause: context.Canceled},
		&OfflineError{Message: "offline"},
	}
	for _, err := range terminal {
		if IsRetryable(err) {
			t.Errorf("IsRetryable(%v) = true, want false", err)
		}
	}
}

func TestIsTimeout(t *testing.T) {
	if !IsTimeout(&NetworkError{Timeout: true}) {
		t.Error("timeout network error should report IsTimeout")
	}
	if IsTimeout(&NetworkError{}) {
		t.Error("generic network error should not report IsTimeout")
	}
	if IsTimeout(&CancelledError{}) {
		t.Error("cancellation should not report IsTimeout")
	}
}

func TestNetworkError_Unwrap(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := &NetworkError{Message: "request failed", Cause: cause}

	if !errors.Is(err, cause) {
		t.Error("NetworkError should unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("error message %q should include the cause", err.Error())
	}
}

func TestRateLimitError_Message(t *testing.T) {
	err := &RateLimitError{Message: "too many requests", RetryAfter: 30}
	if !strings.Contains(err.Error(), "30") {
		t.Errorf("error message %q should include the retry-after hint", err.Error())
	}
}
