package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	// ErrProviderUnavailable is returned when no upstream provider is configured.
	ErrProviderUnavailable = errors.New("provider unavailable")
	// ErrNotFound marks an upstream payload that lacks the requested data.
	ErrNotFound = errors.New("not found")
	// ErrMalformedPayload marks a 200 response whose body could not be used.
	ErrMalformedPayload = errors.New("malformed upstream payload")
)

// UpstreamError describes a failed upstream call: a transport failure (StatusCode 0)
// or a response that carried a status (non-200, or 200 with an unusable body).
type UpstreamError struct {
	Provider   string
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s %s: status %d: %v", e.Provider, e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Provider, e.Endpoint, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Transient reports whether the failure happened in transport and may succeed on retry.
// Upstream responses, including 5xx, are never transient; neither is caller cancellation.
func (e *UpstreamError) Transient() bool {
	if e.StatusCode != 0 {
		return false
	}
	return !errors.Is(e.Err, context.Canceled)
}

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Remaining  string
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// AsUpstreamError attempts to unwrap an error into an UpstreamError.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr, true
	}
	return nil, false
}

// IsTransient reports whether err is an upstream transport failure worth retrying.
func IsTransient(err error) bool {
	upErr, ok := AsUpstreamError(err)
	return ok && upErr.Transient()
}

// StatusText is a short label for err suitable for logs and metric attributes.
func StatusText(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrMalformedPayload):
		return "malformed_payload"
	}
	if upErr, ok := AsUpstreamError(err); ok && upErr.StatusCode > 0 {
		return http.StatusText(upErr.StatusCode)
	}
	return "transport_error"
}
