package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestRateLimitErrorString(t *testing.T) {
	err := &RateLimitError{
		Provider:   "p",
		StatusCode: 429,
		Message:    "rate limited",
	}
	if got := err.Error(); got == "" || got == "rate limited" {
		t.Fatalf("expected status in error string, got %q", got)
	}

	rl, ok := AsRateLimitError(err)
	if !ok || rl == nil {
		t.Fatalf("expected to unwrap rate limit error")
	}

	noStatus := &RateLimitError{}
	if got := noStatus.Error(); got == "" {
		t.Fatalf("expected fallback message")
	}
}

func TestUpstreamErrorUnwrapsToCause(t *testing.T) {
	cause := &RateLimitError{Provider: "nhl", StatusCode: 429}
	err := fmt.Errorf("fetch: %w", &UpstreamError{Provider: "nhl", Endpoint: "score", StatusCode: 429, Err: cause})

	upErr, ok := AsUpstreamError(err)
	if !ok || upErr.StatusCode != 429 {
		t.Fatalf("expected upstream error with status, got %+v", upErr)
	}
	if _, ok := AsRateLimitError(err); !ok {
		t.Fatalf("expected rate limit cause to be reachable")
	}
	if upErr.Error() == "" {
		t.Fatalf("expected error string")
	}
}

func TestUpstreamErrorTransientOnlyForTransport(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"transport", &UpstreamError{Err: errors.New("connection reset")}, true},
		{"timeout", &UpstreamError{Err: context.DeadlineExceeded}, true},
		{"caller canceled", &UpstreamError{Err: context.Canceled}, false},
		{"5xx", &UpstreamError{StatusCode: http.StatusServiceUnavailable, Err: errors.New("down")}, false},
		{"4xx", &UpstreamError{StatusCode: http.StatusNotFound, Err: errors.New("missing")}, false},
		{"plain", errors.New("boom"), false},
		{"not found", ErrNotFound, false},
	}
	for _, tc := range cases {
		if got := IsTransient(tc.err); got != tc.want {
			t.Fatalf("%s: expected transient=%v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestStatusText(t *testing.T) {
	cases := map[string]error{
		"ok":                  nil,
		"not_found":           fmt.Errorf("wrap: %w", ErrNotFound),
		"Service Unavailable": &UpstreamError{StatusCode: http.StatusServiceUnavailable, Err: errors.New("x")},
		"transport_error":     &UpstreamError{Err: errors.New("x")},
		"malformed_payload":   &UpstreamError{StatusCode: http.StatusOK, Err: ErrMalformedPayload},
	}
	for want, err := range cases {
		if got := StatusText(err); got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
}
