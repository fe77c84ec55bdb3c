package providers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/preston-bernstein/nhl-query-service/internal/metrics"
	"github.com/preston-bernstein/nhl-query-service/internal/teststubs"
)

func transportErr() error {
	return &UpstreamError{Provider: "stub", Endpoint: "club-stats-season", Err: errors.New("connection reset")}
}

func TestRetryingProviderRetriesTransportFailures(t *testing.T) {
	stub := &teststubs.StubProvider{
		Stats: json.RawMessage(`{"ok":true}`),
		Errs:  []error{transportErr(), transportErr()},
	}
	rec := metrics.NewRecorder()
	rp := NewRetryingProvider(stub, slog.Default(), rec, "stub", 3, time.Millisecond)

	payload, err := rp.FetchTeamStats(context.Background(), "TOR", 2024)
	if err != nil {
		t.Fatalf("expected success, got error %v", err)
	}
	if string(payload) != `{"ok":true}` {
		t.Fatalf("unexpected payload %s", payload)
	}
	if stub.Calls.Load() != 3 {
		t.Fatalf("expected 3 attempts, got %d", stub.Calls.Load())
	}
	if rec.ProviderCalls("stub") != 3 || rec.ProviderErrors("stub") != 2 {
		t.Fatalf("unexpected metrics %+v", rec.Snapshot("stub"))
	}
}

func TestRetryingProviderStopsAfterMaxAttempts(t *testing.T) {
	stub := &teststubs.StubProvider{Err: transportErr()}
	rp := NewRetryingProvider(stub, nil, metrics.NewRecorder(), "stub", 2, time.Millisecond)

	if _, err := rp.FetchGameScore(context.Background(), "2023020011"); err == nil {
		t.Fatal("expected error after retries")
	}
	if stub.Calls.Load() != 2 {
		t.Fatalf("expected 2 attempts, got %d", stub.Calls.Load())
	}
}

func TestRetryingProviderNeverRetriesStatusErrors(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusNotFound, http.StatusTooManyRequests, http.StatusServiceUnavailable} {
		upErr := &UpstreamError{Provider: "stub", StatusCode: status, Err: errors.New("status")}
		stub := &teststubs.StubProvider{Err: upErr}
		rp := NewRetryingProvider(stub, nil, nil, "stub", 3, time.Millisecond)

		_, err := rp.FetchTeamStats(context.Background(), "TOR", 2024)
		if !errors.Is(err, upErr) {
			t.Fatalf("status %d: expected original error, got %v", status, err)
		}
		if stub.Calls.Load() != 1 {
			t.Fatalf("status %d: expected a single attempt, got %d", status, stub.Calls.Load())
		}
	}
}

func TestRetryingProviderDoesNotRetryNotFound(t *testing.T) {
	stub := &teststubs.StubProvider{Err: ErrNotFound}
	rp := NewRetryingProvider(stub, nil, nil, "stub", 3, time.Millisecond)
	if _, err := rp.FetchGameScore(context.Background(), "2023020011"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if stub.Calls.Load() != 1 {
		t.Fatalf("expected a single attempt, got %d", stub.Calls.Load())
	}
}

func TestRetryingProviderRecordsRateLimits(t *testing.T) {
	rl := &RateLimitError{Provider: "stub", StatusCode: http.StatusTooManyRequests, RetryAfter: 5 * time.Second}
	stub := &teststubs.StubProvider{Err: &UpstreamError{Provider: "stub", StatusCode: http.StatusTooManyRequests, Err: rl}}
	rec := metrics.NewRecorder()
	rp := NewRetryingProvider(stub, nil, rec, "stub", 3, time.Millisecond)

	_, _ = rp.FetchTeamStats(context.Background(), "TOR", 2024)
	if rec.RateLimitHits("stub") != 1 || rec.LastRetryAfter("stub") != 5*time.Second {
		t.Fatalf("expected rate limit recorded, got %+v", rec.Snapshot("stub"))
	}
}

func TestRetryingProviderRespectsContextCancel(t *testing.T) {
	stub := &teststubs.StubProvider{Err: transportErr()}
	rp := NewRetryingProvider(stub, nil, metrics.NewRecorder(), "stub", 3, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := rp.FetchTeamStats(ctx, "TOR", 2024); err == nil {
		t.Fatal("expected context error")
	}
}

func TestRetryingProviderUsesCustomBackoff(t *testing.T) {
	stub := &teststubs.StubProvider{Errs: []error{transportErr()}, Stats: json.RawMessage(`{}`)}
	rp := NewRetryingProvider(stub, nil, metrics.NewRecorder(), "stub", 2, time.Hour).(*retryingProvider)

	calls := 0
	rp.backoffFn = func() backoff.BackOff {
		calls++
		return &backoff.ZeroBackOff{}
	}

	if _, err := rp.FetchTeamStats(context.Background(), "TOR", 2024); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected custom backoff to be used, got %d", calls)
	}
}

func TestRetryingProviderDefaults(t *testing.T) {
	rp := NewRetryingProvider(&teststubs.StubProvider{}, nil, nil, "stub", 0, 0).(*retryingProvider)
	if rp.maxAttempts != defaultRetryAttempts {
		t.Fatalf("expected default attempts, got %d", rp.maxAttempts)
	}
}

func TestRetryingProviderNilInner(t *testing.T) {
	rp := NewRetryingProvider(nil, nil, nil, "stub", 1, time.Millisecond)
	if _, err := rp.FetchTeamStats(context.Background(), "TOR", 2024); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}
