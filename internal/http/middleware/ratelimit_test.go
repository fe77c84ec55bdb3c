package middleware

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/preston-bernstein/nhl-query-service/internal/metrics"
	"github.com/preston-bernstein/nhl-query-service/internal/ratelimit"
	"github.com/preston-bernstein/nhl-query-service/internal/testutil"
)

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (ratelimit.Decision, error) {
	return ratelimit.Decision{}, errors.New("redis down")
}

func (failingLimiter) Close() {}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimitDeniesAfterMinuteQuota(t *testing.T) {
	start := time.Date(2025, 1, 15, 12, 0, 5, 0, time.UTC)
	limiter := ratelimit.NewMemoryLimiter(ratelimit.DefaultWindows(2, 50, 200), ratelimit.WithClock(testutil.NowAt(start)))
	rec := metrics.NewRecorder()
	handler := RateLimit(limiter, "memory", rec, nil)(okHandler())

	for i := 0; i < 2; i++ {
		rr := testutil.PostJSON(handler, "/team-stats", `{}`, "203.0.113.7:4000")
		testutil.AssertStatus(t, rr, http.StatusOK)
		if rr.Header().Get("X-RateLimit-Limit") != "2" {
			t.Fatalf("expected limit header, got %q", rr.Header().Get("X-RateLimit-Limit"))
		}
	}

	rr := testutil.PostJSON(handler, "/team-stats", `{}`, "203.0.113.7:5000")
	rawBody := rr.Body.String()
	testutil.AssertError(t, rr, http.StatusTooManyRequests, "rate limit exceeded")
	if got := rr.Header().Get("Retry-After"); got != "55" {
		t.Fatalf("expected Retry-After 55, got %q", got)
	}
	if got := rawBody; got != "{\"error\":\"rate limit exceeded\"}\n" {
		t.Fatalf("expected bare error body, got %q", got)
	}
	if rr.Header().Get("X-RateLimit-Remaining") != "0" {
		t.Fatalf("expected zero remaining, got %q", rr.Header().Get("X-RateLimit-Remaining"))
	}

	other := testutil.PostJSON(handler, "/team-stats", `{}`, "203.0.113.8:4000")
	testutil.AssertStatus(t, other, http.StatusOK)

	if got := rec.Limiter(); got.Allowed != 3 || got.Denied != 1 {
		t.Fatalf("unexpected limiter metrics %+v", got)
	}
}

func TestRateLimitFailsOpenOnBackendError(t *testing.T) {
	rec := metrics.NewRecorder()
	logger, buf := testutil.NewBufferLogger()
	handler := RateLimit(failingLimiter{}, "redis", rec, logger)(okHandler())

	rr := testutil.PostJSON(handler, "/get_score", `{}`, "")
	testutil.AssertStatus(t, rr, http.StatusOK)
	if rec.Limiter().Errors != 1 {
		t.Fatalf("expected limiter error recorded")
	}
	if buf.Len() == 0 {
		t.Fatalf("expected warning logged")
	}
}

func TestRateLimitNilLimiterPassesThrough(t *testing.T) {
	handler := RateLimit(nil, "memory", nil, nil)(okHandler())
	testutil.AssertStatus(t, testutil.PostJSON(handler, "/team-stats", `{}`, ""), http.StatusOK)
}

func TestRetryAfterSeconds(t *testing.T) {
	cases := map[time.Duration]int{
		0:                       1,
		300 * time.Millisecond:  1,
		1500 * time.Millisecond: 2,
		55 * time.Second:        55,
	}
	for in, want := range cases {
		if got := retryAfterSeconds(in); got != want {
			t.Fatalf("retryAfterSeconds(%s) = %d, want %d", in, got, want)
		}
	}
}
