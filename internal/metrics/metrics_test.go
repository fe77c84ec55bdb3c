package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksProviderAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordProviderAttempt("nhl", 10*time.Millisecond, nil)
	rec.RecordProviderAttempt("nhl", 15*time.Millisecond, errors.New("boom"))

	if got := rec.ProviderCalls("nhl"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.ProviderErrors("nhl"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("nhl"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}
	if snap := rec.Snapshot("fixture"); snap != (Snapshot{}) {
		t.Fatalf("expected empty snapshot for unknown provider, got %+v", snap)
	}
}

func TestRecorderTracksRateLimits(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRateLimit("nhl", 5*time.Second)
	rec.RecordRateLimit("nhl", 0)

	if got := rec.RateLimitHits("nhl"); got != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", got)
	}
	if got := rec.LastRetryAfter("nhl"); got != 5*time.Second {
		t.Fatalf("expected last retry-after to be 5s, got %s", got)
	}
}

func TestRecorderTracksCacheLookups(t *testing.T) {
	rec := NewRecorder()
	rec.RecordCacheLookup(false)
	rec.RecordCacheLookup(true)
	rec.RecordCacheLookup(true)

	if got := rec.Cache(); got.Hits != 2 || got.Misses != 1 {
		t.Fatalf("unexpected cache stats %+v", got)
	}
}

func TestRecorderTracksLimiterDecisions(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRateLimitDecision("memory", true, nil)
	rec.RecordRateLimitDecision("memory", false, nil)
	rec.RecordRateLimitDecision("redis", true, errors.New("down"))

	got := rec.Limiter()
	if got.Allowed != 1 || got.Denied != 1 || got.Errors != 1 {
		t.Fatalf("unexpected limiter stats %+v", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordProviderAttempt("nhl", time.Millisecond, nil)
	rec.RecordRateLimit("nhl", time.Second)
	rec.RecordCacheLookup(true)
	rec.RecordRateLimitDecision("memory", true, nil)
	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)

	if rec.Cache() != (CacheStats{}) || rec.Limiter() != (LimiterStats{}) || rec.ProviderCalls("nhl") != 0 {
		t.Fatal("expected zero values from nil recorder")
	}
}
