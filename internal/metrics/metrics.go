package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

// Recorder keeps in-memory counters for upstream calls, cache lookups and
// rate-limit decisions, and mirrors them to OpenTelemetry when configured.
// A nil Recorder is valid and records nothing.
type Recorder struct {
	mu        sync.Mutex
	providers map[string]*providerStats
	cache     CacheStats
	limiter   LimiterStats
	otel      *otelInstruments
}

// CacheStats counts response cache lookups.
type CacheStats struct {
	Hits   int
	Misses int
}

// LimiterStats counts inbound rate-limit decisions.
type LimiterStats struct {
	Allowed int
	Denied  int
	Errors  int
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		providers: make(map[string]*providerStats),
		otel:      otel,
	}
}

// RecordProviderAttempt counts one upstream attempt and stores its latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	r.otel.recordProviderAttempt(provider, duration, err)
}

// RecordRateLimit tracks an upstream 429 and the Retry-After it carried.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	r.otel.recordRateLimit(provider, retryAfter)
}

// RecordCacheLookup counts a response cache hit or miss.
func (r *Recorder) RecordCacheLookup(hit bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	if hit {
		r.cache.Hits++
	} else {
		r.cache.Misses++
	}
	r.mu.Unlock()

	r.otel.recordCacheLookup(hit)
}

// RecordRateLimitDecision counts an inbound limiter decision. A non-nil err
// means the backend failed and the request was let through.
func (r *Recorder) RecordRateLimitDecision(backend string, allowed bool, err error) {
	if r == nil {
		return
	}

	outcome := OutcomeAllowed
	r.mu.Lock()
	switch {
	case err != nil:
		r.limiter.Errors++
		outcome = OutcomeError
	case allowed:
		r.limiter.Allowed++
	default:
		r.limiter.Denied++
		outcome = OutcomeDenied
	}
	r.mu.Unlock()

	r.otel.recordLimiterDecision(backend, outcome)
}

// RecordHTTPRequest tracks inbound request counts and latency.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of upstream 429s seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// LastRetryAfter returns the most recent upstream Retry-After for a provider.
func (r *Recorder) LastRetryAfter(provider string) time.Duration {
	return r.Snapshot(provider).LastRetryAfter
}

// LastCallLatency returns the latency of the most recent provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot is a copy of the stats recorded for one provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.providers[provider]
	if !ok {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// Cache returns the cache lookup counters.
func (r *Recorder) Cache() CacheStats {
	if r == nil {
		return CacheStats{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cache
}

// Limiter returns the rate-limit decision counters.
func (r *Recorder) Limiter() LimiterStats {
	if r == nil {
		return LimiterStats{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.limiter
}

// ensureStats must be called with r.mu held.
func (r *Recorder) ensureStats(provider string) *providerStats {
	stats, ok := r.providers[provider]
	if !ok {
		stats = &providerStats{}
		r.providers[provider] = stats
	}
	return stats
}
