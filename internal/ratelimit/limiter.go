// Package ratelimit enforces per-client fixed-window request quotas.
//
// Each client is tracked against several windows (minute, hour, day by default).
// Windows reset on aligned wall-clock edges rather than sliding. A request is
// admitted only when it fits in every window, and a denied request does not
// consume quota in any of them.
package ratelimit

import (
	"context"
	"errors"
	"time"

	"github.com/preston-bernstein/nhl-query-service/internal/timeutil"
)

// ErrLimited is returned by callers that need to surface a denial as an error.
var ErrLimited = errors.New("rate limit exceeded")

// Window is one fixed-window quota.
type Window struct {
	Name   string
	Length time.Duration
	Limit  int
}

// Decision reports the outcome of an Allow call.
// Limit and Remaining describe the tightest window; RetryAfter is set on denial.
type Decision struct {
	Allowed    bool
	Window     string
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Limiter admits or denies requests for a client key. Implementations are safe for concurrent use.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
	Close()
}

// DefaultWindows builds the minute/hour/day windows. Non-positive limits disable a window.
func DefaultWindows(perMinute, perHour, perDay int) []Window {
	candidates := []Window{
		{Name: "minute", Length: time.Minute, Limit: perMinute},
		{Name: "hour", Length: time.Hour, Limit: perHour},
		{Name: "day", Length: 24 * time.Hour, Limit: perDay},
	}
	out := make([]Window, 0, len(candidates))
	for _, w := range candidates {
		if w.Limit > 0 {
			out = append(out, w)
		}
	}
	return out
}

// decide applies the admission rule to the pre-request counts of each window.
func decide(windows []Window, counts []int, now time.Time) Decision {
	d := Decision{Allowed: true, Remaining: -1}
	for i, w := range windows {
		if counts[i]+1 > w.Limit {
			reset := timeutil.WindowReset(now, w.Length)
			if d.Allowed || reset > d.RetryAfter {
				d.Window = w.Name
				d.Limit = w.Limit
				d.RetryAfter = reset
			}
			d.Allowed = false
			d.Remaining = 0
			continue
		}
		if !d.Allowed {
			continue
		}
		remaining := w.Limit - counts[i] - 1
		if d.Remaining < 0 || remaining < d.Remaining {
			d.Window = w.Name
			d.Limit = w.Limit
			d.Remaining = remaining
		}
	}
	if d.Remaining < 0 {
		d.Remaining = 0
	}
	return d
}

func longestWindow(windows []Window) time.Duration {
	var longest time.Duration
	for _, w := range windows {
		if w.Length > longest {
			longest = w.Length
		}
	}
	return longest
}
