package middleware

import (
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/preston-bernstein/nhl-query-service/internal/http/requestutil"
	"github.com/preston-bernstein/nhl-query-service/internal/logging"
	"github.com/preston-bernstein/nhl-query-service/internal/metrics"
	"github.com/preston-bernstein/nhl-query-service/internal/ratelimit"
)

const (
	headerRetryAfter = "Retry-After"
	headerLimit      = "X-RateLimit-Limit"
	headerRemaining  = "X-RateLimit-Remaining"
)

// RateLimit admits requests per client address. Denied requests get 429 with
// Retry-After in whole seconds. When the limiter backend fails the request is
// let through and the failure is logged.
func RateLimit(limiter ratelimit.Limiter, backend string, recorder *metrics.Recorder, fallback *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := ClientIPFromContext(r.Context())
			if key == "" {
				key = requestutil.ClientIP(r, false)
			}
			logger := logging.FromContext(r.Context(), fallback)

			decision, err := limiter.Allow(r.Context(), key)
			recorder.RecordRateLimitDecision(backend, decision.Allowed, err)
			if err != nil {
				logging.Warn(logger, "rate limiter unavailable, admitting request",
					slog.String("backend", backend),
					slog.Any("err", err),
				)
				next.ServeHTTP(w, r)
				return
			}

			if decision.Limit > 0 {
				w.Header().Set(headerLimit, strconv.Itoa(decision.Limit))
				w.Header().Set(headerRemaining, strconv.Itoa(decision.Remaining))
			}
			if decision.Allowed {
				next.ServeHTTP(w, r)
				return
			}

			retry := retryAfterSeconds(decision.RetryAfter)
			w.Header().Set(headerRetryAfter, strconv.Itoa(retry))
			logging.Info(logger, "rate limit exceeded",
				slog.String("window", decision.Window),
				slog.Int("retry_after_s", retry),
			)
			writeLimited(w, logger)
		})
	}
}

func retryAfterSeconds(d time.Duration) int {
	secs := int(math.Ceil(d.Seconds()))
	if secs < 1 {
		return 1
	}
	return secs
}

func writeLimited(w http.ResponseWriter, logger *slog.Logger) {
	body := map[string]string{"error": ratelimit.ErrLimited.Error()}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}
