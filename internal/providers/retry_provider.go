package providers

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/preston-bernstein/nhl-query-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-query-service/internal/logging"
	"github.com/preston-bernstein/nhl-query-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
	maxBackoff           = 2 * time.Second
)

type backoffFunc func() backoff.BackOff

// retryingProvider wraps a StatsProvider with bounded retries for transport failures.
// Upstream status errors (4xx and 5xx) are returned on the first attempt.
type retryingProvider struct {
	inner       StatsProvider
	logger      *slog.Logger
	metrics     *metrics.Recorder
	name        string
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/backoff are <= 0, defaults are used.
// Every attempt is recorded on the recorder under name.
func NewRetryingProvider(inner StatsProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, initial time.Duration) StatsProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initial <= 0 {
		initial = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		metrics:     recorder,
		name:        name,
		maxAttempts: maxAttempts,
		backoffFn: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = initial
			b.MaxInterval = maxBackoff
			b.MaxElapsedTime = 0
			return b
		},
	}
}

func (r *retryingProvider) FetchTeamStats(ctx context.Context, team string, season int) (json.RawMessage, error) {
	var payload json.RawMessage
	err := r.do(ctx, "team_stats", func(ctx context.Context) error {
		var err error
		payload, err = r.inner.FetchTeamStats(ctx, team, season)
		return err
	})
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (r *retryingProvider) FetchGameScore(ctx context.Context, gameID string) (games.Score, error) {
	var score games.Score
	err := r.do(ctx, "game_score", func(ctx context.Context) error {
		var err error
		score, err = r.inner.FetchGameScore(ctx, gameID)
		return err
	})
	if err != nil {
		return games.Score{}, err
	}
	return score, nil
}

func (r *retryingProvider) do(ctx context.Context, op string, fn func(context.Context) error) error {
	if r.inner == nil {
		return ErrProviderUnavailable
	}
	logger := logging.FromContext(ctx, r.logger)
	attempt := 0

	operation := func() error {
		attempt++
		start := time.Now()
		err := fn(ctx)
		r.metrics.RecordProviderAttempt(r.name, time.Since(start), err)
		if rl, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(r.name, rl.RetryAfter)
		}
		if err == nil {
			return nil
		}
		if !IsTransient(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, delay time.Duration) {
		logWithProvider(ctx, logger, slog.LevelWarn, r.name, "provider fetch retry",
			slog.String("op", op),
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", r.maxAttempts),
			slog.Duration("delay", delay),
			slog.Any("err", err),
		)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(r.backoffFn(), uint64(r.maxAttempts-1)), ctx)
	err := backoff.RetryNotify(operation, policy, notify)
	if err != nil {
		logWithProvider(ctx, logger, slog.LevelWarn, r.name, "provider fetch failed",
			slog.String("op", op),
			slog.Int("attempts", attempt),
			slog.Any("err", err),
		)
	}
	return err
}
