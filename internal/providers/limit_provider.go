package providers

import (
	"context"
	"encoding/json"
	"log/slog"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"github.com/preston-bernstein/nhl-query-service/internal/domain/games"
)

const defaultMaxConcurrent = 8

// limitedProvider paces upstream calls with a token bucket and caps how many run at once.
// Calls block until both a token and a slot are available, or the context ends.
type limitedProvider struct {
	next    StatsProvider
	limiter *rate.Limiter
	slots   *semaphore.Weighted
	logger  *slog.Logger
}

// NewLimitedProvider returns a StatsProvider allowing rps calls per second (with burst)
// and at most maxConcurrent in flight. A non-positive rps disables pacing.
func NewLimitedProvider(next StatsProvider, rps float64, burst int, maxConcurrent int, logger *slog.Logger) StatsProvider {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	if burst <= 0 {
		burst = 1
	}
	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrent
	}
	return &limitedProvider{
		next:    next,
		limiter: rate.NewLimiter(limit, burst),
		slots:   semaphore.NewWeighted(int64(maxConcurrent)),
		logger:  logger,
	}
}

func (p *limitedProvider) FetchTeamStats(ctx context.Context, team string, season int) (json.RawMessage, error) {
	release, err := p.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()
	return p.next.FetchTeamStats(ctx, team, season)
}

func (p *limitedProvider) FetchGameScore(ctx context.Context, gameID string) (games.Score, error) {
	release, err := p.acquire(ctx)
	if err != nil {
		return games.Score{}, err
	}
	defer release()
	return p.next.FetchGameScore(ctx, gameID)
}

func (p *limitedProvider) acquire(ctx context.Context) (func(), error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}
	if err := p.slots.Acquire(ctx, 1); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, "limited", "upstream slot wait canceled", slog.Any("err", err))
		return nil, err
	}
	if err := p.limiter.Wait(ctx); err != nil {
		p.slots.Release(1)
		logWithProvider(ctx, p.logger, slog.LevelWarn, "limited", "upstream pacing wait canceled", slog.Any("err", err))
		return nil, err
	}
	return func() { p.slots.Release(1) }, nil
}
