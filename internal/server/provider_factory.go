package server

import (
	"log/slog"

	"github.com/preston-bernstein/nhl-query-service/internal/config"
	"github.com/preston-bernstein/nhl-query-service/internal/metrics"
	"github.com/preston-bernstein/nhl-query-service/internal/providers"
)

// providerFactory assembles the provider with shared wrappers (pacing + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.StatsProvider {
	return f.wrap(cfg, selectProvider(cfg, f.logger))
}

// wrap paces and bounds calls to base, then retries transient failures around that.
// Each retry attempt waits for its own token.
func (f providerFactory) wrap(cfg config.Config, base providers.StatsProvider) providers.StatsProvider {
	up := cfg.Upstream
	limited := providers.NewLimitedProvider(base, up.RPS, up.Burst, up.MaxConcurrent, f.logger)
	return providers.NewRetryingProvider(limited, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base), up.RetryAttempts, up.RetryBackoff)
}
