package server

import (
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nhl-query-service/internal/config"
	"github.com/preston-bernstein/nhl-query-service/internal/providers"
	"github.com/preston-bernstein/nhl-query-service/internal/providers/fixture"
	"github.com/preston-bernstein/nhl-query-service/internal/providers/nhl"
)

const (
	providerNHL     = "nhl"
	providerFixture = "fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.StatsProvider {
	switch normalizeProviderName(cfg.Provider, nil) {
	case providerFixture:
		return fixture.New()
	case providerNHL, "provider":
		return newNHLClient(cfg)
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to nhl", slog.String("provider", cfg.Provider))
		}
		return newNHLClient(cfg)
	}
}

func newNHLClient(cfg config.Config) *nhl.Client {
	var client *http.Client
	if cfg.Upstream.Timeout > 0 {
		client = &http.Client{Timeout: cfg.Upstream.Timeout}
	}
	return nhl.NewClient(nhl.Config{
		BaseURL:    cfg.Upstream.BaseURL,
		HTTPClient: client,
	})
}
