package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/preston-bernstein/nhl-query-service/internal/http/handlers"
	"github.com/preston-bernstein/nhl-query-service/internal/http/middleware"
	"github.com/preston-bernstein/nhl-query-service/internal/metrics"
	"github.com/preston-bernstein/nhl-query-service/internal/ratelimit"
)

// RouterConfig carries everything the router mounts.
type RouterConfig struct {
	Handler        *handlers.Handler
	Admin          *handlers.AdminHandler // nil leaves the admin routes unmounted
	Limiter        ratelimit.Limiter
	LimiterBackend string
	Recorder       *metrics.Recorder
	Logger         *slog.Logger
	TrustProxy     bool
	CORSOrigins    []string
}

// NewRouter registers the HTTP routes. Query endpoints sit behind the per-client rate limiter;
// health and admin routes do not.
func NewRouter(cfg RouterConfig) nethttp.Handler {
	r := chi.NewRouter()

	r.Use(func(next nethttp.Handler) nethttp.Handler {
		return middleware.LoggingMiddleware(cfg.Logger, cfg.Recorder, cfg.TrustProxy, next)
	})
	r.Use(cors.Handler(corsOptions(cfg.CORSOrigins)))

	h := cfg.Handler
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Get("/health", h.Health)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.Limiter, cfg.LimiterBackend, cfg.Recorder, cfg.Logger))
		r.Post("/team-stats", h.TeamStats)
		r.Post("/get_score", h.GetScore)
	})

	if cfg.Admin != nil {
		r.Post("/admin/cache/purge", cfg.Admin.PurgeCache)
	}

	return r
}

func corsOptions(origins []string) cors.Options {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodPost, nethttp.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"Retry-After", "X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		MaxAge:         300,
	}
}
