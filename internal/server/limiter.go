package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/preston-bernstein/nhl-query-service/internal/config"
	"github.com/preston-bernstein/nhl-query-service/internal/ratelimit"
)

// redisPingTimeout bounds the startup reachability check; a var for tests.
var redisPingTimeout = 2 * time.Second

// redisLimiter owns the client behind a RedisLimiter so shutdown can release it.
type redisLimiter struct {
	*ratelimit.RedisLimiter
	client *redis.Client
}

func (l redisLimiter) Close() {
	_ = l.client.Close()
}

// buildLimiter picks the inbound limiter backend. An unreachable Redis at startup
// falls back to the in-process limiter. It returns the backend actually used.
func buildLimiter(cfg config.RateLimitConfig, logger *slog.Logger) (ratelimit.Limiter, string) {
	windows := ratelimit.DefaultWindows(cfg.PerMinute, cfg.PerHour, cfg.PerDay)

	if cfg.Backend == config.BackendRedis {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
		err := client.Ping(ctx).Err()
		cancel()
		if err == nil {
			if logger != nil {
				logger.Info("rate limiter using redis", slog.String("addr", cfg.Redis.Addr))
			}
			return redisLimiter{RedisLimiter: ratelimit.NewRedisLimiter(client, windows, nil), client: client}, config.BackendRedis
		}
		_ = client.Close()
		if logger != nil {
			logger.Warn("redis unreachable, falling back to memory rate limiter",
				slog.String("addr", cfg.Redis.Addr),
				slog.Any("err", err),
			)
		}
	}

	return ratelimit.NewMemoryLimiter(windows), config.BackendMemory
}

// janitorStarter is implemented by limiters that hold per-client state in process.
type janitorStarter interface {
	StartJanitor(ctx context.Context, every time.Duration)
}
