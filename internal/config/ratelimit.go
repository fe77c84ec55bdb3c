package config

import (
	"strings"
	"time"
)

// RateLimitConfig sets the per-client inbound windows and where counters live.
type RateLimitConfig struct {
	PerMinute       int
	PerHour         int
	PerDay          int
	Backend         string
	JanitorInterval time.Duration
	Redis           RedisConfig
}

// RedisConfig addresses the shared counter store used by the redis backend.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func loadRateLimit() RateLimitConfig {
	backend := strings.ToLower(envOrDefault(envRateLimitBackend, defaultRateLimitBackend))
	if backend != BackendRedis {
		backend = BackendMemory
	}
	return RateLimitConfig{
		PerMinute:       intEnvOrDefault(envRateLimitMinute, defaultRateLimitMinute),
		PerHour:         intEnvOrDefault(envRateLimitHour, defaultRateLimitHour),
		PerDay:          intEnvOrDefault(envRateLimitDay, defaultRateLimitDay),
		Backend:         backend,
		JanitorInterval: durationEnvOrDefault(envRateLimitJanitor, defaultJanitorInterval),
		Redis: RedisConfig{
			Addr:     envOrDefault(envRedisAddr, defaultRedisAddr),
			Password: envOrDefault(envRedisPassword, ""),
			DB:       intEnvOrDefault(envRedisDB, 0),
		},
	}
}
