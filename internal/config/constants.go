package config

import "time"

const (
	envPort        = "PORT"
	envProvider    = "PROVIDER"
	envLogLevel    = "LOG_LEVEL"
	envLogFormat   = "LOG_FORMAT"
	envTrustProxy  = "TRUST_PROXY"
	envCORSOrigins = "CORS_ALLOWED_ORIGINS"
	envAdminToken  = "ADMIN_TOKEN"

	envNHLBaseURL         = "NHL_BASE_URL"
	envUpstreamTimeout    = "UPSTREAM_TIMEOUT"
	envUpstreamRPS        = "UPSTREAM_RPS"
	envUpstreamBurst      = "UPSTREAM_BURST"
	envUpstreamConcurrent = "UPSTREAM_MAX_CONCURRENT"
	envUpstreamRetries    = "UPSTREAM_RETRY_ATTEMPTS"
	envUpstreamBackoff    = "UPSTREAM_RETRY_BACKOFF"
	envCacheTTL           = "CACHE_TTL"
	envRateLimitMinute    = "RATE_LIMIT_PER_MINUTE"
	envRateLimitHour      = "RATE_LIMIT_PER_HOUR"
	envRateLimitDay       = "RATE_LIMIT_PER_DAY"
	envRateLimitBackend   = "RATE_LIMIT_BACKEND"
	envRateLimitJanitor   = "RATE_LIMIT_JANITOR_INTERVAL"
	envRedisAddr          = "REDIS_ADDR"
	envRedisPassword      = "REDIS_PASSWORD"
	envRedisDB            = "REDIS_DB"

	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort      = "4000"
	defaultProvider  = "nhl"
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
	defaultNHLBase   = "https://api-web.nhle.com/v1"

	defaultUpstreamTimeout    = 10 * time.Second
	defaultUpstreamRPS        = 5.0
	defaultUpstreamBurst      = 5
	defaultUpstreamConcurrent = 8
	defaultUpstreamRetries    = 3
	defaultUpstreamBackoff    = 200 * time.Millisecond

	// Upstream statistics change at most a few times per day.
	defaultCacheTTL = time.Hour

	defaultRateLimitMinute  = 10
	defaultRateLimitHour    = 50
	defaultRateLimitDay     = 200
	defaultRateLimitBackend = BackendMemory
	defaultJanitorInterval  = time.Minute
	defaultRedisAddr        = "localhost:6379"

	defaultMetricsPort = "9090"
	defaultServiceName = "nhl-query-service"
)

// Rate limiter backends.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)
