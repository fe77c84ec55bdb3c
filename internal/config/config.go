package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port        string
	Provider    string
	LogLevel    string
	LogFormat   string
	TrustProxy  bool
	CORSOrigins []string
	AdminToken  string
	Upstream    UpstreamConfig
	RateLimit   RateLimitConfig
	Metrics     MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:        envOrDefault(envPort, defaultPort),
		Provider:    envOrDefault(envProvider, defaultProvider),
		LogLevel:    envOrDefault(envLogLevel, defaultLogLevel),
		LogFormat:   envOrDefault(envLogFormat, defaultLogFormat),
		TrustProxy:  boolEnvOrDefault(envTrustProxy, false),
		CORSOrigins: listEnvOrDefault(envCORSOrigins, []string{"*"}),
		AdminToken:  envOrDefault(envAdminToken, ""),
		Upstream:    loadUpstream(),
		RateLimit:   loadRateLimit(),
		Metrics:     loadMetrics(),
	}
}

// LoadDotEnv populates unset environment variables from the given files.
// Missing files are ignored; variables already set in the environment win.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}
