package config

import "time"

// UpstreamConfig controls how the league API is reached and protected.
type UpstreamConfig struct {
	BaseURL       string
	Timeout       time.Duration
	RPS           float64 // 0 disables outbound pacing
	Burst         int
	MaxConcurrent int
	RetryAttempts int
	RetryBackoff  time.Duration
	CacheTTL      time.Duration
}

func loadUpstream() UpstreamConfig {
	return UpstreamConfig{
		BaseURL:       envOrDefault(envNHLBaseURL, defaultNHLBase),
		Timeout:       durationEnvOrDefault(envUpstreamTimeout, defaultUpstreamTimeout),
		RPS:           floatEnvOrDefault(envUpstreamRPS, defaultUpstreamRPS),
		Burst:         intEnvOrDefault(envUpstreamBurst, defaultUpstreamBurst),
		MaxConcurrent: intEnvOrDefault(envUpstreamConcurrent, defaultUpstreamConcurrent),
		RetryAttempts: intEnvOrDefault(envUpstreamRetries, defaultUpstreamRetries),
		RetryBackoff:  durationEnvOrDefault(envUpstreamBackoff, defaultUpstreamBackoff),
		CacheTTL:      durationEnvOrDefault(envCacheTTL, defaultCacheTTL),
	}
}
