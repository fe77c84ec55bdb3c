package nhl

import "time"

const (
	providerName       = "nhl"
	defaultBaseURL     = "https://api-web.nhle.com/v1"
	defaultHTTPTimeout = 10 * time.Second
	maxErrorBodyBytes  = 512

	endpointTeamStats = "club-stats-season"
	endpointScore     = "score"
)
