package providers

import (
	"context"
	"encoding/json"

	"github.com/preston-bernstein/nhl-query-service/internal/domain/games"
)

// StatsProvider defines how upstream league data is fetched.
// Team stats are returned as the upstream JSON document; its shape is owned by the upstream.
type StatsProvider interface {
	FetchTeamStats(ctx context.Context, team string, season int) (json.RawMessage, error)
	FetchGameScore(ctx context.Context, gameID string) (games.Score, error)
}
