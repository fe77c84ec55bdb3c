package testutil

import (
	"context"
	"encoding/json"

	"github.com/preston-bernstein/nhl-query-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-query-service/internal/providers"
)

// StaticProvider returns fixed payloads with no error.
type StaticProvider struct {
	Stats json.RawMessage
	Score games.Score
}

func (p StaticProvider) FetchTeamStats(ctx context.Context, team string, season int) (json.RawMessage, error) {
	return p.Stats, nil
}

func (p StaticProvider) FetchGameScore(ctx context.Context, gameID string) (games.Score, error) {
	return p.Score, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchTeamStats(ctx context.Context, team string, season int) (json.RawMessage, error) {
	return nil, p.Err
}

func (p ErrProvider) FetchGameScore(ctx context.Context, gameID string) (games.Score, error) {
	return games.Score{}, p.Err
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchTeamStats(ctx context.Context, team string, season int) (json.RawMessage, error) {
	return nil, providers.ErrProviderUnavailable
}

func (UnavailableProvider) FetchGameScore(ctx context.Context, gameID string) (games.Score, error) {
	return games.Score{}, providers.ErrProviderUnavailable
}
