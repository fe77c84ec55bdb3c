package teststubs

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/nhl-query-service/internal/domain/games"
)

// StubProvider is a test double for providers.StatsProvider.
type StubProvider struct {
	Stats json.RawMessage
	Score games.Score
	Err   error
	// Errs supplies the error for each successive call; later calls fall back to Err.
	Errs []error
	// Gate, when non-nil, blocks every call until it is closed or the context ends.
	Gate  chan struct{}
	Calls atomic.Int32

	mu         sync.Mutex
	lastTeam   string
	lastSeason int
	lastGameID string
}

// FetchTeamStats returns the configured stats and error while tracking calls.
func (s *StubProvider) FetchTeamStats(ctx context.Context, team string, season int) (json.RawMessage, error) {
	s.mu.Lock()
	s.lastTeam, s.lastSeason = team, season
	s.mu.Unlock()
	if err := s.call(ctx); err != nil {
		return nil, err
	}
	return s.Stats, nil
}

// FetchGameScore returns the configured score and error while tracking calls.
func (s *StubProvider) FetchGameScore(ctx context.Context, gameID string) (games.Score, error) {
	s.mu.Lock()
	s.lastGameID = gameID
	s.mu.Unlock()
	if err := s.call(ctx); err != nil {
		return games.Score{}, err
	}
	return s.Score, nil
}

// LastTeamStats returns the arguments of the most recent FetchTeamStats call.
func (s *StubProvider) LastTeamStats() (string, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastTeam, s.lastSeason
}

// LastGameID returns the argument of the most recent FetchGameScore call.
func (s *StubProvider) LastGameID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastGameID
}

func (s *StubProvider) call(ctx context.Context) error {
	n := int(s.Calls.Add(1))
	if s.Gate != nil {
		select {
		case <-s.Gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if n <= len(s.Errs) {
		return s.Errs[n-1]
	}
	return s.Err
}
