package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/preston-bernstein/nhl-query-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-query-service/internal/domain/teams"
	"github.com/preston-bernstein/nhl-query-service/internal/logging"
	"github.com/preston-bernstein/nhl-query-service/internal/metrics"
	"github.com/preston-bernstein/nhl-query-service/internal/providers"
	"github.com/preston-bernstein/nhl-query-service/internal/query"
	"github.com/preston-bernstein/nhl-query-service/internal/timeutil"
)

const (
	defaultCacheTTL = time.Hour
	defaultTimeout  = 10 * time.Second

	teamStatsEndpoint = "club-stats-season"
)

// Cache stores upstream payloads for a bounded time.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, payload []byte, ttl time.Duration)
}

// Config tunes caching and upstream deadlines. Zero values use defaults.
type Config struct {
	CacheTTL        time.Duration
	UpstreamTimeout time.Duration
}

// Service resolves queries to identifiers and fetches the matching upstream data.
// Team statistics are cached per team and season; scores are always fetched.
type Service struct {
	provider  providers.StatsProvider
	cache     Cache
	extractor *query.Extractor
	recorder  *metrics.Recorder
	logger    *slog.Logger
	now       func() time.Time
	ttl       time.Duration
	timeout   time.Duration
	inflight  singleflight.Group
}

// Option customizes a Service.
type Option func(*Service)

// WithClock overrides the time source used to derive the season.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithExtractor replaces the default query extractor.
func WithExtractor(e *query.Extractor) Option {
	return func(s *Service) {
		if e != nil {
			s.extractor = e
		}
	}
}

// WithRecorder records cache lookups on rec.
func WithRecorder(rec *metrics.Recorder) Option {
	return func(s *Service) { s.recorder = rec }
}

// WithLogger sets the fallback logger used when the request context has none.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// NewService constructs a Service over a provider and cache.
func NewService(provider providers.StatsProvider, cache Cache, cfg Config, opts ...Option) *Service {
	s := &Service{
		provider:  provider,
		cache:     cache,
		extractor: query.NewExtractor(nil),
		now:       time.Now,
		ttl:       cfg.CacheTTL,
		timeout:   cfg.UpstreamTimeout,
	}
	if s.ttl <= 0 {
		s.ttl = defaultCacheTTL
	}
	if s.timeout <= 0 {
		s.timeout = defaultTimeout
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TeamQuery is a resolved team-stats request.
type TeamQuery struct {
	Team   teams.Team
	Season int
}

// ResolveTeam finds the team named in q and pairs it with the current season.
func (s *Service) ResolveTeam(q string) (TeamQuery, error) {
	id, ok := s.extractor.Extract(q, query.ModeTeam)
	if !ok || !teams.IsValid(id.Value) {
		return TeamQuery{}, ErrInvalidTeam
	}
	team, _ := teams.ByCode(id.Value)
	return TeamQuery{Team: team, Season: timeutil.CurrentSeason(s.now())}, nil
}

// ResolveGame finds the first game id in q.
func (s *Service) ResolveGame(q string) (string, error) {
	id, ok := s.extractor.Extract(q, query.ModeGame)
	if !ok || !games.IsValidID(id.Value) {
		return "", ErrInvalidGameID
	}
	return id.Value, nil
}

// TeamStats resolves q and returns the team's statistics for the current season.
func (s *Service) TeamStats(ctx context.Context, q string) (json.RawMessage, TeamQuery, error) {
	tq, err := s.ResolveTeam(q)
	if err != nil {
		return nil, TeamQuery{}, err
	}
	payload, err := s.FetchTeamStats(ctx, tq.Team.Code, tq.Season)
	return payload, tq, err
}

// GameScore resolves q and returns the score of the game it names.
func (s *Service) GameScore(ctx context.Context, q string) (games.Score, string, error) {
	gameID, err := s.ResolveGame(q)
	if err != nil {
		return games.Score{}, "", err
	}
	score, err := s.FetchGameScore(ctx, gameID)
	return score, gameID, err
}

// CacheKey identifies a team-stats response by endpoint, team and season.
func CacheKey(team string, season int) string {
	return teamStatsEndpoint + "/" + strings.ToUpper(team) + "?season=" + strconv.Itoa(season)
}

// FetchTeamStats returns cached statistics when fresh, otherwise fetches them once
// per key no matter how many callers ask concurrently. Only successful payloads are cached.
func (s *Service) FetchTeamStats(ctx context.Context, team string, season int) (json.RawMessage, error) {
	if !teams.IsValid(team) {
		return nil, ErrInvalidTeam
	}
	if s.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}

	key := CacheKey(team, season)
	logger := logging.FromContext(ctx, s.logger)

	if payload, ok := s.lookup(key); ok {
		logging.Debug(logger, "team stats cache hit", slog.String(logging.FieldCacheKey, key))
		return payload, nil
	}

	// The shared fetch outlives any single caller; each caller still stops waiting when its ctx ends.
	ch := s.inflight.DoChan(key, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()

		// Another flight may have filled the cache while this one waited to start.
		if payload, ok := s.peek(key); ok {
			return payload, nil
		}
		payload, err := s.provider.FetchTeamStats(fetchCtx, strings.ToUpper(team), season)
		if err != nil {
			return nil, err
		}
		if s.cache != nil {
			s.cache.Set(key, payload, s.ttl)
		}
		return payload, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			logging.Warn(logger, "team stats fetch failed",
				slog.String(logging.FieldTeam, team),
				slog.Int(logging.FieldSeason, season),
				slog.String("status", providers.StatusText(res.Err)),
				slog.Any("err", res.Err),
			)
			return nil, fmt.Errorf("team stats %s: %w", key, res.Err)
		}
		return res.Val.(json.RawMessage), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// FetchGameScore fetches the score for a game. Scores change live and are never cached.
func (s *Service) FetchGameScore(ctx context.Context, gameID string) (games.Score, error) {
	if !games.IsValidID(gameID) {
		return games.Score{}, ErrInvalidGameID
	}
	if s.provider == nil {
		return games.Score{}, providers.ErrProviderUnavailable
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	score, err := s.provider.FetchGameScore(fetchCtx, gameID)
	if err != nil {
		logging.Warn(logging.FromContext(ctx, s.logger), "game score fetch failed",
			slog.String(logging.FieldGameID, gameID),
			slog.String("status", providers.StatusText(err)),
			slog.Any("err", err),
		)
		return games.Score{}, fmt.Errorf("game score %s: %w", gameID, err)
	}
	return score, nil
}

func (s *Service) lookup(key string) (json.RawMessage, bool) {
	payload, ok := s.peek(key)
	s.recorder.RecordCacheLookup(ok)
	return payload, ok
}

func (s *Service) peek(key string) (json.RawMessage, bool) {
	if s.cache == nil {
		return nil, false
	}
	payload, ok := s.cache.Get(key)
	if !ok {
		return nil, false
	}
	return json.RawMessage(payload), true
}
