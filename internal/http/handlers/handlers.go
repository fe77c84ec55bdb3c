package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nhl-query-service/internal/app/stats"
	"github.com/preston-bernstein/nhl-query-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-query-service/internal/logging"
	"github.com/preston-bernstein/nhl-query-service/internal/providers"
)

const (
	msgInvalidTeam     = "Invalid team name"
	msgTeamStatsFailed = "Failed to retrieve team statistics"
	msgScoreFailed     = "Unable to retrieve the score."
)

// StatsService answers team-stats and score queries.
type StatsService interface {
	TeamStats(ctx context.Context, q string) (json.RawMessage, stats.TeamQuery, error)
	GameScore(ctx context.Context, q string) (games.Score, string, error)
}

// Handler wires the query endpoints to the stats service.
type Handler struct {
	svc    StatsService
	logger *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(svc StatsService, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"}, h.logger)
}

// TeamStats resolves a team from the query and returns its current-season statistics
// exactly as the upstream sent them.
func (h *Handler) TeamStats(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)

	req, err := decodeQuery(w, r)
	if err != nil {
		logging.Warn(logger, "team stats bad request", slog.Any("err", err))
		writeError(w, r, http.StatusBadRequest, msgInvalidTeam, logger)
		return
	}

	payload, tq, err := h.svc.TeamStats(r.Context(), req.Query)
	switch {
	case err == nil:
		logging.Info(logger, "team stats served",
			slog.String(logging.FieldTeam, tq.Team.Code),
			slog.Int(logging.FieldSeason, tq.Season),
		)
		writeRaw(w, http.StatusOK, payload, logger)
	case errors.Is(err, stats.ErrInvalidTeam):
		writeError(w, r, http.StatusBadRequest, msgInvalidTeam, logger)
	default:
		logging.Error(logger, "team stats failed", err,
			slog.String(logging.FieldTeam, tq.Team.Code),
			slog.String("status", providers.StatusText(err)),
		)
		writeError(w, r, http.StatusInternalServerError, msgTeamStatsFailed, logger)
	}
}

// GetScore finds a game id in the query and returns its live score and state.
func (h *Handler) GetScore(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)

	req, err := decodeQuery(w, r)
	if err != nil {
		logging.Warn(logger, "score bad request", slog.Any("err", err))
		writeError(w, r, http.StatusBadRequest, msgScoreFailed, logger)
		return
	}

	score, gameID, err := h.svc.GameScore(r.Context(), req.Query)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, score, logger)
	case errors.Is(err, stats.ErrInvalidGameID):
		writeError(w, r, http.StatusBadRequest, msgScoreFailed, logger)
	case errors.Is(err, providers.ErrNotFound):
		logging.Info(logger, "score not available", slog.String(logging.FieldGameID, gameID))
		writeError(w, r, http.StatusNotFound, msgScoreFailed, logger)
	default:
		logging.Error(logger, "score lookup failed", err,
			slog.String(logging.FieldGameID, gameID),
			slog.String("status", providers.StatusText(err)),
		)
		writeError(w, r, http.StatusInternalServerError, msgScoreFailed, logger)
	}
}

// NotFound replies to unknown routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", loggerFromContext(r, h.logger))
}

// MethodNotAllowed replies to known routes hit with the wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", loggerFromContext(r, h.logger))
}
