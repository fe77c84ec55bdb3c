package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"github.com/preston-bernstein/nhl-query-service/internal/http/middleware"
	"github.com/preston-bernstein/nhl-query-service/internal/logging"
)

// Purger drops every cached response.
type Purger interface {
	Purge() int
}

// AdminHandler exposes operator endpoints guarded by a bearer token.
type AdminHandler struct {
	cache  Purger
	token  string
	logger *slog.Logger
}

// NewAdminHandler constructs an AdminHandler. An empty token rejects every request.
func NewAdminHandler(cache Purger, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{cache: cache, token: token, logger: logger}
}

// PurgeCache empties the response cache so the next queries refetch upstream.
func (h *AdminHandler) PurgeCache(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	if !h.authorize(r) {
		logging.Warn(logger, "admin unauthorized",
			slog.String(logging.FieldClientIP, middleware.ClientIPFromContext(r.Context())),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", logger)
		return
	}
	if h.cache == nil {
		writeError(w, r, http.StatusServiceUnavailable, "cache not configured", logger)
		return
	}

	n := h.cache.Purge()
	logging.Info(logger, "cache purged", slog.Int("entries", n))
	writeJSON(w, http.StatusOK, PurgeResponse{Purged: n}, logger)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	got, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(h.token)) == 1
}
