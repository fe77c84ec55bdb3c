package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nhl-query-service/internal/http/middleware"
	"github.com/preston-bernstein/nhl-query-service/internal/http/requestutil"
	"github.com/preston-bernstein/nhl-query-service/internal/logging"
)

// ErrorResponse is the body of every error reply. The request id travels in the
// X-Request-ID header only, so the body stays exactly {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

// writeRaw sends an upstream JSON document unchanged.
func writeRaw(w http.ResponseWriter, status int, payload []byte, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(payload); err != nil {
		logging.Error(logger, "failed to write response", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	if w.Header().Get(requestutil.HeaderRequestID) == "" {
		reqID := middleware.RequestIDFromContext(r.Context())
		if reqID == "" {
			reqID = requestutil.SanitizeRequestID(r.Header.Get(requestutil.HeaderRequestID))
		}
		w.Header().Set(requestutil.HeaderRequestID, reqID)
	}
	writeJSON(w, status, ErrorResponse{Error: message}, logger)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
