package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

const maxBodyBytes = 64 << 10

// QueryRequest is the body accepted by the query endpoints.
type QueryRequest struct {
	Query string `json:"query"`
}

// PurgeResponse reports how many cache entries were dropped.
type PurgeResponse struct {
	Purged int `json:"purged"`
}

// HealthResponse is returned by the health check.
type HealthResponse struct {
	Status string `json:"status"`
}

var errBadBody = errors.New("malformed request body")

func decodeQuery(w http.ResponseWriter, r *http.Request) (QueryRequest, error) {
	var req QueryRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return req, errBadBody
		}
		return req, errors.Join(errBadBody, err)
	}
	return req, nil
}
