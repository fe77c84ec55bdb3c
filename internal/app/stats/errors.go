package stats

import "errors"

var (
	// ErrInvalidTeam is returned when no known team can be resolved from a query.
	ErrInvalidTeam = errors.New("invalid team name")
	// ErrInvalidGameID is returned when a query holds no ten-digit game id.
	ErrInvalidGameID = errors.New("invalid game id")
)
