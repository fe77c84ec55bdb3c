package testutil

import (
	"encoding/json"

	"github.com/preston-bernstein/nhl-query-service/internal/domain/games"
)

// SampleGameID is a well-formed regular-season game id.
const SampleGameID = "2023020011"

// SampleTeamStats is a trimmed team statistics document.
const SampleTeamStats = `{"season":"20242025","gameType":2,"skaters":[{"playerId":8478483,"goals":12}],"goalies":[]}`

// SampleScore returns a final score with a game state.
func SampleScore() games.Score {
	state := "FINAL"
	return games.Score{
		Score:  json.RawMessage(`{"home":{"abbrev":"TOR","score":4},"away":{"abbrev":"BOS","score":2}}`),
		Status: &state,
	}
}
