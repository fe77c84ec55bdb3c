package nhl

import "encoding/json"

// scoreResponse models the two fields read from the score endpoint. Both are optional upstream.
type scoreResponse struct {
	Score     json.RawMessage `json:"score"`
	GameState *string         `json:"gameState"`
}

// present reports whether the payload carried a non-null score.
func (r scoreResponse) present() bool {
	return len(r.Score) > 0 && string(r.Score) != "null"
}
