package games

import "encoding/json"

// IDLength is the exact number of digits in an upstream game id.
const IDLength = 10

// IsValidID reports whether id is exactly ten decimal digits.
func IsValidID(id string) bool {
	if len(id) != IDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return false
		}
	}
	return true
}

// Score is the subset of an upstream score payload the service reads.
// The score value itself is owned by the upstream and passed through as-is.
type Score struct {
	Score  json.RawMessage `json:"score"`
	Status *string         `json:"status"`
}
