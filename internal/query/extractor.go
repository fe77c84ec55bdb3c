package query

import (
	"github.com/preston-bernstein/nhl-query-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-query-service/internal/domain/teams"
)

// Mode selects which kind of identifier Extract looks for.
type Mode int

const (
	ModeTeam Mode = iota
	ModeGame
)

func (m Mode) String() string {
	switch m {
	case ModeTeam:
		return "team"
	case ModeGame:
		return "game"
	default:
		return "unknown"
	}
}

// Identifier is the structured value pulled out of a query.
// For teams Value is the team code and Name its display name; for games Value is the game id.
type Identifier struct {
	Mode  Mode
	Value string
	Name  string
}

// Extractor finds team codes and game ids in free text.
type Extractor struct {
	tokenizer Tokenizer
}

// NewExtractor builds an Extractor. A nil tokenizer falls back to WordTokenizer.
func NewExtractor(tokenizer Tokenizer) *Extractor {
	if tokenizer == nil {
		tokenizer = WordTokenizer{}
	}
	return &Extractor{tokenizer: tokenizer}
}

// Extract scans the query left to right and returns the first identifier for mode.
// A query with no qualifying token reports false.
func (e *Extractor) Extract(query string, mode Mode) (Identifier, bool) {
	tokens := e.tokenizer.Tokenize(query)
	switch mode {
	case ModeTeam:
		return extractTeam(tokens)
	case ModeGame:
		return extractGame(tokens)
	default:
		return Identifier{}, false
	}
}

// extractTeam prefers an explicit team code anywhere in the query over any
// city or nickname phrase, so surrounding words never displace a code.
func extractTeam(tokens []string) (Identifier, bool) {
	for _, tok := range tokens {
		if team, ok := teams.ByCode(tok); ok {
			return teamIdentifier(team), true
		}
	}
	for i := range tokens {
		if team, ok := matchAliasAt(tokens, i); ok {
			return teamIdentifier(team), true
		}
	}
	return Identifier{}, false
}

func teamIdentifier(team teams.Team) Identifier {
	return Identifier{Mode: ModeTeam, Value: team.Code, Name: team.Name}
}

// matchAliasAt tries the longest alias phrase starting at i.
func matchAliasAt(tokens []string, i int) (teams.Team, bool) {
	for n := teams.MaxAliasWords; n >= 1; n-- {
		if i+n > len(tokens) {
			continue
		}
		if team, ok := teams.ByAlias(tokens[i : i+n]...); ok {
			return team, true
		}
	}
	return teams.Team{}, false
}

func extractGame(tokens []string) (Identifier, bool) {
	for _, tok := range tokens {
		if games.IsValidID(tok) {
			return Identifier{Mode: ModeGame, Value: tok}, true
		}
	}
	return Identifier{}, false
}
