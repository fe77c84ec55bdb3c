package query

import (
	"reflect"
	"strings"
	"testing"
)

func TestWordTokenizerSplitsOnPunctuation(t *testing.T) {
	got := WordTokenizer{}.Tokenize("How's TOR, doing?! game#2023020011")
	want := []string{"How", "s", "TOR", "doing", "game", "2023020011"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestExtractTeamFindsCodeRegardlessOfFiller(t *testing.T) {
	ex := NewExtractor(nil)
	queries := []string{
		"tor",
		"stats for TOR please",
		"what about the tor team this season?",
		"(TOR)",
	}
	for _, q := range queries {
		id, ok := ex.Extract(q, ModeTeam)
		if !ok {
			t.Fatalf("expected team in %q", q)
		}
		if id.Value != "TOR" || id.Name != "Toronto Maple Leafs" || id.Mode != ModeTeam {
			t.Fatalf("unexpected identifier %+v for %q", id, q)
		}
	}
}

func TestExtractTeamResolvesCityAndNickname(t *testing.T) {
	ex := NewExtractor(nil)
	cases := map[string]string{
		"How is Toronto doing this year?":    "TOR",
		"are the maple leafs any good":       "TOR",
		"St. Louis Blues stats":              "STL",
		"how did the golden knights do":      "VGK",
		"tell me about the new york rangers": "NYR",
	}
	for q, want := range cases {
		id, ok := ex.Extract(q, ModeTeam)
		if !ok || id.Value != want {
			t.Fatalf("expected %s for %q, got %+v ok=%v", want, q, id, ok)
		}
	}
}

func TestExtractTeamCodeBeatsNicknameLikeWords(t *testing.T) {
	ex := NewExtractor(nil)
	cases := map[string]string{
		"What a wild season for TOR":       "TOR",
		"How many stars does BOS have":     "BOS",
		"the kings of hockey: EDM":         "EDM",
		"who are the blues chasing, TOR?":  "TOR",
		"Toronto or BOS, who is better?":   "BOS",
		"How is Toronto doing this year?":  "TOR",
		"the lightning struck in Winnipeg": "WPG",
	}
	for q, want := range cases {
		id, ok := ex.Extract(q, ModeTeam)
		if !ok || id.Value != want {
			t.Fatalf("expected %s for %q, got %+v ok=%v", want, q, id, ok)
		}
	}
}

func TestExtractTeamFirstMentionWins(t *testing.T) {
	id, ok := NewExtractor(nil).Extract("BOS versus TOR tonight", ModeTeam)
	if !ok || id.Value != "BOS" {
		t.Fatalf("expected first mention BOS, got %+v", id)
	}
}

func TestExtractTeamNotFound(t *testing.T) {
	for _, q := range []string{"", "score of XXX", "how is new york doing", "hockey!"} {
		if id, ok := NewExtractor(nil).Extract(q, ModeTeam); ok {
			t.Fatalf("expected no team in %q, got %+v", q, id)
		}
	}
}

func TestExtractGameFindsTenDigitToken(t *testing.T) {
	id, ok := NewExtractor(nil).Extract("what was the score in game 2023020011?", ModeGame)
	if !ok {
		t.Fatalf("expected game id")
	}
	if id.Value != "2023020011" || id.Mode != ModeGame {
		t.Fatalf("unexpected identifier %+v", id)
	}
}

func TestExtractGameRejectsWrongLengthsAndMixedTokens(t *testing.T) {
	queries := []string{
		"score of XXX",
		"game 202302001",
		"game 20230200111",
		"game 2023O20011",
		"TOR vs BOS",
	}
	for _, q := range queries {
		if id, ok := NewExtractor(nil).Extract(q, ModeGame); ok {
			t.Fatalf("expected no game id in %q, got %+v", q, id)
		}
	}
}

func TestExtractGameFirstMatchWins(t *testing.T) {
	id, ok := NewExtractor(nil).Extract("1111111111 or 2222222222", ModeGame)
	if !ok || id.Value != "1111111111" {
		t.Fatalf("expected first game id, got %+v", id)
	}
}

type upperTokenizer struct{}

func (upperTokenizer) Tokenize(text string) []string { return strings.Fields(strings.ToUpper(text)) }

func TestExtractorUsesInjectedTokenizer(t *testing.T) {
	id, ok := NewExtractor(upperTokenizer{}).Extract("go bos", ModeTeam)
	if !ok || id.Value != "BOS" {
		t.Fatalf("expected injected tokenizer to be used, got %+v", id)
	}
}

func TestExtractUnknownMode(t *testing.T) {
	if _, ok := NewExtractor(nil).Extract("TOR", Mode(42)); ok {
		t.Fatalf("expected unknown mode to find nothing")
	}
	if Mode(42).String() != "unknown" || ModeTeam.String() != "team" || ModeGame.String() != "game" {
		t.Fatalf("unexpected mode names")
	}
}
