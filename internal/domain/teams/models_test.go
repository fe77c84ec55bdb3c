package teams

import "testing"

func TestIsValidAcceptsKnownCodesIgnoringCase(t *testing.T) {
	for _, code := range []string{"TOR", "tor", "Bos", "VGK"} {
		if !IsValid(code) {
			t.Fatalf("expected %q to be valid", code)
		}
	}
}

func TestIsValidRejectsUnknownAndPartialCodes(t *testing.T) {
	for _, code := range []string{"", "TO", "TORO", " TOR", "XXX", "NBA"} {
		if IsValid(code) {
			t.Fatalf("expected %q to be rejected", code)
		}
	}
}

func TestByCodeReturnsCanonicalName(t *testing.T) {
	team, ok := ByCode("tor")
	if !ok {
		t.Fatalf("expected TOR to resolve")
	}
	if team.Code != "TOR" || team.Name != "Toronto Maple Leafs" {
		t.Fatalf("unexpected team %+v", team)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	if len(all) != len(vocabulary) {
		t.Fatalf("expected %d teams, got %d", len(vocabulary), len(all))
	}
	all[0].Name = "mutated"
	if vocabulary[0].Name == "mutated" {
		t.Fatalf("expected All to return a copy")
	}
}

func TestEveryAliasPointsAtKnownTeam(t *testing.T) {
	for alias, code := range aliases {
		if !IsValid(code) {
			t.Fatalf("alias %q points at unknown code %s", alias, code)
		}
	}
}

func TestByAliasMatchesMultiWordPhrases(t *testing.T) {
	team, ok := ByAlias("Maple", "LEAFS")
	if !ok || team.Code != "TOR" {
		t.Fatalf("expected maple leafs to resolve to TOR, got %+v ok=%v", team, ok)
	}
	if _, ok := ByAlias("New", "York"); ok {
		t.Fatalf("expected ambiguous city to stay unresolved")
	}
	if _, ok := ByAlias(); ok {
		t.Fatalf("expected empty phrase to be rejected")
	}
	if _, ok := ByAlias("a", "b", "c", "d"); ok {
		t.Fatalf("expected overly long phrase to be rejected")
	}
}
