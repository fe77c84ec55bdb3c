package teams

import "strings"

// Team pairs a franchise code with its canonical display name.
type Team struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// vocabulary is the closed set of franchise codes the service accepts.
var vocabulary = []Team{
	{Code: "ANA", Name: "Anaheim Ducks"},
	{Code: "ARI", Name: "Arizona Coyotes"},
	{Code: "BOS", Name: "Boston Bruins"},
	{Code: "BUF", Name: "Buffalo Sabres"},
	{Code: "CAR", Name: "Carolina Hurricanes"},
	{Code: "CBJ", Name: "Columbus Blue Jackets"},
	{Code: "CGY", Name: "Calgary Flames"},
	{Code: "CHI", Name: "Chicago Blackhawks"},
	{Code: "COL", Name: "Colorado Avalanche"},
	{Code: "DAL", Name: "Dallas Stars"},
	{Code: "DET", Name: "Detroit Red Wings"},
	{Code: "EDM", Name: "Edmonton Oilers"},
	{Code: "FLA", Name: "Florida Panthers"},
	{Code: "LAK", Name: "Los Angeles Kings"},
	{Code: "MIN", Name: "Minnesota Wild"},
	{Code: "MTL", Name: "Montreal Canadiens"},
	{Code: "NJD", Name: "New Jersey Devils"},
	{Code: "NSH", Name: "Nashville Predators"},
	{Code: "NYI", Name: "New York Islanders"},
	{Code: "NYR", Name: "New York Rangers"},
	{Code: "OTT", Name: "Ottawa Senators"},
	{Code: "PHI", Name: "Philadelphia Flyers"},
	{Code: "PIT", Name: "Pittsburgh Penguins"},
	{Code: "SEA", Name: "Seattle Kraken"},
	{Code: "SJS", Name: "San Jose Sharks"},
	{Code: "STL", Name: "St. Louis Blues"},
	{Code: "TBL", Name: "Tampa Bay Lightning"},
	{Code: "TOR", Name: "Toronto Maple Leafs"},
	{Code: "UTA", Name: "Utah Hockey Club"},
	{Code: "VAN", Name: "Vancouver Canucks"},
	{Code: "VGK", Name: "Vegas Golden Knights"},
	{Code: "WPG", Name: "Winnipeg Jets"},
	{Code: "WSH", Name: "Washington Capitals"},
}

var byCode = func() map[string]Team {
	m := make(map[string]Team, len(vocabulary))
	for _, t := range vocabulary {
		m[t.Code] = t
	}
	return m
}()

// All returns a copy of the team vocabulary in code order.
func All() []Team {
	out := make([]Team, len(vocabulary))
	copy(out, vocabulary)
	return out
}

// ByCode looks up a team by code, ignoring case.
func ByCode(code string) (Team, bool) {
	t, ok := byCode[strings.ToUpper(code)]
	return t, ok
}

// IsValid reports whether code is a member of the vocabulary.
// Surrounding whitespace or partial codes are not accepted.
func IsValid(code string) bool {
	if len(code) != 3 {
		return false
	}
	_, ok := ByCode(code)
	return ok
}
