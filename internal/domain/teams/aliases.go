package teams

import "strings"

// MaxAliasWords is the longest alias, in words, present in the alias table.
const MaxAliasWords = 3

// aliases maps lower-cased city and nickname phrases to team codes.
// Phrases shared by two franchises ("new york") and nicknames that are everyday
// words ("wild", "stars", "kings") are left out.
var aliases = map[string]string{
	"anaheim":        "ANA",
	"ducks":          "ANA",
	"arizona":        "ARI",
	"coyotes":        "ARI",
	"boston":         "BOS",
	"bruins":         "BOS",
	"buffalo":        "BUF",
	"sabres":         "BUF",
	"carolina":       "CAR",
	"hurricanes":     "CAR",
	"columbus":       "CBJ",
	"blue jackets":   "CBJ",
	"calgary":        "CGY",
	"chicago":        "CHI",
	"blackhawks":     "CHI",
	"colorado":       "COL",
	"avalanche":      "COL",
	"dallas":         "DAL",
	"detroit":        "DET",
	"red wings":      "DET",
	"edmonton":       "EDM",
	"oilers":         "EDM",
	"florida":        "FLA",
	"panthers":       "FLA",
	"los angeles":    "LAK",
	"minnesota":      "MIN",
	"montreal":       "MTL",
	"canadiens":      "MTL",
	"habs":           "MTL",
	"new jersey":     "NJD",
	"nashville":      "NSH",
	"predators":      "NSH",
	"preds":          "NSH",
	"islanders":      "NYI",
	"rangers":        "NYR",
	"ottawa":         "OTT",
	"senators":       "OTT",
	"philadelphia":   "PHI",
	"flyers":         "PHI",
	"pittsburgh":     "PIT",
	"penguins":       "PIT",
	"seattle":        "SEA",
	"kraken":         "SEA",
	"san jose":       "SJS",
	"st louis":       "STL",
	"saint louis":    "STL",
	"tampa":          "TBL",
	"tampa bay":      "TBL",
	"toronto":        "TOR",
	"maple leafs":    "TOR",
	"leafs":          "TOR",
	"utah":           "UTA",
	"vancouver":      "VAN",
	"canucks":        "VAN",
	"vegas":          "VGK",
	"golden knights": "VGK",
	"las vegas":      "VGK",
	"winnipeg":       "WPG",
	"washington":     "WSH",
	"capitals":       "WSH",
}

// ByAlias resolves a city or nickname phrase to its team.
// Words are compared case-insensitively and joined by single spaces.
func ByAlias(words ...string) (Team, bool) {
	if len(words) == 0 || len(words) > MaxAliasWords {
		return Team{}, false
	}
	code, ok := aliases[strings.ToLower(strings.Join(words, " "))]
	if !ok {
		return Team{}, false
	}
	return ByCode(code)
}
