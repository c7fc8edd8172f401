package extract

import (
	"strings"
	"unicode"
)

// skipLinkWords lists substrings that mark a link text as something other
// than a person: teams, leagues, awards, venues, and generic football
// vocabulary. Matching is case-insensitive containment.
var skipLinkWords = []string{
	"coach", "football", "league", "team", "bowl", "season", "stadium",
	"university", "college", "school", "conference", "national", "american",
	"pro bowl", "super bowl", "nfl", "afl", "afc", "nfc", "division",
	"playoff", "draft", "hall of fame", "cougars", "gators", "bears",
	"tigers", "lumberjacks", "miners", "packers", "vikings", "falcons",
	"ravens", "bills", "panthers", "bengals", "browns", "cowboys",
	"broncos", "lions", "texans", "colts", "jaguars", "chiefs", "raiders",
	"chargers", "rams", "dolphins", "patriots", "saints", "giants", "jets",
	"eagles", "steelers", "49ers", "seahawks", "buccaneers", "titans",
	"commanders", "redskins", "oilers",
}

// IsPersonLink reports whether a hyperlink's visible text looks like a
// person's name rather than a team, award, or organization. It rejects
// text with fewer than two words, text containing a digit, and text
// containing any block-listed substring. This is a heuristic filter, not
// an authoritative classifier.
func IsPersonLink(text string) bool {
	if len(strings.Fields(text)) < 2 {
		return false
	}

	if strings.ContainsFunc(text, unicode.IsDigit) {
		return false
	}

	lower := strings.ToLower(text)
	for _, skip := range skipLinkWords {
		if strings.Contains(lower, skip) {
			return false
		}
	}

	return true
}
