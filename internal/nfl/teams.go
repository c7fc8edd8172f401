// Package nfl carries the static NFL reference data the crawler needs:
// current team colors for the visualization output and the fallback
// head-coach roster used when the seed page cannot be parsed.
package nfl

import (
	"sort"
	"strings"
)

// TeamColors maps current team names to their primary color.
var TeamColors = map[string]string{
	"Arizona Cardinals":    "#97233F",
	"Atlanta Falcons":      "#A71930",
	"Baltimore Ravens":     "#241773",
	"Buffalo Bills":        "#00338D",
	"Carolina Panthers":    "#0085CA",
	"Chicago Bears":        "#0B162A",
	"Cincinnati Bengals":   "#FB4F14",
	"Cleveland Browns":     "#311D00",
	"Dallas Cowboys":       "#003594",
	"Denver Broncos":       "#FB4F14",
	"Detroit Lions":        "#0076B6",
	"Green Bay Packers":    "#203731",
	"Houston Texans":       "#03202F",
	"Indianapolis Colts":   "#002C5F",
	"Jacksonville Jaguars": "#006778",
	"Kansas City Chiefs":   "#E31837",
	"Las Vegas Raiders":    "#000000",
	"Los Angeles Chargers": "#0080C6",
	"Los Angeles Rams":     "#003594",
	"Miami Dolphins":       "#008E97",
	"Minnesota Vikings":    "#4F2683",
	"New England Patriots": "#002244",
	"New Orleans Saints":   "#D3BC8D",
	"New York Giants":      "#0B2265",
	"New York Jets":        "#125740",
	"Philadelphia Eagles":  "#004C54",
	"Pittsburgh Steelers":  "#FFB612",
	"San Francisco 49ers":  "#AA0000",
	"Seattle Seahawks":     "#002244",
	"Tampa Bay Buccaneers": "#D50A0A",
	"Tennessee Titans":     "#0C2340",
	"Washington Commanders": "#5A1414",
}

// HeadCoach is one entry of the fallback seed roster.
type HeadCoach struct {
	Name string
	Team string
}

// FallbackHeadCoaches is the static seed roster used when the live
// head-coaches list cannot be fetched or parses to too few rows.
var FallbackHeadCoaches = []HeadCoach{
	{Name: "Jonathan Gannon", Team: "Arizona Cardinals"},
	{Name: "Raheem Morris", Team: "Atlanta Falcons"},
	{Name: "John Harbaugh", Team: "Baltimore Ravens"},
	{Name: "Sean McDermott", Team: "Buffalo Bills"},
	{Name: "Dave Canales", Team: "Carolina Panthers"},
	{Name: "Matt Eberflus", Team: "Chicago Bears"},
	{Name: "Zac Taylor", Team: "Cincinnati Bengals"},
	{Name: "Kevin Stefanski", Team: "Cleveland Browns"},
	{Name: "Mike McCarthy", Team: "Dallas Cowboys"},
	{Name: "Sean Payton", Team: "Denver Broncos"},
	{Name: "Dan Campbell", Team: "Detroit Lions"},
	{Name: "Matt LaFleur", Team: "Green Bay Packers"},
	{Name: "DeMeco Ryans", Team: "Houston Texans"},
	{Name: "Shane Steichen", Team: "Indianapolis Colts"},
	{Name: "Doug Pederson", Team: "Jacksonville Jaguars"},
	{Name: "Andy Reid", Team: "Kansas City Chiefs"},
	{Name: "Antonio Pierce", Team: "Las Vegas Raiders"},
	{Name: "Jim Harbaugh", Team: "Los Angeles Chargers"},
	{Name: "Sean McVay", Team: "Los Angeles Rams"},
	{Name: "Mike McDaniel", Team: "Miami Dolphins"},
	{Name: "Kevin O'Connell", Team: "Minnesota Vikings"},
	{Name: "Jerod Mayo", Team: "New England Patriots"},
	{Name: "Dennis Allen", Team: "New Orleans Saints"},
	{Name: "Brian Daboll", Team: "New York Giants"},
	{Name: "Robert Saleh", Team: "New York Jets"},
	{Name: "Nick Sirianni", Team: "Philadelphia Eagles"},
	{Name: "Mike Tomlin", Team: "Pittsburgh Steelers"},
	{Name: "Kyle Shanahan", Team: "San Francisco 49ers"},
	{Name: "Mike Macdonald", Team: "Seattle Seahawks"},
	{Name: "Todd Bowles", Team: "Tampa Bay Buccaneers"},
	{Name: "Brian Callahan", Team: "Tennessee Titans"},
	{Name: "Dan Quinn", Team: "Washington Commanders"},
}

// MatchTeam resolves a table cell's team text to a canonical team name,
// by exact match or by the team nickname (last word) appearing in the
// text. Teams are tried in sorted order so the result is deterministic.
func MatchTeam(text string) (string, bool) {
	teams := make([]string, 0, len(TeamColors))
	for team := range TeamColors {
		teams = append(teams, team)
	}
	sort.Strings(teams)

	for _, team := range teams {
		if team == text {
			return team, true
		}
		words := strings.Fields(team)
		if len(words) > 0 && strings.Contains(text, words[len(words)-1]) {
			return team, true
		}
	}

	return "", false
}
