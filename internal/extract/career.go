package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// UnknownTeam is the placeholder for career entries whose team text
// could not be recovered from the infobox cell.
const UnknownTeam = "Unknown"

var (
	yearRangeRe  = regexp.MustCompile(`(?i)(\d{4})\s*[-–]\s*(\d{4}|present)`)
	bareYearRe   = regexp.MustCompile(`\d{4}`)
	parenCharsRe = regexp.MustCompile(`[()]`)
)

// careerExitHeaders are infobox section labels that terminate the
// coaching career block.
var careerExitHeaders = []string{
	"record", "playing career", "administrative",
	"executive", "front office", "personal info",
	"bowl record", "achievements", "honors",
}

// CareerEntry is one tenure parsed from an infobox coaching career row.
type CareerEntry struct {
	Team      string
	YearStart int
	YearEnd   int
}

// ParseCareer extracts coaching tenures from an article's infobox.
// presentYear substitutes for "present" in open-ended ranges. Articles
// without an infobox, or without a coaching career block, yield nil.
func ParseCareer(html string, presentYear int) ([]CareerEntry, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse article html: %w", err)
	}

	infobox := doc.Find("table.infobox").First()
	if infobox.Length() == 0 {
		return nil, nil
	}

	var entries []CareerEntry
	inCoaching := false

	infobox.Find("tr").Each(func(_ int, row *goquery.Selection) {
		if header := row.Find("th").First(); header.Length() > 0 {
			headerText := strings.ToLower(strings.TrimSpace(header.Text()))

			switch {
			case strings.Contains(headerText, "coaching career") ||
				strings.Contains(headerText, "career history"):
				inCoaching = true
				return
			case inCoaching && isCareerExitHeader(headerText):
				inCoaching = false
				return
			}
		}

		if !inCoaching {
			return
		}

		row.Find("td").Each(func(_ int, cell *goquery.Selection) {
			entries = append(entries, cellEntries(strings.TrimSpace(cell.Text()), presentYear)...)
		})
	})

	return entries, nil
}

// isCareerExitHeader reports whether an infobox header label belongs to
// a section unrelated to coaching tenures.
func isCareerExitHeader(headerText string) bool {
	for _, kw := range careerExitHeaders {
		if strings.Contains(headerText, kw) {
			return true
		}
	}
	return false
}

// cellEntries parses one infobox data cell into career entries. Cells
// carry a year range, or a bare year treated as a single-season tenure;
// the team name is whatever precedes the first year, parens stripped.
func cellEntries(text string, presentYear int) []CareerEntry {
	matches := yearRangeRe.FindAllStringSubmatch(text, -1)
	if matches == nil {
		single := bareYearRe.FindString(text)
		if single == "" {
			return nil
		}
		matches = [][]string{{single, single, single}}
	}

	team := teamFromCell(text)

	entries := make([]CareerEntry, 0, len(matches))
	for _, m := range matches {
		start, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}

		end := presentYear
		if !strings.EqualFold(m[2], "present") {
			end, err = strconv.Atoi(m[2])
			if err != nil {
				continue
			}
		}

		entries = append(entries, CareerEntry{
			Team:      team,
			YearStart: start,
			YearEnd:   end,
		})
	}

	return entries
}

// teamFromCell recovers the team name from a cell: the text before the
// first 4-digit year, with parenthesis characters removed.
func teamFromCell(text string) string {
	team := text
	if loc := bareYearRe.FindStringIndex(text); loc != nil {
		team = text[:loc[0]]
	}

	team = strings.TrimSpace(parenCharsRe.ReplaceAllString(team, ""))
	if team == "" {
		return UnknownTeam
	}

	return team
}
