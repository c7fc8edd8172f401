package crawl

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/coachtree/internal/extract"
	"github.com/jonesrussell/coachtree/internal/nfl"
)

// minSeedCount is the smallest head-coach table parse accepted before
// falling back to the static roster.
const minSeedCount = 10

// coachCellIndex is the column of the head-coaches wikitable holding the
// coach link (0 = team, 1 = image, 2 = coach).
const coachCellIndex = 2

// Seed is one crawl starting point: a current head coach.
type Seed struct {
	Name      string
	PageTitle string
	Team      string
}

// ParseHeadCoaches extracts current head coaches from the rendered
// head-coaches list article. Rows that don't resolve to a two-word coach
// name with an article link are skipped; duplicate names are dropped.
func ParseHeadCoaches(html string) ([]Seed, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var seeds []Seed
	seen := make(map[string]struct{})

	doc.Find("table.wikitable tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td, th")
		if cells.Length() <= coachCellIndex {
			return
		}

		link := cells.Eq(coachCellIndex).Find("a").First()
		if link.Length() == 0 {
			return
		}

		name := strings.TrimSpace(link.Text())
		href, _ := link.Attr("href")
		page := extract.PageTitle(href)
		if page == "" || len(strings.Fields(name)) < 2 {
			return
		}

		if _, dup := seen[name]; dup {
			return
		}
		seen[name] = struct{}{}

		teamText := strings.TrimSpace(cells.Eq(0).Text())
		team, _ := nfl.MatchTeam(teamText)

		seeds = append(seeds, Seed{
			Name:      name,
			PageTitle: page,
			Team:      team,
		})
	})

	return seeds, nil
}

// fallbackSeeds converts the static roster into seeds. Page titles
// default to the coach's name, which the API resolves via redirects.
func fallbackSeeds() []Seed {
	seeds := make([]Seed, 0, len(nfl.FallbackHeadCoaches))
	for _, hc := range nfl.FallbackHeadCoaches {
		seeds = append(seeds, Seed{
			Name:      hc.Name,
			PageTitle: hc.Name,
			Team:      hc.Team,
		})
	}
	return seeds
}

// loadSeeds fetches and parses the head-coaches list, falling back to
// the static roster when the page cannot be fetched or yields too few
// rows.
func (e *Engine) loadSeeds() []Seed {
	html, err := e.fetcher.PageHTML(e.cfg.SeedsPage)
	if err != nil {
		e.log.Warn("failed to fetch head coaches list, using fallback roster", "error", err)
		return fallbackSeeds()
	}

	seeds, parseErr := ParseHeadCoaches(html)
	if parseErr != nil {
		e.log.Warn("failed to parse head coaches list, using fallback roster", "error", parseErr)
		return fallbackSeeds()
	}

	if len(seeds) < minSeedCount {
		e.log.Warn("head coaches table parsed too few rows, using fallback roster",
			"parsed", len(seeds),
		)
		return fallbackSeeds()
	}

	e.log.Info("loaded current head coaches", "count", len(seeds))

	return seeds
}
