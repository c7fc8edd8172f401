// Package crawl implements the breadth-first crawl over coach articles:
// seed with current head coaches, follow coaching tree links outward to
// bounded depth under a page budget, and synthesize the relationship
// dataset along the way.
package crawl

import (
	"errors"

	"github.com/jonesrussell/coachtree/internal/dataset"
	"github.com/jonesrussell/coachtree/internal/extract"
	"github.com/jonesrussell/coachtree/internal/logger"
	"github.com/jonesrussell/coachtree/internal/nfl"
)

// Fetcher fetches rendered article HTML by page title.
type Fetcher interface {
	PageHTML(title string) (string, error)
}

// Config holds the crawl budgets and extraction parameters.
type Config struct {
	// MaxPages caps how many pages are processed in one run.
	MaxPages int
	// MaxDepth caps the BFS distance from any seed.
	MaxDepth int
	// PresentYear substitutes for "present" in career year ranges.
	PresentYear int
	// SeedsPage is the article listing current head coaches.
	SeedsPage string
}

// Engine runs the crawl. Single-threaded and synchronous: the fetcher
// blocks between pages and provides the politeness delay.
type Engine struct {
	fetcher Fetcher
	cfg     *Config
	log     logger.Interface
}

// queueItem is one pending page in the BFS frontier.
type queueItem struct {
	name      string
	pageTitle string
	team      string
	currentHC bool
	depth     int
}

// New creates a crawl engine.
func New(fetcher Fetcher, cfg *Config, log logger.Interface) *Engine {
	return &Engine{
		fetcher: fetcher,
		cfg:     cfg,
		log:     log.WithComponent("crawl"),
	}
}

// Run executes the full crawl and returns the resulting dataset:
// coaching tree edges from section extraction, career overlap edges
// inferred from infobox tenures, pruned of isolated historical coaches,
// with the team color table attached for the visualization consumer.
func (e *Engine) Run() (*dataset.Dataset, error) {
	seeds := e.loadSeeds()
	if len(seeds) == 0 {
		return nil, errors.New("no seed coaches available")
	}

	ds := dataset.New()
	careers := make(map[string][]extract.CareerEntry)
	visited := make(map[string]struct{})

	queue := make([]queueItem, 0, len(seeds))
	for _, seed := range seeds {
		id := extract.Slug(seed.Name)
		if !ds.HasCoach(id) {
			_ = ds.AddCoach(dataset.Coach{
				ID:          id,
				Name:        seed.Name,
				CurrentTeam: dataset.StringPtr(seed.Team),
				IsCurrentHC: true,
			})
		}
		queue = append(queue, queueItem{
			name:      seed.Name,
			pageTitle: seed.PageTitle,
			team:      seed.Team,
			currentHC: true,
			depth:     0,
		})
	}

	e.log.Info("starting crawl",
		"seeds", len(seeds),
		"max_depth", e.cfg.MaxDepth,
		"max_pages", e.cfg.MaxPages,
	)

	processed := 0
	for len(queue) > 0 && processed < e.cfg.MaxPages {
		item := queue[0]
		queue = queue[1:]

		if _, seen := visited[item.pageTitle]; seen {
			continue
		}
		visited[item.pageTitle] = struct{}{}

		html, err := e.fetcher.PageHTML(item.pageTitle)
		if err != nil {
			// Transient fetch failures skip the page without consuming budget.
			e.log.Warn("fetch failed, skipping page", "page", item.pageTitle, "error", err)
			continue
		}
		processed++

		coachID := extract.Slug(item.name)
		if !ds.HasCoach(coachID) {
			_ = ds.AddCoach(dataset.Coach{
				ID:          coachID,
				Name:        item.name,
				CurrentTeam: dataset.StringPtr(item.team),
				IsCurrentHC: item.currentHC,
			})
		}

		if career, careerErr := extract.ParseCareer(html, e.cfg.PresentYear); careerErr != nil {
			e.log.Warn("career parse failed", "page", item.pageTitle, "error", careerErr)
		} else if len(career) > 0 {
			careers[coachID] = career
		}

		members, treeErr := extract.ParseTree(html)
		if treeErr != nil {
			e.log.Warn("tree parse failed", "page", item.pageTitle, "error", treeErr)
		}

		queue = e.recordMembers(ds, coachID, members, item.depth, visited, queue)

		e.log.Info("processed page",
			"page", item.pageTitle,
			"depth", item.depth,
			"tree_members", len(members),
			"processed", processed,
		)
	}

	e.log.Info("crawl finished", "pages", processed, "queued_remaining", len(queue))

	e.inferOverlaps(ds, careers)

	ds.Prune()
	ds.TeamColors = nfl.TeamColors

	return ds, nil
}

// recordMembers registers extracted tree members: new coach records,
// mentor→protege edges, and frontier entries for unvisited pages within
// the depth budget.
func (e *Engine) recordMembers(
	ds *dataset.Dataset,
	coachID string,
	members []extract.TreeMember,
	depth int,
	visited map[string]struct{},
	queue []queueItem,
) []queueItem {
	for _, member := range members {
		linkedID := extract.Slug(member.Name)
		if linkedID == "" || linkedID == coachID {
			continue
		}

		if !ds.HasCoach(linkedID) {
			_ = ds.AddCoach(dataset.Coach{
				ID:          linkedID,
				Name:        member.Name,
				CurrentTeam: nil,
				IsCurrentHC: false,
			})
		}

		// Edge direction is always mentor → protege.
		source, target := coachID, linkedID
		if member.Role == extract.RoleMentor {
			source, target = linkedID, coachID
		}

		conn := dataset.Connection{
			Source:  source,
			Target:  target,
			Type:    dataset.TypeCoachingTree,
			Years:   dataset.StringPtr(extract.YearsFromContext(member.Context)),
			Context: dataset.StringPtr(member.Context),
		}
		if err := ds.AddConnection(conn); err != nil {
			if !errors.Is(err, dataset.ErrDuplicateConnection) {
				e.log.Warn("dropping connection", "error", err)
			}
		}

		if _, seen := visited[member.PageTitle]; !seen && depth+1 <= e.cfg.MaxDepth {
			queue = append(queue, queueItem{
				name:      member.Name,
				pageTitle: member.PageTitle,
				depth:     depth + 1,
			})
		}
	}

	return queue
}
