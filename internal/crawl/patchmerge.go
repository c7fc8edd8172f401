package crawl

import (
	"errors"
	"fmt"

	"github.com/jonesrussell/coachtree/internal/dataset"
	"github.com/jonesrussell/coachtree/internal/extract"
)

// MergeCoachPage re-derives one coach's record and connections from a
// fresh single-page fetch and merges them into an existing dataset.
// Any stale record and edges for the coach are removed first, so
// re-running the merge is idempotent. A fetch failure is non-fatal: the
// coach record and any manual mentors are still merged.
func (e *Engine) MergeCoachPage(
	ds *dataset.Dataset,
	name, pageTitle, team string,
	currentHC bool,
	mentors []string,
) error {
	coachID := extract.Slug(name)
	if coachID == "" {
		return fmt.Errorf("name %q produces an empty coach id", name)
	}

	ds.RemoveCoach(coachID)

	if err := ds.AddCoach(dataset.Coach{
		ID:          coachID,
		Name:        name,
		CurrentTeam: dataset.StringPtr(team),
		IsCurrentHC: currentHC,
	}); err != nil {
		return fmt.Errorf("re-insert coach: %w", err)
	}
	e.log.Info("re-inserted coach", "id", coachID, "current_hc", currentHC)

	html, fetchErr := e.fetcher.PageHTML(pageTitle)
	if fetchErr != nil {
		e.log.Warn("could not fetch page, merging manual connections only",
			"page", pageTitle,
			"error", fetchErr,
		)
	} else {
		members, treeErr := extract.ParseTree(html)
		if treeErr != nil {
			e.log.Warn("tree parse failed", "page", pageTitle, "error", treeErr)
		}
		e.log.Info("parsed coaching tree section", "page", pageTitle, "members", len(members))

		// Depth at the ceiling keeps recordMembers from queueing followups;
		// a patch touches exactly one page.
		_ = e.recordMembers(ds, coachID, members, e.cfg.MaxDepth, map[string]struct{}{}, nil)

		if career, careerErr := extract.ParseCareer(html, e.cfg.PresentYear); careerErr == nil && len(career) > 0 {
			e.log.Info("parsed career entries", "page", pageTitle, "entries", len(career))
		}
	}

	e.mergeManualMentors(ds, coachID, mentors)

	return nil
}

// mergeManualMentors adds mentor→coach edges from a hand-maintained
// mentor id list. Unknown mentor ids are skipped with a warning.
func (e *Engine) mergeManualMentors(ds *dataset.Dataset, coachID string, mentors []string) {
	for _, mentorID := range mentors {
		err := ds.AddConnection(dataset.Connection{
			Source:  mentorID,
			Target:  coachID,
			Type:    dataset.TypeCoachingTree,
			Context: dataset.StringPtr("Manually recorded mentor"),
		})
		switch {
		case errors.Is(err, dataset.ErrDuplicateConnection):
			e.log.Debug("mentor connection already exists", "mentor", mentorID)
		case errors.Is(err, dataset.ErrUnknownEndpoint):
			e.log.Warn("skipping unknown mentor id", "mentor", mentorID, "error", err)
		case err == nil:
			e.log.Info("added manual mentor connection", "mentor", mentorID, "coach", coachID)
		}
	}
}
