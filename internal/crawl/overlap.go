package crawl

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jonesrussell/coachtree/internal/dataset"
	"github.com/jonesrussell/coachtree/internal/extract"
)

// inferOverlaps cross-references collected career histories and adds a
// career_overlap edge for every coach pair that shared a team in
// overlapping years, unless the pair is already connected. Quadratic in
// coaches and in entries per coach; both stay small enough that the
// simple form is the right one.
func (e *Engine) inferOverlaps(ds *dataset.Dataset, careers map[string][]extract.CareerEntry) {
	ids := make([]string, 0, len(careers))
	for id := range careers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	added := 0
	for i, idA := range ids {
		for _, idB := range ids[i+1:] {
			if overlap, ok := firstOverlap(careers[idA], careers[idB]); ok {
				years := fmt.Sprintf("%d-%d", overlap.YearStart, overlap.YearEnd)
				context := fmt.Sprintf("Both at %s (%s)", overlap.Team, years)

				err := ds.AddConnection(dataset.Connection{
					Source:  idA,
					Target:  idB,
					Type:    dataset.TypeCareerOverlap,
					Years:   dataset.StringPtr(years),
					Context: dataset.StringPtr(context),
				})
				if err == nil {
					added++
				} else if !errors.Is(err, dataset.ErrDuplicateConnection) {
					e.log.Warn("dropping overlap connection", "error", err)
				}
			}
		}
	}

	e.log.Info("career overlap inference complete", "pairs", len(ids), "edges_added", added)
}

// firstOverlap returns the first shared tenure of two career histories:
// same non-placeholder team with intersecting year ranges.
func firstOverlap(a, b []extract.CareerEntry) (extract.CareerEntry, bool) {
	for _, ca := range a {
		for _, cb := range b {
			if ca.Team == "" || ca.Team != cb.Team || ca.Team == extract.UnknownTeam {
				continue
			}
			if ca.YearStart == 0 || cb.YearStart == 0 || ca.YearEnd == 0 || cb.YearEnd == 0 {
				continue
			}

			start := max(ca.YearStart, cb.YearStart)
			end := min(ca.YearEnd, cb.YearEnd)
			if start <= end {
				return extract.CareerEntry{Team: ca.Team, YearStart: start, YearEnd: end}, true
			}
		}
	}

	return extract.CareerEntry{}, false
}
