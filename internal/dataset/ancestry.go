package dataset

import "sort"

// AncestryEntry reports, for one current head coach, how many coaches
// are reachable upward through mentor edges and at what maximum BFS
// depth. Diagnostic output only; computing it never alters the dataset.
type AncestryEntry struct {
	Coach     Coach
	Ancestors int
	Depth     int
}

// Ancestry computes the ancestor report for every current head coach,
// sorted by coach name. Edges are followed target→source, so an
// ancestor is any coach on a mentor chain above the head coach.
func (d *Dataset) Ancestry() []AncestryEntry {
	mentorsOf := make(map[string][]string)
	for _, conn := range d.Connections {
		mentorsOf[conn.Target] = append(mentorsOf[conn.Target], conn.Source)
	}

	hcs := d.CurrentHeadCoaches()
	sort.Slice(hcs, func(i, j int) bool { return hcs[i].Name < hcs[j].Name })

	entries := make([]AncestryEntry, 0, len(hcs))
	for _, hc := range hcs {
		ancestors, depth := bfsAncestors(hc.ID, mentorsOf)
		entries = append(entries, AncestryEntry{
			Coach:     hc,
			Ancestors: ancestors,
			Depth:     depth,
		})
	}

	return entries
}

// bfsAncestors walks upward from id over the mentor adjacency and
// returns the reachable ancestor count (excluding id itself) and the
// maximum depth reached.
func bfsAncestors(id string, mentorsOf map[string][]string) (ancestors, depth int) {
	visited := make(map[string]struct{})
	frontier := map[string]struct{}{id: {}}

	for len(frontier) > 0 {
		next := make(map[string]struct{})

		for node := range frontier {
			if _, seen := visited[node]; seen {
				continue
			}
			visited[node] = struct{}{}

			for _, mentor := range mentorsOf[node] {
				if _, seen := visited[mentor]; !seen {
					next[mentor] = struct{}{}
				}
			}
		}

		if len(next) > 0 {
			depth++
		}
		frontier = next
	}

	return len(visited) - 1, depth
}
