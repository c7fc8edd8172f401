// Package dataset defines the persisted coaching connections dataset:
// coach records, relationship edges, and the merge rules that keep the
// edge set free of duplicates and dangling endpoints.
package dataset

import (
	"errors"
	"fmt"
)

// Connection types.
const (
	// TypeCoachingTree marks a documented mentor to protege edge.
	TypeCoachingTree = "coaching_tree"
	// TypeCareerOverlap marks an inferred same-team, overlapping-years edge.
	TypeCareerOverlap = "career_overlap"
)

// maxConnectionContextRunes bounds the context snippet stored per edge.
const maxConnectionContextRunes = 300

var (
	// ErrDuplicateConnection is returned when the unordered coach pair
	// already has an edge in either direction.
	ErrDuplicateConnection = errors.New("connection already present")
	// ErrUnknownEndpoint is returned when an edge references a coach id
	// that has no coach record.
	ErrUnknownEndpoint = errors.New("connection endpoint is not a known coach")
	// ErrDuplicateCoach is returned when a coach id already exists.
	ErrDuplicateCoach = errors.New("coach already present")
)

// Coach is one coach record. CurrentTeam is nil for historical coaches.
type Coach struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	CurrentTeam *string `json:"current_team"`
	IsCurrentHC bool    `json:"is_current_hc"`
}

// Connection is a directed mentor→protege edge or an undirected (stored
// once) career overlap between two coaches. Years and Context are nil
// when unknown.
type Connection struct {
	Source  string  `json:"source"`
	Target  string  `json:"target"`
	Type    string  `json:"type"`
	Years   *string `json:"years"`
	Context *string `json:"context"`
}

// Dataset is the persisted aggregate. Slice order is discovery order.
// TeamColors is present on crawl output only.
type Dataset struct {
	Coaches     []Coach           `json:"coaches"`
	Connections []Connection      `json:"connections"`
	TeamColors  map[string]string `json:"team_colors,omitempty"`

	ids   map[string]struct{}
	pairs map[pairKey]struct{}
}

// pairKey identifies the unordered coach pair of an edge.
type pairKey struct {
	a, b string
}

// newPairKey orders the pair so that both edge directions map to the
// same key.
func newPairKey(source, target string) pairKey {
	if source > target {
		return pairKey{a: target, b: source}
	}
	return pairKey{a: source, b: target}
}

// New creates an empty dataset.
func New() *Dataset {
	d := &Dataset{
		Coaches:     []Coach{},
		Connections: []Connection{},
	}
	d.reindex()
	return d
}

// reindex rebuilds the id and pair lookups from the slices. Called after
// load and after bulk removals.
func (d *Dataset) reindex() {
	d.ids = make(map[string]struct{}, len(d.Coaches))
	for _, c := range d.Coaches {
		d.ids[c.ID] = struct{}{}
	}

	d.pairs = make(map[pairKey]struct{}, len(d.Connections))
	for _, conn := range d.Connections {
		d.pairs[newPairKey(conn.Source, conn.Target)] = struct{}{}
	}
}

// HasCoach reports whether a coach id exists.
func (d *Dataset) HasCoach(id string) bool {
	_, ok := d.ids[id]
	return ok
}

// HasConnection reports whether an edge exists between the pair in
// either direction.
func (d *Dataset) HasConnection(source, target string) bool {
	_, ok := d.pairs[newPairKey(source, target)]
	return ok
}

// AddCoach appends a coach record. Returns ErrDuplicateCoach when the id
// is already present; the existing record is kept.
func (d *Dataset) AddCoach(c Coach) error {
	if d.HasCoach(c.ID) {
		return fmt.Errorf("coach %q: %w", c.ID, ErrDuplicateCoach)
	}

	d.Coaches = append(d.Coaches, c)
	d.ids[c.ID] = struct{}{}

	return nil
}

// AddConnection appends an edge after enforcing the two merge
// invariants: the unordered pair must be new, and both endpoints must
// reference existing coach records. The context snippet is truncated.
func (d *Dataset) AddConnection(conn Connection) error {
	if d.HasConnection(conn.Source, conn.Target) {
		return fmt.Errorf("%s -> %s: %w", conn.Source, conn.Target, ErrDuplicateConnection)
	}

	if !d.HasCoach(conn.Source) {
		return fmt.Errorf("source %q: %w", conn.Source, ErrUnknownEndpoint)
	}
	if !d.HasCoach(conn.Target) {
		return fmt.Errorf("target %q: %w", conn.Target, ErrUnknownEndpoint)
	}

	if conn.Context != nil {
		truncated := truncateRunes(*conn.Context, maxConnectionContextRunes)
		conn.Context = &truncated
	}

	d.Connections = append(d.Connections, conn)
	d.pairs[newPairKey(conn.Source, conn.Target)] = struct{}{}

	return nil
}

// RemoveCoach deletes the coach record and every connection touching the
// id. Removing an absent coach is a no-op, which makes patch re-runs
// idempotent.
func (d *Dataset) RemoveCoach(id string) {
	coaches := d.Coaches[:0]
	for _, c := range d.Coaches {
		if c.ID != id {
			coaches = append(coaches, c)
		}
	}
	d.Coaches = coaches

	conns := d.Connections[:0]
	for _, conn := range d.Connections {
		if conn.Source != id && conn.Target != id {
			conns = append(conns, conn)
		}
	}
	d.Connections = conns

	d.reindex()
}

// Prune drops coaches that are neither current head coaches nor an
// endpoint of any connection, then drops connections whose endpoints
// no longer exist. Applied to final crawl output.
func (d *Dataset) Prune() {
	connected := make(map[string]struct{}, len(d.Connections))
	for _, conn := range d.Connections {
		connected[conn.Source] = struct{}{}
		connected[conn.Target] = struct{}{}
	}

	coaches := d.Coaches[:0]
	kept := make(map[string]struct{}, len(d.Coaches))
	for _, c := range d.Coaches {
		if _, ok := connected[c.ID]; ok || c.IsCurrentHC {
			coaches = append(coaches, c)
			kept[c.ID] = struct{}{}
		}
	}
	d.Coaches = coaches

	conns := d.Connections[:0]
	for _, conn := range d.Connections {
		if _, okS := kept[conn.Source]; !okS {
			continue
		}
		if _, okT := kept[conn.Target]; !okT {
			continue
		}
		conns = append(conns, conn)
	}
	d.Connections = conns

	d.reindex()
}

// CurrentHeadCoaches returns the current head coach records.
func (d *Dataset) CurrentHeadCoaches() []Coach {
	var hcs []Coach
	for _, c := range d.Coaches {
		if c.IsCurrentHC {
			hcs = append(hcs, c)
		}
	}
	return hcs
}

// Validate checks referential integrity and pair uniqueness over the
// full dataset.
func (d *Dataset) Validate() error {
	ids := make(map[string]struct{}, len(d.Coaches))
	for _, c := range d.Coaches {
		if _, dup := ids[c.ID]; dup {
			return fmt.Errorf("coach %q: %w", c.ID, ErrDuplicateCoach)
		}
		ids[c.ID] = struct{}{}
	}

	pairs := make(map[pairKey]struct{}, len(d.Connections))
	for _, conn := range d.Connections {
		if _, ok := ids[conn.Source]; !ok {
			return fmt.Errorf("source %q: %w", conn.Source, ErrUnknownEndpoint)
		}
		if _, ok := ids[conn.Target]; !ok {
			return fmt.Errorf("target %q: %w", conn.Target, ErrUnknownEndpoint)
		}

		key := newPairKey(conn.Source, conn.Target)
		if _, dup := pairs[key]; dup {
			return fmt.Errorf("%s -> %s: %w", conn.Source, conn.Target, ErrDuplicateConnection)
		}
		pairs[key] = struct{}{}
	}

	return nil
}

// StringPtr returns a pointer to s, or nil for the empty string.
// Nullable dataset fields persist as JSON null when absent.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// truncateRunes shortens s to at most n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
