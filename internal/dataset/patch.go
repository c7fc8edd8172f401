package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jonesrussell/coachtree/internal/logger"
)

// Patch is a manual correction set: coach records to ensure and edges to
// merge. Loaded from a JSON file maintained by hand for coaches whose
// articles carry no usable coaching tree section.
type Patch struct {
	Coaches     []Coach      `json:"coaches"`
	Connections []Connection `json:"connections"`
}

// LoadPatch reads a patch file.
func LoadPatch(path string) (*Patch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read patch %s: %w", path, err)
	}

	var p Patch
	if unmarshalErr := json.Unmarshal(data, &p); unmarshalErr != nil {
		return nil, fmt.Errorf("decode patch %s: %w", path, unmarshalErr)
	}

	return &p, nil
}

// ApplyPatch merges a patch into the dataset. Coaches already present
// are kept as-is. Edges already present in either direction are skipped,
// and edges referencing unknown coach ids are dropped with a warning;
// neither case is fatal. Applying the same patch twice leaves the
// dataset unchanged on the second run.
func (d *Dataset) ApplyPatch(p *Patch, log logger.Interface) (coachesAdded, connsAdded int) {
	for _, c := range p.Coaches {
		if err := d.AddCoach(c); err != nil {
			log.Debug("coach already exists", "id", c.ID)
			continue
		}
		coachesAdded++
		log.Info("added coach", "id", c.ID, "name", c.Name)
	}

	for _, conn := range p.Connections {
		if conn.Type == "" {
			conn.Type = TypeCoachingTree
		}

		err := d.AddConnection(conn)
		switch {
		case errors.Is(err, ErrDuplicateConnection):
			log.Debug("connection already exists", "source", conn.Source, "target", conn.Target)
		case errors.Is(err, ErrUnknownEndpoint):
			log.Warn("skipping connection with unknown endpoint",
				"source", conn.Source,
				"target", conn.Target,
				"error", err,
			)
		case err != nil:
			log.Warn("skipping connection", "error", err)
		default:
			connsAdded++
			log.Info("added connection", "source", conn.Source, "target", conn.Target)
		}
	}

	return coachesAdded, connsAdded
}
