package common

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/jonesrussell/coachtree/internal/dataset"
)

// RenderAncestry prints the per-head-coach ancestry report as a table.
// Head coaches with zero reachable ancestors are the rows worth manual
// patching.
func RenderAncestry(ds *dataset.Dataset) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Head Coach", "Team", "Ancestors", "Depth", "Status"})

	for _, entry := range ds.Ancestry() {
		team := ""
		if entry.Coach.CurrentTeam != nil {
			team = *entry.Coach.CurrentTeam
		}

		status := "OK"
		if entry.Ancestors == 0 {
			status = "NO ANCESTORS"
		}

		t.AppendRow(table.Row{entry.Coach.Name, team, entry.Ancestors, entry.Depth, status})
	}

	t.Render()
}

// RenderSummary prints dataset totals broken down by coach and
// connection kind.
func RenderSummary(ds *dataset.Dataset) {
	currentHCs := 0
	for _, c := range ds.Coaches {
		if c.IsCurrentHC {
			currentHCs++
		}
	}

	treeConns := 0
	overlapConns := 0
	for _, conn := range ds.Connections {
		switch conn.Type {
		case dataset.TypeCoachingTree:
			treeConns++
		case dataset.TypeCareerOverlap:
			overlapConns++
		}
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Metric", "Count"})
	t.AppendRows([]table.Row{
		{"Coaches", len(ds.Coaches)},
		{"Current head coaches", currentHCs},
		{"Historical coaches", len(ds.Coaches) - currentHCs},
		{"Coaching tree connections", treeConns},
		{"Career overlap connections", overlapConns},
		{"Total connections", len(ds.Connections)},
	})

	t.Render()
}
