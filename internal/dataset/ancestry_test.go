package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/coachtree/internal/dataset"
)

func TestAncestry(t *testing.T) {
	t.Parallel()

	ds := dataset.New()
	require.NoError(t, ds.AddCoach(dataset.Coach{ID: "paul-brown", Name: "Paul Brown"}))
	require.NoError(t, ds.AddCoach(dataset.Coach{ID: "bill-walsh", Name: "Bill Walsh"}))
	require.NoError(t, ds.AddCoach(dataset.Coach{ID: "mike-holmgren", Name: "Mike Holmgren"}))
	require.NoError(t, ds.AddCoach(dataset.Coach{ID: "andy-reid", Name: "Andy Reid", IsCurrentHC: true}))
	require.NoError(t, ds.AddCoach(dataset.Coach{ID: "dave-canales", Name: "Dave Canales", IsCurrentHC: true}))

	// Mentor chain: Paul Brown -> Bill Walsh -> Mike Holmgren -> Andy Reid.
	require.NoError(t, ds.AddConnection(dataset.Connection{
		Source: "paul-brown", Target: "bill-walsh", Type: dataset.TypeCoachingTree,
	}))
	require.NoError(t, ds.AddConnection(dataset.Connection{
		Source: "bill-walsh", Target: "mike-holmgren", Type: dataset.TypeCoachingTree,
	}))
	require.NoError(t, ds.AddConnection(dataset.Connection{
		Source: "mike-holmgren", Target: "andy-reid", Type: dataset.TypeCoachingTree,
	}))

	entries := ds.Ancestry()
	require.Len(t, entries, 2)

	// Sorted by coach name.
	assert.Equal(t, "andy-reid", entries[0].Coach.ID)
	assert.Equal(t, 3, entries[0].Ancestors)
	assert.Equal(t, 3, entries[0].Depth)

	assert.Equal(t, "dave-canales", entries[1].Coach.ID)
	assert.Zero(t, entries[1].Ancestors)
	assert.Zero(t, entries[1].Depth)
}

func TestAncestryCycleTerminates(t *testing.T) {
	t.Parallel()

	ds := dataset.New()
	require.NoError(t, ds.AddCoach(dataset.Coach{ID: "coach-a", Name: "Coach A", IsCurrentHC: true}))
	require.NoError(t, ds.AddCoach(dataset.Coach{ID: "coach-b", Name: "Coach B"}))
	require.NoError(t, ds.AddCoach(dataset.Coach{ID: "coach-c", Name: "Coach C"}))

	require.NoError(t, ds.AddConnection(dataset.Connection{
		Source: "coach-b", Target: "coach-a", Type: dataset.TypeCoachingTree,
	}))
	require.NoError(t, ds.AddConnection(dataset.Connection{
		Source: "coach-c", Target: "coach-b", Type: dataset.TypeCoachingTree,
	}))
	require.NoError(t, ds.AddConnection(dataset.Connection{
		Source: "coach-a", Target: "coach-c", Type: dataset.TypeCoachingTree,
	}))

	entries := ds.Ancestry()
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].Ancestors)
}
