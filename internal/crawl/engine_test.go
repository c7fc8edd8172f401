package crawl

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/coachtree/internal/dataset"
	"github.com/jonesrussell/coachtree/internal/logger"
)

const seedsPageTitle = "List of current National Football League head coaches"

// fakeFetcher serves canned page HTML and records every requested title.
type fakeFetcher struct {
	pages map[string]string
	calls []string
}

func (f *fakeFetcher) PageHTML(title string) (string, error) {
	f.calls = append(f.calls, title)

	html, ok := f.pages[title]
	if !ok {
		return "", errors.New("no such page")
	}
	return html, nil
}

func testConfig() *Config {
	return &Config{
		MaxPages:    300,
		MaxDepth:    5,
		PresentYear: 2024,
		SeedsPage:   seedsPageTitle,
	}
}

// seedsPageHTML renders a head-coaches wikitable for the given coaches.
// Names double as page titles, matching how the real table links work.
func seedsPageHTML(coaches ...[2]string) string {
	html := `<table class="wikitable"><tbody>` +
		`<tr><th>Team</th><th>Image</th><th>Coach</th></tr>`
	for _, c := range coaches {
		name, team := c[0], c[1]
		html += fmt.Sprintf(
			`<tr><td>%s</td><td><img/></td><td><a href="/wiki/%s">%s</a></td></tr>`,
			team, name, name,
		)
	}
	return html + `</tbody></table>`
}

func testSeedRows() [][2]string {
	return [][2]string{
		{"Aaron Alpha", "Kansas City Chiefs"},
		{"Bob Bravo", "Buffalo Bills"},
		{"Carl Charlie", "Detroit Lions"},
		{"Dan Delta", "Dallas Cowboys"},
		{"Ed Echo", "Chicago Bears"},
		{"Frank Foxtrot", "Green Bay Packers"},
		{"Gary Golf", "Houston Texans"},
		{"Hank Hotel", "Miami Dolphins"},
		{"Ian India", "New York Jets"},
		{"Jim Juliett", "Seattle Seahawks"},
		{"Karl Kilo", "Denver Broncos"},
		{"Lou Lima", "Atlanta Falcons"},
	}
}

func TestRunFallsBackToStaticRoster(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{pages: map[string]string{}}
	engine := New(fetcher, testConfig(), logger.NewNoOp())

	ds, err := engine.Run()
	require.NoError(t, err)

	assert.Len(t, ds.Coaches, 32, "every fallback head coach is seeded")
	for _, c := range ds.Coaches {
		assert.True(t, c.IsCurrentHC)
	}
	assert.Empty(t, ds.Connections)
	assert.NotEmpty(t, ds.TeamColors)
}

func TestRunExtractsTreeConnections(t *testing.T) {
	t.Parallel()

	alphaPage := `<table class="infobox"><tbody>` +
		`<tr><th>Coaching career</th></tr>` +
		`<tr><td>Kansas City Chiefs (2013–present)</td></tr>` +
		`</tbody></table>` +
		`<h2 id="Coaching_tree">Coaching tree</h2>` +
		`<ul>` +
		`<li>Served under <a href="/wiki/Mel_Mentor">Mel Mentor</a> in Philadelphia</li>` +
		`<li><a href="/wiki/Zed_Zulu">Zed Zulu</a> (2016–2020)</li>` +
		`</ul>` +
		`<h2 id="References">References</h2>`

	fetcher := &fakeFetcher{pages: map[string]string{
		seedsPageTitle: seedsPageHTML(testSeedRows()...),
		"Aaron Alpha":  alphaPage,
	}}

	engine := New(fetcher, testConfig(), logger.NewNoOp())
	ds, err := engine.Run()
	require.NoError(t, err)

	require.True(t, ds.HasCoach("aaron-alpha"))
	require.True(t, ds.HasCoach("mel-mentor"))
	require.True(t, ds.HasCoach("zed-zulu"))

	var mentorEdge, protegeEdge *dataset.Connection
	for i := range ds.Connections {
		conn := &ds.Connections[i]
		switch {
		case conn.Source == "mel-mentor" && conn.Target == "aaron-alpha":
			mentorEdge = conn
		case conn.Source == "aaron-alpha" && conn.Target == "zed-zulu":
			protegeEdge = conn
		}
	}

	require.NotNil(t, mentorEdge, "mentor items produce mentor-to-subject edges")
	assert.Equal(t, dataset.TypeCoachingTree, mentorEdge.Type)

	require.NotNil(t, protegeEdge, "protege items produce subject-to-protege edges")
	require.NotNil(t, protegeEdge.Years)
	assert.Equal(t, "2016-2020", *protegeEdge.Years)

	// Linked coaches were queued for their own pages.
	assert.Contains(t, fetcher.calls, "Mel Mentor")
	assert.Contains(t, fetcher.calls, "Zed Zulu")
}

func TestRunRespectsPageBudget(t *testing.T) {
	t.Parallel()

	pages := map[string]string{seedsPageTitle: seedsPageHTML(testSeedRows()...)}
	for _, row := range testSeedRows() {
		pages[row[0]] = `<p>stub article</p>`
	}

	fetcher := &fakeFetcher{pages: pages}
	cfg := testConfig()
	cfg.MaxPages = 1

	engine := New(fetcher, cfg, logger.NewNoOp())
	_, err := engine.Run()
	require.NoError(t, err)

	// One seeds fetch plus exactly one processed article.
	assert.Equal(t, []string{seedsPageTitle, "Aaron Alpha"}, fetcher.calls)
}

func TestRunFetchFailureDoesNotConsumeBudget(t *testing.T) {
	t.Parallel()

	// Only the fifth seed's article resolves.
	pages := map[string]string{
		seedsPageTitle: seedsPageHTML(testSeedRows()...),
		"Ed Echo":      `<p>stub article</p>`,
	}

	fetcher := &fakeFetcher{pages: pages}
	cfg := testConfig()
	cfg.MaxPages = 1

	engine := New(fetcher, cfg, logger.NewNoOp())
	ds, err := engine.Run()
	require.NoError(t, err)

	// Four failed fetches before the single successful one.
	assert.Len(t, fetcher.calls, 6)
	assert.Equal(t, "Ed Echo", fetcher.calls[5])

	// Seeds stay in the dataset regardless of fetch outcome.
	assert.Len(t, ds.Coaches, len(testSeedRows()))
}

func TestRunHonorsDepthLimit(t *testing.T) {
	t.Parallel()

	chainPage := func(next string) string {
		return `<h2 id="Coaching_tree">Coaching tree</h2>` +
			`<ul><li><a href="/wiki/` + next + `">` + next + `</a></li></ul>` +
			`<h2 id="References">References</h2>`
	}

	fetcher := &fakeFetcher{pages: map[string]string{
		seedsPageTitle: seedsPageHTML(testSeedRows()...),
		"Aaron Alpha":  chainPage("Link One"),
		"Link One":     chainPage("Link Two"),
		"Link Two":     chainPage("Link Three"),
	}}

	cfg := testConfig()
	cfg.MaxDepth = 1

	engine := New(fetcher, cfg, logger.NewNoOp())
	_, err := engine.Run()
	require.NoError(t, err)

	assert.Contains(t, fetcher.calls, "Link One", "depth 1 is inside the limit")
	assert.NotContains(t, fetcher.calls, "Link Two", "depth 2 is beyond the limit")
}

func TestMergeCoachPage(t *testing.T) {
	t.Parallel()

	coachPage := `<h2 id="Coaching_tree">Coaching tree</h2>` +
		`<ul><li>Served under <a href="/wiki/Mel_Mentor">Mel Mentor</a></li></ul>` +
		`<h2 id="References">References</h2>`

	fetcher := &fakeFetcher{pages: map[string]string{"Aaron Alpha": coachPage}}
	engine := New(fetcher, testConfig(), logger.NewNoOp())

	ds := dataset.New()
	require.NoError(t, ds.AddCoach(dataset.Coach{ID: "old-mentor", Name: "Old Mentor"}))
	require.NoError(t, ds.AddCoach(dataset.Coach{ID: "aaron-alpha", Name: "Aaron Alpha"}))
	require.NoError(t, ds.AddConnection(dataset.Connection{
		Source: "old-mentor", Target: "aaron-alpha", Type: dataset.TypeCoachingTree,
	}))

	err := engine.MergeCoachPage(ds, "Aaron Alpha", "Aaron Alpha", "Kansas City Chiefs", true, []string{"old-mentor", "ghost-coach"})
	require.NoError(t, err)

	// The stale edge was replaced by freshly derived and manual ones.
	assert.True(t, ds.HasConnection("mel-mentor", "aaron-alpha"))
	assert.True(t, ds.HasConnection("old-mentor", "aaron-alpha"))
	assert.False(t, ds.HasCoach("ghost-coach"), "unknown manual mentors are not invented")

	coach := findCoach(t, ds, "aaron-alpha")
	assert.True(t, coach.IsCurrentHC)
	require.NotNil(t, coach.CurrentTeam)
	assert.Equal(t, "Kansas City Chiefs", *coach.CurrentTeam)

	// Re-running the merge leaves the dataset unchanged.
	before := len(ds.Connections)
	require.NoError(t, engine.MergeCoachPage(ds, "Aaron Alpha", "Aaron Alpha", "Kansas City Chiefs", true, []string{"old-mentor"}))
	assert.Len(t, ds.Connections, before)
}

func TestMergeCoachPageFetchFailure(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{pages: map[string]string{}}
	engine := New(fetcher, testConfig(), logger.NewNoOp())

	ds := dataset.New()
	require.NoError(t, ds.AddCoach(dataset.Coach{ID: "old-mentor", Name: "Old Mentor"}))

	err := engine.MergeCoachPage(ds, "Aaron Alpha", "Aaron Alpha", "", false, []string{"old-mentor"})
	require.NoError(t, err, "fetch failures still merge the record and manual mentors")

	assert.True(t, ds.HasCoach("aaron-alpha"))
	assert.True(t, ds.HasConnection("old-mentor", "aaron-alpha"))
}

func TestMergeCoachPageRejectsDegenerateName(t *testing.T) {
	t.Parallel()

	engine := New(&fakeFetcher{}, testConfig(), logger.NewNoOp())

	err := engine.MergeCoachPage(dataset.New(), "!!!", "!!!", "", false, nil)
	assert.Error(t, err)
}

func findCoach(t *testing.T, ds *dataset.Dataset, id string) dataset.Coach {
	t.Helper()

	for _, c := range ds.Coaches {
		if c.ID == id {
			return c
		}
	}
	t.Fatalf("coach %q not found", id)
	return dataset.Coach{}
}
