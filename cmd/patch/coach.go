package patch

import (
	"fmt"

	"github.com/spf13/cobra"

	cmdcommon "github.com/jonesrussell/coachtree/cmd/common"
	"github.com/jonesrussell/coachtree/internal/crawl"
	"github.com/jonesrussell/coachtree/internal/dataset"
	"github.com/jonesrussell/coachtree/internal/wiki"
)

// newCoachCommand creates the `patch coach` command.
func newCoachCommand() *cobra.Command {
	var (
		page      string
		team      string
		currentHC bool
		mentors   []string
	)

	cmd := &cobra.Command{
		Use:   "coach <name>",
		Short: "Re-scrape one coach's page and merge the result",
		Long: `Remove any stale record and connections for the named coach,
re-insert the coach with the given attributes, re-derive connections
from a fresh fetch of the coach's page, and write the dataset back.
Running the same patch twice leaves the dataset unchanged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := cmdcommon.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to initialize dependencies: %w", err)
			}

			name := args[0]
			pageTitle := page
			if pageTitle == "" {
				pageTitle = name
			}

			ds, err := dataset.Load(deps.Config.Dataset.Path)
			if err != nil {
				return fmt.Errorf("failed to load dataset: %w", err)
			}

			crawlerCfg := deps.Config.Crawler
			client, err := wiki.NewClient(cmd.Context(), &wiki.Config{
				APIBaseURL:     crawlerCfg.APIBaseURL,
				UserAgent:      crawlerCfg.UserAgent,
				Delay:          crawlerCfg.Delay,
				RequestTimeout: crawlerCfg.RequestTimeout,
			}, deps.Logger)
			if err != nil {
				return fmt.Errorf("failed to create wiki client: %w", err)
			}

			engine := crawl.New(client, &crawl.Config{
				MaxPages:    crawlerCfg.MaxPages,
				MaxDepth:    crawlerCfg.MaxDepth,
				PresentYear: crawlerCfg.PresentYear,
				SeedsPage:   crawlerCfg.SeedsPage,
			}, deps.Logger)

			if mergeErr := engine.MergeCoachPage(ds, name, pageTitle, team, currentHC, mentors); mergeErr != nil {
				return fmt.Errorf("merge failed: %w", mergeErr)
			}

			if saveErr := ds.Save(deps.Config.Dataset.Path); saveErr != nil {
				return fmt.Errorf("failed to write dataset: %w", saveErr)
			}
			deps.Logger.Info("dataset written", "path", deps.Config.Dataset.Path)

			cmdcommon.RenderSummary(ds)

			return nil
		},
	}

	cmd.Flags().StringVar(&page, "page", "", "Wikipedia page title (defaults to the coach name)")
	cmd.Flags().StringVar(&team, "team", "", "Current team name")
	cmd.Flags().BoolVar(&currentHC, "current-hc", false, "Mark the coach as a current head coach")
	cmd.Flags().StringArrayVar(&mentors, "mentor", nil,
		"Coach id of a known mentor to connect manually (repeatable)")

	return cmd
}
