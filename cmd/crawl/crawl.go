// Package crawl implements the crawl command, which runs the full
// breadth-first scrape and writes the dataset file.
package crawl

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	cmdcommon "github.com/jonesrussell/coachtree/cmd/common"
	"github.com/jonesrussell/coachtree/internal/crawl"
	"github.com/jonesrussell/coachtree/internal/wiki"
)

// Command returns the crawl command for use in the root command.
func Command() *cobra.Command {
	var (
		maxPages int
		maxDepth int
		output   string
	)

	cmd := &cobra.Command{
		Use:   "crawl",
		Short: "Crawl Wikipedia and build the coaching connections dataset",
		Long: `Seed from the current NFL head coaches, follow coaching tree links
breadth-first up to the configured depth and page budget, infer career
overlap connections from infobox tenures, and write the dataset file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := cmdcommon.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to initialize dependencies: %w", err)
			}

			log := deps.Logger.With("run_id", uuid.NewString())

			crawlerCfg := deps.Config.Crawler
			if maxPages > 0 {
				crawlerCfg.MaxPages = maxPages
			}
			if maxDepth > 0 {
				crawlerCfg.MaxDepth = maxDepth
			}

			client, err := wiki.NewClient(cmd.Context(), &wiki.Config{
				APIBaseURL:     crawlerCfg.APIBaseURL,
				UserAgent:      crawlerCfg.UserAgent,
				Delay:          crawlerCfg.Delay,
				RequestTimeout: crawlerCfg.RequestTimeout,
			}, log)
			if err != nil {
				return fmt.Errorf("failed to create wiki client: %w", err)
			}

			engine := crawl.New(client, &crawl.Config{
				MaxPages:    crawlerCfg.MaxPages,
				MaxDepth:    crawlerCfg.MaxDepth,
				PresentYear: crawlerCfg.PresentYear,
				SeedsPage:   crawlerCfg.SeedsPage,
			}, log)

			ds, err := engine.Run()
			if err != nil {
				return fmt.Errorf("crawl failed: %w", err)
			}

			path := deps.Config.Dataset.Path
			if output != "" {
				path = output
			}

			if saveErr := ds.Save(path); saveErr != nil {
				return fmt.Errorf("failed to write dataset: %w", saveErr)
			}
			log.Info("dataset written", "path", path)

			cmdcommon.RenderSummary(ds)

			return nil
		},
	}

	cmd.Flags().IntVar(&maxPages, "max-pages", 0,
		"Override the max_pages setting (0 means use config default)")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0,
		"Override the max_depth setting (0 means use config default)")
	cmd.Flags().StringVarP(&output, "output", "o", "",
		"Override the dataset output path")

	return cmd
}
