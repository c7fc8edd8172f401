// Package patch implements the patch commands, which correct the
// persisted dataset without re-running the full crawl.
package patch

import "github.com/spf13/cobra"

// Command returns the patch parent command.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patch",
		Short: "Apply targeted corrections to the dataset",
		Long: `Patch the persisted dataset in place: re-scrape a single coach's
page, or merge a hand-maintained list of coaches and connections.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newCoachCommand())
	cmd.AddCommand(newConnectionsCommand())

	return cmd
}
