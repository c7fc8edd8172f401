// Package validate implements the validate command, which checks
// dataset invariants and reports head-coach ancestry.
package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	cmdcommon "github.com/jonesrussell/coachtree/cmd/common"
	"github.com/jonesrussell/coachtree/internal/dataset"
)

// Command returns the validate command for use in the root command.
func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the dataset and report head-coach ancestry",
		Long: `Check dataset invariants (unique coach ids, unique unordered edge
pairs, no dangling connection endpoints) and print, for each current
head coach, how many mentors are reachable upward through the tree.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			deps, err := cmdcommon.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to initialize dependencies: %w", err)
			}

			ds, err := dataset.Load(deps.Config.Dataset.Path)
			if err != nil {
				return fmt.Errorf("failed to load dataset: %w", err)
			}

			if validateErr := ds.Validate(); validateErr != nil {
				return fmt.Errorf("dataset invariant violated: %w", validateErr)
			}
			deps.Logger.Info("dataset invariants hold",
				"coaches", len(ds.Coaches),
				"connections", len(ds.Connections),
			)

			cmdcommon.RenderSummary(ds)
			cmdcommon.RenderAncestry(ds)

			return nil
		},
	}
}
