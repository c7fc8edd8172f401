package patch

import (
	"fmt"

	"github.com/spf13/cobra"

	cmdcommon "github.com/jonesrussell/coachtree/cmd/common"
	"github.com/jonesrussell/coachtree/internal/dataset"
)

// newConnectionsCommand creates the `patch connections` command.
func newConnectionsCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "connections",
		Short: "Merge a manual patch file of coaches and connections",
		Long: `Merge a hand-maintained JSON patch file into the dataset. Coaches
already present are kept; connections already present in either
direction, or referencing unknown coach ids, are skipped. Finishes with
the per-head-coach ancestry report.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			deps, err := cmdcommon.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to initialize dependencies: %w", err)
			}

			ds, err := dataset.Load(deps.Config.Dataset.Path)
			if err != nil {
				return fmt.Errorf("failed to load dataset: %w", err)
			}

			p, err := dataset.LoadPatch(file)
			if err != nil {
				return fmt.Errorf("failed to load patch file: %w", err)
			}

			coachesAdded, connsAdded := ds.ApplyPatch(p, deps.Logger)

			if saveErr := ds.Save(deps.Config.Dataset.Path); saveErr != nil {
				return fmt.Errorf("failed to write dataset: %w", saveErr)
			}

			deps.Logger.Info("patch applied",
				"coaches_added", coachesAdded,
				"connections_added", connsAdded,
				"path", deps.Config.Dataset.Path,
			)

			cmdcommon.RenderSummary(ds)
			cmdcommon.RenderAncestry(ds)

			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Patch file to merge (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
