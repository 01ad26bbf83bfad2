package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beaki-design/beaki/internal/aggregate"
	"github.com/beaki-design/beaki/internal/fixture"
)

// NewAggregateCommand creates the aggregate subcommand.
func NewAggregateCommand(opts *RootOptions) *cobra.Command {
	var selectIDs []string

	cmd := &cobra.Command{
		Use:   "aggregate <fixture.yaml>",
		Short: "Aggregate the selection into a consolidated snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := fixture.Load(args[0])
			if err != nil {
				return err
			}
			if len(selectIDs) > 0 {
				if err := doc.Select(selectIDs...); err != nil {
					return err
				}
			}
			selection := doc.Selection()
			if len(selection) == 0 {
				return fmt.Errorf("nothing selected: pass --select or set a selection in the fixture")
			}

			snap := aggregate.ComputeAllProperties(selection)
			return writeSnapshot(cmd.OutOrStdout(), snap, opts.Format)
		},
	}

	cmd.Flags().StringSliceVar(&selectIDs, "select", nil, "node ids to select (overrides the fixture selection)")
	return cmd
}
