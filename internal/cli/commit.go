package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/beaki-design/beaki/internal/aggregate"
	"github.com/beaki-design/beaki/internal/commit"
	"github.com/beaki-design/beaki/internal/fixture"
	"github.com/beaki-design/beaki/internal/harness"
	"github.com/beaki-design/beaki/internal/props"
)

// NewCommitCommand creates the commit subcommand: apply one property edit to
// the selection and print the resulting snapshot.
//
// The value argument uses the harness encoding: numbers and booleans as
// literals, "#rrggbb" colors, "$var:NAME" bindings, "$revert", "$mixed".
// YAML scalar typing applies, so a value YAML would retype can be forced to
// a string by quoting it YAML-style: '"true"' edits a name to the text
// "true".
func NewCommitCommand(opts *RootOptions) *cobra.Command {
	var selectIDs []string

	cmd := &cobra.Command{
		Use:   "commit <fixture.yaml> <property> <value>",
		Short: "Apply a property edit through the transactional commit pipeline",
		Args:  cobra.ExactArgs(3),
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

			prop, err := props.ParseProperty(args[1])
			if err != nil {
				return err
			}
			payload, err := harness.DecodeValue(doc, decodeScalar(args[2]))
			if err != nil {
				return err
			}

			planner := commit.NewPlanner(slog.Default())
			instructions := planner.Plan(prop, payload, selection)
			if err := commit.Execute(doc, instructions, fmt.Sprintf("edit %s", prop)); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "planned %d instruction(s), undo depth %d\n",
				len(instructions), doc.UndoDepth())
			snap := aggregate.ComputeAllProperties(doc.Selection())
			return writeSnapshot(cmd.OutOrStdout(), snap, opts.Format)
		},
	}

	cmd.Flags().StringSliceVar(&selectIDs, "select", nil, "node ids to select (overrides the fixture selection)")
	return cmd
}

// decodeScalar applies YAML scalar typing rules to a raw CLI argument, so
// "0.5" is a number and "true" is a boolean, same as in scenario files.
// A "#rrggbb" argument is a YAML comment and decodes to nil; the raw string
// is kept in that case so color literals survive.
func decodeScalar(raw string) any {
	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil || v == nil {
		return raw
	}
	return v
}
