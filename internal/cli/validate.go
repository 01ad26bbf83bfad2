package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/beaki-design/beaki/internal/fixture"
)

// NewValidateCommand creates the validate subcommand: check a fixture
// against the embedded schema without instantiating it.
func NewValidateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <fixture.yaml>...",
		Short: "Validate fixture documents against the scene schema",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				raw, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				if err := fixture.Validate(raw); err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
					continue
				}
				if opts.Verbose {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d fixture(s) failed validation", failed, len(args))
			}
			return nil
		},
	}
}
