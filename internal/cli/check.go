package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newCheckCommand creates the check command.
func newCheckCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that the container runtime is available",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime(cmd, opts)
			if err != nil {
				return err
			}

			if err := rt.IsAvailable(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is available (%s)\n", rt.Name(), rt.Binary())
			return nil
		},
	}
}
