package cli

import (
	"github.com/spf13/cobra"
)

// newPsCommand creates the ps command.
func newPsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ps",
		Short: "List the application's containers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := loadOps(cmd, opts)
			if err != nil {
				return err
			}
			return o.Ps(cmd.Context())
		},
	}
}
