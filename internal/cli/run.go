package cli

import (
	"github.com/spf13/cobra"
)

// newRunCommand creates the run command.
func newRunCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the application container",
		Long:  "Start the application container in the background with the configured ports, volumes, environment and healthcheck",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := loadOps(cmd, opts)
			if err != nil {
				return err
			}
			return o.Run(cmd.Context())
		},
	}
}
