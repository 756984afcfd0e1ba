package cli

import (
	"github.com/spf13/cobra"
)

// newStopCommand creates the stop command.
func newStopCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "stop",
		Aliases: []string{"stop-remove", "rm"},
		Short:   "Stop and remove the application container",
		Long:    "Stop and remove the application container. Succeeds when the container does not exist.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := loadOps(cmd, opts)
			if err != nil {
				return err
			}
			return o.StopRemove(cmd.Context())
		},
	}
}
