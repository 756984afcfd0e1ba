package cli

import (
	"github.com/spf13/cobra"
)

// newLogsCommand creates the logs command.
func newLogsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "logs",
		Short: "Follow the application container's logs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := loadOps(cmd, opts)
			if err != nil {
				return err
			}
			return o.Logs(cmd.Context())
		},
	}
}
