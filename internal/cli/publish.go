package cli

import (
	"github.com/spf13/cobra"
)

// newPublishCommand creates the publish command.
func newPublishCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "publish",
		Short: "Build the prod image and push it",
		Long: `Build the image for the prod target and push it. When tagLatestOnPublish is
enabled (the default) the image is also tagged and pushed as :latest.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := loadOps(cmd, opts)
			if err != nil {
				return err
			}
			return o.Publish(cmd.Context())
		},
	}
}
