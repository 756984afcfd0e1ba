package cli

import (
	"github.com/skorokithakis/dockrun/internal/runtime"
	"github.com/spf13/cobra"
)

// newBuildCommand creates the build command.
func newBuildCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "build [target]",
		Short: "Build the image",
		Long: `Build the image for a Dockerfile target (default "dev").

The target is looked up in dockerfileTargets first, so "prod" can map to any stage name.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := loadOps(cmd, opts)
			if err != nil {
				return err
			}

			target := runtime.DefaultTarget
			if len(args) > 0 {
				target = args[0]
			}
			return o.Build(cmd.Context(), target)
		},
	}
}
