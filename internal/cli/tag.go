package cli

import (
	"errors"
	"fmt"

	"github.com/skorokithakis/dockrun/internal/ops"
	"github.com/spf13/cobra"
)

// newTagCommand creates the tag command.
func newTagCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tag <newTag>",
		Short: "Tag the current image",
		Long:  `Tag the current image in the same repository, e.g. "dockrun tag 1.2.3" or "dockrun tag stable"`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := loadOps(cmd, opts)
			if err != nil {
				return err
			}

			newTag := ""
			if len(args) > 0 {
				newTag = args[0]
			}
			if err := o.Tag(cmd.Context(), newTag); err != nil {
				if errors.Is(err, ops.ErrTagRequired) {
					fmt.Fprintln(cmd.ErrOrStderr(), "Usage: dockrun tag <newTag>")
					return errUsage
				}
				return err
			}
			return nil
		},
	}
}
