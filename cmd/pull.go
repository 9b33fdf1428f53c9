package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hubsync/hubsync/internal/actions"
)

// newPullCommand creates the pull subcommand, which pulls every declared tag
// of every tracked image through the container runtime. The first failed
// pull aborts the run.
func newPullCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Pull all images declared in the catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return actions.Pull(cmd.Context(), store, executor)
		},
	}
}
