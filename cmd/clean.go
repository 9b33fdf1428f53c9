package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hubsync/hubsync/internal/actions"
)

// newCleanCommand creates the clean subcommand, which removes every declared
// tag from the local image store. Removals are best-effort.
func newCleanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove local images declared in the catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return actions.Clean(cmd.Context(), store, executor)
		},
	}
}
