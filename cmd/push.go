package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hubsync/hubsync/internal/actions"
	"github.com/hubsync/hubsync/internal/flags"
	"github.com/hubsync/hubsync/pkg/registry"
)

// newPushCommand creates the push subcommand, which republishes every
// declared tag to the destination registry with digest-alias expansion.
func newPushCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "push",
		Short: "Push declared images to a destination registry",
		RunE:  runPush,
	}

	flags.RegisterPushFlags(cmd)

	return cmd
}

// runPush executes one push pass over the whole catalog and reports the
// outcome through the notifier. Per-target failures are joined into the
// returned error; the pass itself always runs to completion.
func runPush(cmd *cobra.Command, _ []string) error {
	opts, err := pushOptions(cmd)
	if err != nil {
		return err
	}

	report, err := actions.Push(
		cmd.Context(),
		store,
		registry.NewCache(tagClient),
		executor,
		opts,
	)

	notifier.Send(fmt.Sprintf(
		"Push to %s complete: %d targets pushed, %d failed, %d profiles skipped",
		opts.Registry, report.PushedTargets, report.FailedTargets, report.SkippedProfiles,
	))

	return err
}

// pushOptions reads the destination registry and cleanup flags.
func pushOptions(cmd *cobra.Command) (actions.PushOptions, error) {
	registryPrefix, _ := cmd.Flags().GetString("repo")
	if registryPrefix == "" {
		return actions.PushOptions{}, errMissingRepo
	}

	cleanup, _ := cmd.Flags().GetBool("cleanup")

	return actions.PushOptions{Registry: registryPrefix, CleanAfterPush: cleanup}, nil
}
