package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hubsync/hubsync/internal/actions"
	"github.com/hubsync/hubsync/internal/flags"
	"github.com/hubsync/hubsync/internal/scheduling"
	"github.com/hubsync/hubsync/pkg/registry"
)

// newSyncCommand creates the sync subcommand: pull-all-then-push-all, either
// once or repeatedly on a cron schedule.
func newSyncCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Pull all declared images, then push them to a destination registry",
		RunE:  runSync,
	}

	flags.RegisterPushFlags(cmd)
	cmd.Flags().String(
		"schedule",
		"",
		"Cron expression for running sync periodically instead of once")

	return cmd
}

// runSync executes one sync pass, or keeps running passes on the given cron
// schedule until interrupted. Each pass gets its own tag-listing cache so
// repeated runs observe fresh registry metadata.
func runSync(cmd *cobra.Command, _ []string) error {
	opts, err := pushOptions(cmd)
	if err != nil {
		return err
	}

	pass := func() error {
		report, err := actions.Sync(
			cmd.Context(),
			store,
			registry.NewCache(tagClient),
			executor,
			opts,
		)

		notifier.Send(fmt.Sprintf(
			"Sync to %s complete: %d targets pushed, %d failed, %d profiles skipped",
			opts.Registry, report.PushedTargets, report.FailedTargets, report.SkippedProfiles,
		))

		return err
	}

	if schedule, _ := cmd.Flags().GetString("schedule"); schedule != "" {
		return scheduling.RunOnSchedule(cmd.Context(), schedule, pass)
	}

	return pass()
}
