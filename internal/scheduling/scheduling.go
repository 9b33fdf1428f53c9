// Package scheduling drives periodic synchronization runs. It wraps a cron
// scheduler around the sync action, serializes runs through a lock channel,
// and shuts down cleanly on interrupt signals.
package scheduling

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron"
	"github.com/sirupsen/logrus"
)

// shutdownWaitTimeout bounds how long shutdown waits for an in-flight run.
const shutdownWaitTimeout = 60 * time.Second

// RunOnSchedule executes run according to the cron-formatted scheduleSpec
// until the context is cancelled or SIGINT/SIGTERM arrives. Runs never
// overlap: a tick that fires while a run is still in flight is skipped
// rather than queued.
func RunOnSchedule(ctx context.Context, scheduleSpec string, run func() error) error {
	lock := make(chan bool, 1)
	lock <- true

	scheduler := cron.New()

	scheduledRun := func() {
		select {
		case v := <-lock:
			defer func() { lock <- v }()

			if err := run(); err != nil {
				logrus.WithError(err).Error("Scheduled sync finished with errors")
			}
		default:
			logrus.Debug("Skipped scheduled sync, another run still in flight")
		}

		if entries := scheduler.Entries(); len(entries) > 0 {
			logrus.WithField("next_run", entries[0].Next).Debug("Scheduled next sync")
		}
	}

	if err := scheduler.AddFunc(scheduleSpec, scheduledRun); err != nil {
		return fmt.Errorf("failed to schedule syncs: %w", err)
	}

	scheduler.Start()

	logrus.WithFields(logrus.Fields{
		"schedule": scheduleSpec,
		"next_run": scheduler.Entries()[0].Schedule.Next(time.Now()),
	}).Info("Starting scheduled sync mode")

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case <-ctx.Done():
		logrus.Debug("Context cancelled, stopping scheduler")
	case sig := <-interrupt:
		logrus.WithField("signal", sig).Info("Received signal, stopping scheduler")
	}

	scheduler.Stop()
	waitForRunningSync(ctx, lock)

	return nil
}

// waitForRunningSync blocks until an in-flight run releases the lock, the
// wait timeout elapses, or the context is cancelled.
func waitForRunningSync(ctx context.Context, lock chan bool) {
	select {
	case <-lock:
		logrus.Debug("No sync running, shutting down")
	case <-time.After(shutdownWaitTimeout):
		logrus.Warn("Timeout waiting for running sync to finish, shutting down anyway")
	case <-ctx.Done():
		logrus.Warn("Context cancelled while waiting for running sync")
	}
}
