package actions

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/hubsync/hubsync/pkg/profile"
	"github.com/hubsync/hubsync/pkg/types"
)

// Pull fetches every declared tag of every profile through the container
// runtime, in canonical profile order and sorted tag order.
//
// A failed pull is fatal: having every declared image present locally is a
// precondition for pushing, so the first failure aborts the remaining pulls
// and, when called from Sync, the whole run.
func Pull(
	ctx context.Context,
	store *profile.Store,
	executor types.RuntimeExecutor,
) error {
	for _, prof := range store.List() {
		image := prof.Ref().String()

		for _, tag := range prof.Tags {
			imageRef := image + ":" + tag

			logrus.WithFields(logrus.Fields{
				"image": image,
				"tag":   tag,
			}).Info("Pulling image")

			if err := executor.Pull(ctx, imageRef); err != nil {
				return fmt.Errorf("failed to pull %s: %w", imageRef, err)
			}
		}
	}

	return nil
}
