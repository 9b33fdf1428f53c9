package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/hubsync/hubsync/pkg/profile"
	"github.com/hubsync/hubsync/pkg/types"
)

// Clean removes every declared tag of every profile from the local image
// store. Removal is best-effort: an image may already be absent or still in
// use, so individual failures are logged and joined into the returned error
// without stopping the remaining removals.
func Clean(
	ctx context.Context,
	store *profile.Store,
	executor types.RuntimeExecutor,
) error {
	var failures []error

	for _, prof := range store.List() {
		image := prof.Ref().String()

		for _, tag := range prof.Tags {
			imageRef := image + ":" + tag

			logrus.WithFields(logrus.Fields{
				"image": image,
				"tag":   tag,
			}).Info("Removing local image")

			if err := executor.RemoveImage(ctx, imageRef); err != nil {
				logrus.WithError(err).WithField("image", imageRef).
					Warn("Failed to remove local image")

				failures = append(failures, fmt.Errorf("failed to remove %s: %w", imageRef, err))
			}
		}
	}

	return errors.Join(failures...)
}
