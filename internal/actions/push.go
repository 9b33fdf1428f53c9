package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/distribution/reference"
	"github.com/sirupsen/logrus"

	"github.com/hubsync/hubsync/pkg/profile"
	"github.com/hubsync/hubsync/pkg/types"
)

// PushOptions configures one push pass.
type PushOptions struct {
	// Registry is the destination registry prefix, e.g. "registry.example.com".
	Registry string
	// CleanAfterPush removes every declared local tag once the whole push
	// pass has completed.
	CleanAfterPush bool
}

// Report summarizes one push or sync pass for logging and notifications.
type Report struct {
	// PushedTargets counts targets whose tag, push, and remove sub-steps all
	// succeeded.
	PushedTargets int
	// FailedTargets counts targets where at least one sub-step failed.
	FailedTargets int
	// SkippedProfiles counts profiles skipped because their tag listing
	// could not be fetched.
	SkippedProfiles int
}

// Push publishes every declared tag of every profile to the destination
// registry, expanding each requested tag to its digest equivalence class so
// alias relationships observed upstream survive the mirror.
//
// For each profile the tag listing is resolved once through the lister
// (callers pass a registry.Cache, so repeated identities cost one fetch).
// A listing fetch failure skips that profile's tags but not other profiles.
// Per-target failures in the tag/push/remove sub-steps are recorded and the
// batch continues; the joined failures come back as the error.
func Push(
	ctx context.Context,
	store *profile.Store,
	lister types.TagLister,
	executor types.RuntimeExecutor,
	opts PushOptions,
) (Report, error) {
	var (
		report   Report
		failures []error
	)

	for _, prof := range store.List() {
		ref := prof.Ref()
		image := ref.String()

		listing, err := lister.FetchTags(ctx, ref)
		if err != nil {
			logrus.WithError(err).WithField("image", image).
				Error("Tag listing unavailable, skipping profile")

			report.SkippedProfiles++

			failures = append(failures, err)

			continue
		}

		for _, tag := range prof.Tags {
			sourceRef := image + ":" + tag

			for _, target := range pushTargets(listing, opts.Registry, image, tag) {
				if pushTarget(ctx, executor, sourceRef, target) {
					report.PushedTargets++
				} else {
					report.FailedTargets++

					failures = append(failures, fmt.Errorf("push target %s failed", target))
				}
			}
		}
	}

	if opts.CleanAfterPush {
		if err := Clean(ctx, store, executor); err != nil {
			failures = append(failures, err)
		}
	}

	return report, errors.Join(failures...)
}

// pushTarget runs the three per-target sub-steps: retag the locally pulled
// image as target, push target, then remove the local target tag so repeated
// syncs do not accumulate images. The sub-steps are independent; each is
// attempted even when an earlier one failed, and each failure is logged with
// its target. Reports whether all three succeeded.
func pushTarget(
	ctx context.Context,
	executor types.RuntimeExecutor,
	sourceRef, target string,
) bool {
	fields := logrus.Fields{"source": sourceRef, "target": target}

	if _, err := reference.ParseNormalizedNamed(target); err != nil {
		logrus.WithError(err).WithFields(fields).Error("Invalid push target reference")

		return false
	}

	logrus.WithFields(fields).Info("Pushing image")

	ok := true

	if err := executor.Tag(ctx, sourceRef, target); err != nil {
		logrus.WithError(err).WithFields(fields).Error("Failed to tag image")

		ok = false
	}

	if err := executor.Push(ctx, target); err != nil {
		logrus.WithError(err).WithFields(fields).Error("Failed to push image")

		ok = false
	}

	if err := executor.RemoveImage(ctx, target); err != nil {
		logrus.WithError(err).WithFields(fields).Error("Failed to remove local image")

		ok = false
	}

	return ok
}

// pushTargets resolves the destination references for one requested tag.
//
// The requested tag itself is always the first target. When its descriptor
// is present in the listing and carries a digest, every other tag sharing
// that exact digest is appended in listing order. Descriptors without a
// digest never alias anything, and the list is deduplicated because the
// equivalence class always contains the requested tag itself.
func pushTargets(
	listing []types.TagDescriptor,
	registry, image, tag string,
) []string {
	targets := []string{registry + "/" + image + ":" + tag}

	var requested *types.TagDescriptor

	for i := range listing {
		if listing[i].Name == tag {
			requested = &listing[i]

			break
		}
	}

	if requested == nil || requested.Digest == "" {
		return targets
	}

	seen := map[string]bool{tag: true}

	for _, descriptor := range listing {
		if descriptor.Digest != requested.Digest || seen[descriptor.Name] {
			continue
		}

		seen[descriptor.Name] = true

		targets = append(targets, registry+"/"+image+":"+descriptor.Name)
	}

	return targets
}
