package actions

import (
	"context"
	"fmt"

	"github.com/hubsync/hubsync/pkg/profile"
	"github.com/hubsync/hubsync/pkg/types"
)

// Sync runs Pull over the whole catalog and, only if every pull succeeded,
// runs Push. There is no per-image interleaving: pull correctness is a
// precondition for push correctness, so the first failing pull aborts the
// run before any push begins.
func Sync(
	ctx context.Context,
	store *profile.Store,
	lister types.TagLister,
	executor types.RuntimeExecutor,
	opts PushOptions,
) (Report, error) {
	if err := Pull(ctx, store, executor); err != nil {
		return Report{}, fmt.Errorf("sync aborted during pull phase: %w", err)
	}

	return Push(ctx, store, lister, executor, opts)
}
