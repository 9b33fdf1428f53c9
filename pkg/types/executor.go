package types

import "context"

// RuntimeExecutor is the narrow port to the external container runtime.
//
// Implementations issue one synchronous runtime invocation per call,
// inheriting the caller's output streams, and report a non-zero exit (or a
// failure to launch) as an error. Retry and continue-on-error policy lives
// with the callers, not here.
type RuntimeExecutor interface {
	// Pull fetches imageRef from its source registry into the local store.
	Pull(ctx context.Context, imageRef string) error
	// Tag applies destRef as an additional name for sourceRef.
	Tag(ctx context.Context, sourceRef, destRef string) error
	// Push uploads imageRef to the registry its name points at.
	Push(ctx context.Context, imageRef string) error
	// RemoveImage deletes imageRef from the local store.
	RemoveImage(ctx context.Context, imageRef string) error
}

// TagLister fetches the full tag listing for one image identity.
//
// Both the registry client and the memoizing cache implement it, so callers
// that only need tag metadata cannot tell whether a fetch actually hit the
// network.
type TagLister interface {
	FetchTags(ctx context.Context, ref ImageRef) ([]TagDescriptor, error)
}
