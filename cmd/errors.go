package cmd

import "errors"

// errMissingRepo indicates push or sync was invoked without a destination
// registry, via neither --repo nor HUBSYNC_PUSH_REGISTRY.
var errMissingRepo = errors.New("no destination registry specified, set --repo")
