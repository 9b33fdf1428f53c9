// Package actions provides the synchronization engine for hubsync.
// It orchestrates the container runtime and the registry tags API over the
// profile catalog, one profile at a time, one tag at a time.
//
// Key components:
//   - Pull: Pulls every declared tag; the first failure aborts the run.
//   - Push: Retags, pushes, and removes per-target images against a
//     destination registry, expanding each requested tag to its full digest
//     equivalence class; failures are recorded and the batch continues.
//   - Clean: Removes declared tags from the local image store, best-effort.
//   - Sync: Runs Pull to completion, then Push.
//
// Usage example:
//
//	report, err := actions.Push(ctx, store, cache, executor, actions.PushOptions{
//	    Registry: "registry.example.com",
//	})
//	if err != nil {
//	    logrus.WithError(err).Warn("Some push targets failed")
//	}
//
// The package integrates with pkg/profile, pkg/registry, and pkg/runtime,
// using logrus for logging operations and errors.
package actions
