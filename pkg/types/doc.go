// Package types defines core structs and interfaces shared across hubsync.
// It provides the data model for tracked images and registry metadata, plus
// the ports the synchronization engine is written against.
//
// Key components:
//   - ImageRef: (library, repo) identity with one canonical string form.
//   - PullProfile: a tracked image and its wanted tags.
//   - TagDescriptor: one entry of a registry tag listing.
//   - RuntimeExecutor: Interface for pull/tag/push/remove-image operations.
//   - TagLister: Interface for fetching a full tag listing.
//
// The interfaces exist so the engine in internal/actions can be exercised
// against recording doubles instead of a real runtime or network.
package types
