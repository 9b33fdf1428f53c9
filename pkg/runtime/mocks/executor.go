// Package mocks provides a recording RuntimeExecutor double so the
// synchronization engine can be tested without a container runtime.
package mocks

import (
	"context"
	"fmt"

	"github.com/hubsync/hubsync/pkg/runtime"
)

// Invocation records one runtime call: the subcommand and its image refs.
type Invocation struct {
	Op   string
	Args []string
}

// RecordingExecutor implements types.RuntimeExecutor by recording every
// invocation instead of shelling out. Failures are scripted per image ref.
type RecordingExecutor struct {
	// Invocations lists every call in order.
	Invocations []Invocation
	// FailPull, FailTag, FailPush and FailRemove script a failure for the
	// given image ref (for tag, the destination ref).
	FailPull   map[string]bool
	FailTag    map[string]bool
	FailPush   map[string]bool
	FailRemove map[string]bool
}

// NewRecordingExecutor returns an executor double that succeeds on every
// call until failures are scripted.
func NewRecordingExecutor() *RecordingExecutor {
	return &RecordingExecutor{
		FailPull:   make(map[string]bool),
		FailTag:    make(map[string]bool),
		FailPush:   make(map[string]bool),
		FailRemove: make(map[string]bool),
	}
}

// Pull records a pull invocation.
func (e *RecordingExecutor) Pull(_ context.Context, imageRef string) error {
	e.record("pull", imageRef)

	return e.scripted(e.FailPull, "pull", imageRef)
}

// Tag records a tag invocation.
func (e *RecordingExecutor) Tag(_ context.Context, sourceRef, destRef string) error {
	e.record("tag", sourceRef, destRef)

	return e.scripted(e.FailTag, "tag", destRef)
}

// Push records a push invocation.
func (e *RecordingExecutor) Push(_ context.Context, imageRef string) error {
	e.record("push", imageRef)

	return e.scripted(e.FailPush, "push", imageRef)
}

// RemoveImage records a remove invocation.
func (e *RecordingExecutor) RemoveImage(_ context.Context, imageRef string) error {
	e.record("remove", imageRef)

	return e.scripted(e.FailRemove, "remove", imageRef)
}

// Ops returns the recorded invocations filtered to one subcommand.
func (e *RecordingExecutor) Ops(op string) []Invocation {
	var matched []Invocation

	for _, invocation := range e.Invocations {
		if invocation.Op == op {
			matched = append(matched, invocation)
		}
	}

	return matched
}

func (e *RecordingExecutor) record(op string, args ...string) {
	e.Invocations = append(e.Invocations, Invocation{Op: op, Args: args})
}

func (e *RecordingExecutor) scripted(failures map[string]bool, op, ref string) error {
	if failures[ref] {
		return fmt.Errorf("%w: scripted %s failure for %s", runtime.ErrRuntimeInvocation, op, ref)
	}

	return nil
}
