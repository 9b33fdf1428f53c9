// Package runtime wraps invocation of the external container-management
// binary. It is deliberately thin: one process per call, console streams
// inherited so runtime output stays attributable to the operation that
// produced it, and the exit status surfaced as an error. Retry and
// continue-on-error policy belongs to internal/actions.
package runtime

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/sirupsen/logrus"
)

// DefaultBinary is the container runtime invoked when none is configured.
const DefaultBinary = "docker"

// ErrRuntimeInvocation indicates the runtime binary could not be launched or
// exited non-zero.
var ErrRuntimeInvocation = errors.New("container runtime invocation failed")

// Executor shells out to a docker-compatible CLI.
type Executor struct {
	binary string
}

// NewExecutor creates an executor for the given runtime binary, defaulting
// to docker when empty. Podman and other docker-compatible CLIs work
// unchanged since only the pull/tag/push/image-rm surface is used.
func NewExecutor(binary string) *Executor {
	if binary == "" {
		binary = DefaultBinary
	}

	return &Executor{binary: binary}
}

// Pull fetches imageRef into the local image store.
func (e *Executor) Pull(ctx context.Context, imageRef string) error {
	return e.run(ctx, "pull", imageRef)
}

// Tag applies destRef as an additional name for sourceRef.
func (e *Executor) Tag(ctx context.Context, sourceRef, destRef string) error {
	return e.run(ctx, "tag", sourceRef, destRef)
}

// Push uploads imageRef to the registry encoded in its name.
func (e *Executor) Push(ctx context.Context, imageRef string) error {
	return e.run(ctx, "push", imageRef)
}

// RemoveImage deletes imageRef from the local image store.
func (e *Executor) RemoveImage(ctx context.Context, imageRef string) error {
	return e.run(ctx, "image", "rm", imageRef)
}

// run executes one runtime subcommand synchronously with inherited streams.
func (e *Executor) run(ctx context.Context, args ...string) error {
	logrus.WithFields(logrus.Fields{
		"binary": e.binary,
		"args":   args,
	}).Debug("Invoking container runtime")

	cmd := exec.CommandContext(ctx, e.binary, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s %v: %w", ErrRuntimeInvocation, e.binary, args, err)
	}

	return nil
}
