package registry

import "errors"

// Errors for tag listing operations, from most to least transient.
var (
	// ErrRegistryUnreachable indicates the tags endpoint could not be reached
	// at the transport level.
	ErrRegistryUnreachable = errors.New("registry unreachable")
	// ErrRegistryNotFound indicates the registry reported that the repository
	// does not exist.
	ErrRegistryNotFound = errors.New("repository not found in registry")
	// ErrRegistryResponseInvalid indicates the registry answered with an
	// unexpected status or a payload that does not decode as a tag listing.
	ErrRegistryResponseInvalid = errors.New("invalid registry response")
)
