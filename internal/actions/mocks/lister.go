// Package mocks provides a scriptable TagLister double for the action
// suites, recording how often each identity is fetched.
package mocks

import (
	"context"
	"fmt"

	"github.com/hubsync/hubsync/pkg/registry"
	"github.com/hubsync/hubsync/pkg/types"
)

// StubLister serves canned tag listings keyed by canonical image identity.
type StubLister struct {
	// Listings maps canonical identities to the descriptors to serve.
	Listings map[string][]types.TagDescriptor
	// Errors scripts a fetch failure for an identity instead of a listing.
	Errors map[string]error
	// FetchCounts records how many times each identity was fetched.
	FetchCounts map[string]int
}

// NewStubLister returns an empty lister; identities without a scripted
// listing resolve to a not-found error.
func NewStubLister() *StubLister {
	return &StubLister{
		Listings:    make(map[string][]types.TagDescriptor),
		Errors:      make(map[string]error),
		FetchCounts: make(map[string]int),
	}
}

// FetchTags serves the scripted listing or error for ref.
func (l *StubLister) FetchTags(
	_ context.Context,
	ref types.ImageRef,
) ([]types.TagDescriptor, error) {
	key := ref.String()
	l.FetchCounts[key]++

	if err, ok := l.Errors[key]; ok {
		return nil, err
	}

	listing, ok := l.Listings[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", registry.ErrRegistryNotFound, key)
	}

	return listing, nil
}
