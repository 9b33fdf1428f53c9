package registry

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/hubsync/hubsync/pkg/types"
)

// Cache memoizes tag listings per canonical image identity for the lifetime
// of one synchronizer run. Multiple profiles, or multiple tags within one
// profile, routinely resolve the same identity; without the cache each of
// them would trigger an identical network fetch.
//
// Entries are written once and never invalidated within a run. Failed
// fetches are not cached: a profile whose fetch fails is skipped for the
// rest of the pass, so there is nothing to serve a second time.
type Cache struct {
	lister  types.TagLister
	entries map[string][]types.TagDescriptor
}

// NewCache wraps lister with per-identity memoization.
func NewCache(lister types.TagLister) *Cache {
	return &Cache{
		lister:  lister,
		entries: make(map[string][]types.TagDescriptor),
	}
}

// FetchTags returns the cached listing for ref, fetching it through the
// underlying lister at most once per identity.
func (c *Cache) FetchTags(
	ctx context.Context,
	ref types.ImageRef,
) ([]types.TagDescriptor, error) {
	key := ref.String()

	if cached, ok := c.entries[key]; ok {
		logrus.WithField("image", key).Debug("Serving tag listing from cache")

		return cached, nil
	}

	listing, err := c.lister.FetchTags(ctx, ref)
	if err != nil {
		return nil, err
	}

	c.entries[key] = listing

	return listing, nil
}
