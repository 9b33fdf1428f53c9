// Package profile implements the in-memory store of pull profiles: the
// catalog of tracked images and their wanted tags, keyed by canonical image
// identity. The store is loaded from and saved to disk by pkg/config; the
// engine mutates it in place and never performs I/O on it.
package profile

import (
	"errors"
	"fmt"
	"sort"

	"github.com/hubsync/hubsync/pkg/types"
)

// ErrProfileNotFound indicates a lookup for an identity the store does not
// track. Callers resolve identities from the store's own listing, so hitting
// this is a programming fault rather than a user error.
var ErrProfileNotFound = errors.New("profile not found")

// Store maps canonical image identities to their pull profiles.
//
// The zero value is not usable; call NewStore, or let pkg/config build one
// while decoding the catalog file.
type Store struct {
	// Profiles is keyed by types.ImageRef.String(). JSON encoding writes map
	// keys in sorted order, which keeps the persisted catalog stable.
	Profiles map[string]*types.PullProfile `json:"pull_profiles"`
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{Profiles: make(map[string]*types.PullProfile)}
}

// GetOrCreate returns the profile tracking ref, inserting a new empty one if
// the identity is not tracked yet.
func (s *Store) GetOrCreate(ref types.ImageRef) *types.PullProfile {
	if s.Profiles == nil {
		s.Profiles = make(map[string]*types.PullProfile)
	}

	key := ref.String()
	if existing, ok := s.Profiles[key]; ok {
		return existing
	}

	created := &types.PullProfile{Library: ref.Library, Repo: ref.Repo}
	s.Profiles[key] = created

	return created
}

// MergeTags unions tags into the profile for ref, creating the profile if
// needed. Merging the same tags twice leaves the store unchanged.
func (s *Store) MergeTags(ref types.ImageRef, tags []string) {
	s.GetOrCreate(ref).MergeTags(tags)
}

// ReplaceTags overwrites the tag set of the profile for ref. A profile whose
// tag set becomes empty has no reason to stay tracked and is removed from
// the store.
func (s *Store) ReplaceTags(ref types.ImageRef, tags []string) error {
	key := ref.String()

	prof, ok := s.Profiles[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, key)
	}

	prof.SetTags(tags)
	if len(prof.Tags) == 0 {
		delete(s.Profiles, key)
	}

	return nil
}

// Get returns the profile for ref, or ErrProfileNotFound.
func (s *Store) Get(ref types.ImageRef) (*types.PullProfile, error) {
	prof, ok := s.Profiles[ref.String()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, ref)
	}

	return prof, nil
}

// Keys returns the canonical identities of all tracked profiles in sorted
// order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.Profiles))
	for key := range s.Profiles {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// List returns all tracked profiles in canonical-key order.
func (s *Store) List() []*types.PullProfile {
	profiles := make([]*types.PullProfile, 0, len(s.Profiles))
	for _, key := range s.Keys() {
		profiles = append(profiles, s.Profiles[key])
	}

	return profiles
}
