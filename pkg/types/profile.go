package types

import (
	"slices"
	"sort"
)

// PullProfile records the wanted tags for one tracked image. Tags are kept
// sorted and unique so repeated runs produce identical output and the
// persisted catalog stays diff-friendly.
type PullProfile struct {
	// Library is the optional registry namespace; nil for official images.
	Library *string `json:"library"`
	// Repo is the repository name within the library.
	Repo string `json:"repo"`
	// Tags is the sorted set of tags to pull for this image.
	Tags []string `json:"tags"`
}

// Ref returns the image identity this profile tracks.
func (p *PullProfile) Ref() ImageRef {
	return ImageRef{Library: p.Library, Repo: p.Repo}
}

// MergeTags unions the given tags into the profile's tag set. Duplicates
// collapse, so merging the same tags twice is a no-op.
func (p *PullProfile) MergeTags(tags []string) {
	for _, tag := range tags {
		if !slices.Contains(p.Tags, tag) {
			p.Tags = append(p.Tags, tag)
		}
	}

	sort.Strings(p.Tags)
}

// SetTags replaces the profile's tag set with a sorted, deduplicated copy
// of the given tags.
func (p *PullProfile) SetTags(tags []string) {
	p.Tags = nil
	p.MergeTags(tags)
}
