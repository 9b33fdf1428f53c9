package types

// ImageRef identifies one repository in a registry as a (library, repo)
// pair. Library is nil for official images that live in the registry's
// default namespace; a nil library is not the same thing as an empty one,
// and only the canonical form produced by String is used for map keys.
type ImageRef struct {
	// Library is the optional namespace the repository belongs to.
	Library *string
	// Repo is the repository name.
	Repo string
}

// NewImageRef builds an ImageRef from an optional library and a repository
// name. An empty library string is treated as absent.
func NewImageRef(library, repo string) ImageRef {
	ref := ImageRef{Repo: repo}
	if library != "" {
		ref.Library = &library
	}

	return ref
}

// String returns the canonical form of the reference: "repo" when the
// library is absent, "library/repo" otherwise. This is the single source of
// truth for identity formatting; store keys and cache keys both use it.
func (r ImageRef) String() string {
	if r.Library == nil {
		return r.Repo
	}

	return *r.Library + "/" + r.Repo
}
