package types

// Platform describes one (os, architecture) pair an image tag is built for.
type Platform struct {
	OS           string `json:"os"`
	Architecture string `json:"architecture"`
}

// TagDescriptor is one entry of a registry tag listing. It is read-only
// metadata; nothing here is persisted.
//
// Digest may be empty: older registries omit it, and a tag without a digest
// never participates in alias resolution.
type TagDescriptor struct {
	// Name is the tag name, e.g. "latest" or "1.25".
	Name string `json:"name"`
	// Digest is the content digest shared by all aliases of the same build,
	// or empty when the registry did not report one.
	Digest string `json:"digest"`
	// Platforms lists the (os, architecture) pairs the tag was built for.
	Platforms []Platform `json:"images"`
}
