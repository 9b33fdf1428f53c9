// Package meta holds build-time metadata for hubsync.
package meta

// Version is the hubsync version string reported at startup and in the
// User-Agent header of registry requests. It can be overridden at build time
// using linker flags (e.g., -ldflags "-X ...meta.Version=v1.0.0").
var Version = "v0.0.0-unknown"
