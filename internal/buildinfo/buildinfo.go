// Package buildinfo holds build-time variables injected via ldflags.
package buildinfo

// Populated by -ldflags at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
)
