// Package buildinfo holds version metadata stamped in at release time.
package buildinfo

// Overridden via -ldflags during release builds.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
