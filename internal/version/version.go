// Package version holds build-time metadata for the closer CLI.
package version

// Populated at build time via -ldflags.
var (
	Version      = "0.1.0"
	Toolname     = "pkgcloser"
	Organization = "unknown"
	BuildDate    = "unknown"
	CommitSHA    = "unknown"
)
