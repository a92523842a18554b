// Package version holds build metadata injected via ldflags.
package version

// Service is the human-readable service name reported by the root descriptor.
const Service = "MOF-LabAssist Lite"

//nolint:revive // Set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
