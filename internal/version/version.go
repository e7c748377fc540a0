// Package version reports the build of the widget demo binaries.
package version

// Overridden with -ldflags "-X geowidgets/internal/version.Version=...".
var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)
