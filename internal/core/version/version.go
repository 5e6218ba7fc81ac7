// Package version exposes build metadata for the service and CLI.
package version

import "runtime"

// BuildInfo holds version information about the current build.
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go"`
}

// Info returns the build information. The version, commit, and date variables
// are meant to be stamped at build time, e.g.
// -ldflags "-X 'chatlens/internal/core/version.version=v0.1.0'"
func Info() BuildInfo {
	return BuildInfo{
		Service: "chatlens-api",
		Version: version,
		Commit:  commit,
		Date:    date,
		Go:      runtime.Version(),
	}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
