// Package buildinfo carries version metadata injected at build time.
package buildinfo

import "fmt"

// Set via -ldflags at release build; the defaults identify a dev build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String formats the version line shown by --version.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
