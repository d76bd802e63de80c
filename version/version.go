// Package version reports build metadata for the img2ascii command.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// Version is the application version, set via ldflags.
	Version = "dev"
	// BuildDate is when the binary was built, set via ldflags.
	BuildDate string

	// Revision is the VCS revision recorded by the Go toolchain.
	Revision = getRevision()
	// GoVersion is the Go version used to build.
	GoVersion = runtime.Version()
)

// String returns a one-line description of the build.
func String() string {
	s := fmt.Sprintf("img2ascii %s (revision %s, %s %s/%s)",
		Version, Revision, GoVersion, runtime.GOOS, runtime.GOARCH)
	if BuildDate != "" {
		s += " built " + BuildDate
	}

	return s
}

func getRevision() string {
	rev := "unknown"

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return rev
	}

	modified := false

	for _, v := range buildInfo.Settings {
		switch v.Key {
		case "vcs.revision":
			rev = v.Value
		case "vcs.modified":
			modified = v.Value == "true"
		}
	}

	if modified {
		return rev + "-dirty"
	}

	return rev
}
