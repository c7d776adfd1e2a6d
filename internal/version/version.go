package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"time"
)

const defaultVersion = "1.0.0"

var (
	// Name of the application
	AppName = "Skeleton API"

	// Version reported by the health endpoint. Overridden with -ldflags at release time.
	Version = defaultVersion

	// Git commit hash the binary was built from
	Revision = "HEAD"

	// Build date in RFC3339
	BuildDate = ""
)

// fillFromBuildInfo only touches values that ldflags left at their defaults.
// Version is intentionally not taken from the module version: the API reports
// the release it was tagged with, not the Go pseudo-version.
func fillFromBuildInfo(settings map[string]string) {
	if Revision == "HEAD" || Revision == "" {
		if r := settings["vcs.revision"]; r != "" {
			if len(r) > 7 {
				r = r[:7]
			}
			if settings["vcs.modified"] == "true" {
				r += "-dirty"
			}
			Revision = r
		}
	}

	if BuildDate == "" {
		BuildDate = settings["vcs.time"]
	}
}

// Short returns `1.0.0 (5e23a4)`
func Short() string {
	return fmt.Sprintf("%s (%s)", Version, Revision)
}

// Detailed returns `1.0.0 (5e23a4; go1.23.6; linux/amd64; 2025-01-01T00:00:00Z)`
func Detailed() string {
	return fmt.Sprintf("%s (%s; %s; %s/%s; %s)", Version, Revision, runtime.Version(), runtime.GOOS, runtime.GOARCH, BuildDate)
}

// DetailedWithApp prefixes Detailed with the application name.
func DetailedWithApp() string {
	return fmt.Sprintf("%s %s", AppName, Detailed())
}

func init() {
	if info, ok := debug.ReadBuildInfo(); ok && info != nil {
		settings := make(map[string]string, len(info.Settings))
		for _, s := range info.Settings {
			settings[s.Key] = s.Value
		}
		fillFromBuildInfo(settings)
	}
	if BuildDate == "" {
		BuildDate = time.Now().UTC().Format(time.RFC3339)
	}
}
