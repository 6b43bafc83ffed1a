package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit, and BuildTime are set via ldflags at build time:
//
//	go build -ldflags "-X github.com/heartmarshall/travelplan-backend/internal/app.Version=1.0.0" ./cmd/server
//
// Without ldflags, Commit and BuildTime fall back to the VCS stamp the Go
// toolchain embeds in module builds.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns a formatted version string for startup logs, the
// health endpoint and tripctl --version.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch {
			case s.Key == "vcs.revision" && commit == "unknown":
				commit = shortRevision(s.Value)
			case s.Key == "vcs.time" && built == "unknown":
				built = s.Value
			}
		}
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit, built)
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}
