package app

import (
	"fmt"
	"runtime/debug"
)

// ServiceName identifies this service in logs, health output and database
// sessions.
const ServiceName = "riseflow-agreements"

// Version, Commit, and BuildTime are set via ldflags at build time, e.g.
// go build -ldflags "-X github.com/heartmarshall/riseflow-agreements/internal/app.Version=1.4.0".
// Commit falls back to the VCS revision the toolchain embedded.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the version line shown at startup and by /health.
func BuildVersion() string {
	return fmt.Sprintf("%s %s (commit: %s, built: %s)", ServiceName, Version, commit(), BuildTime)
}

func commit() string {
	if Commit != "unknown" {
		return Commit
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Commit
	}
	return vcsRevision(info.Settings)
}

func vcsRevision(settings []debug.BuildSetting) string {
	rev, dirty := "", false
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev == "" {
		return "unknown"
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	if dirty {
		rev += "-dirty"
	}
	return rev
}
