// Package version exposes build metadata of the plotaid binary.
package version

import "runtime/debug"

const (
	unknown    = "unknown"
	devVersion = "dev"
	shortHash  = 12
)

// Build metadata, overridden through -ldflags "-X".
var (
	Version = devVersion
	Commit  = unknown
	Date    = unknown
)

// InitBinaryVersion fills metadata not set at link time from the module
// build info embedded by the Go toolchain.
func InitBinaryVersion() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	apply(info)
}

func apply(info *debug.BuildInfo) {
	if Version == devVersion && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if Commit == unknown && s.Value != "" {
				Commit = s.Value[:min(len(s.Value), shortHash)]
			}
		case "vcs.time":
			if Date == unknown && s.Value != "" {
				Date = s.Value
			}
		}
	}
}

// String formats the metadata for the version command.
func String() string {
	return Version + " (commit: " + Commit + ", built: " + Date + ")"
}
