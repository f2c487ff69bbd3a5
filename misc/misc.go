// Package misc provides program identification helpers used by logging,
// reporting and the command line surface.
package misc

import (
	"runtime/debug"
)

const appName = "h2f"

// Set at build time with -ldflags "-X h2f/misc.version=… -X h2f/misc.gitHash=…".
var (
	version = ""
	gitHash = ""
)

// GetAppName returns short program name used for file names, log prefixes and
// temporary directories.
func GetAppName() string {
	return appName
}

// GetVersion returns program version, falling back to module build info when
// it was not stamped during build.
func GetVersion() string {
	if len(version) > 0 {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && len(bi.Main.Version) > 0 {
		return bi.Main.Version
	}
	return "(devel)"
}

// GetGitHash returns VCS revision recorded in build info unless it was
// stamped during build.
func GetGitHash() string {
	if len(gitHash) > 0 {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
