// Package misc keeps program identification helpers.
package misc

import "runtime/debug"

const appName = "stylc"

// set by the linker during release builds
var (
	version = ""
	gitHash = ""
)

// GetAppName returns program name to be used in logs and names of auxiliary files.
func GetAppName() string {
	return appName
}

// GetVersion returns program version, falling back to module build info when
// the linker did not set one.
func GetVersion() string {
	if version != "" {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		return bi.Main.Version
	}
	return "(devel)"
}

// GetGitHash returns VCS revision the binary was built from.
func GetGitHash() string {
	if gitHash != "" {
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
