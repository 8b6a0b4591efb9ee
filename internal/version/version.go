// Package version reports build metadata. Version, Commit and Date are set
// with -ldflags "-X deskorg/internal/version.Version=..." for releases and
// fall back to the module build info otherwise.
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info is the complete build metadata.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Get resolves the build metadata.
func Get() Info {
	info := Info{Version: Version, Commit: Commit, Date: Date}
	build, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "dev" || info.Version == "" {
		if v := build.Main.Version; v != "" && v != "(devel)" {
			info.Version = v
		}
	}
	for _, setting := range build.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.Commit == "unknown" || info.Commit == "" {
				info.Commit = setting.Value
			}
		case "vcs.time":
			if info.Date == "unknown" || info.Date == "" {
				info.Date = setting.Value
			}
		}
	}
	return info
}

// String formats the version with a short commit and build date when known.
func (i Info) String() string {
	if i.Commit == "unknown" || len(i.Commit) <= 7 {
		return i.Version
	}
	if i.Date != "unknown" && i.Date != "" {
		return fmt.Sprintf("%s (%s, built %s)", i.Version, i.Commit[:7], i.Date)
	}
	return fmt.Sprintf("%s (%s)", i.Version, i.Commit[:7])
}
