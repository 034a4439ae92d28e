package version

import (
	"fmt"
	"runtime/debug"
)

// FromBuildInfo describes the running binary for the --version flag.
func FromBuildInfo() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unavailable"
	}

	return describe(info)
}

func describe(info *debug.BuildInfo) string {
	var vcs, revision, ts string

	modified := false

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs":
			vcs = setting.Value
		case "vcs.revision":
			revision = setting.Value
		case "vcs.time":
			ts = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		default:
		}
	}

	if revision == "" {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}

		return "unavailable"
	}

	if modified {
		revision += "-dirty"
	}

	if ts == "" {
		return fmt.Sprintf("built from %s revision %s", vcs, revision)
	}

	return fmt.Sprintf("built from %s revision %s at %s", vcs, revision, ts)
}
