package app

import "runtime/debug"

// Version is stamped at link time:
// -ldflags "-X github.com/heartmarshall/adminos-backend/internal/app.Version=v1.2.0"
var Version = "dev"

// BuildVersion appends the VCS revision the toolchain embedded, if any.
func BuildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Version
	}
	var rev, dirty string
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			if s.Value == "true" {
				dirty = "+dirty"
			}
		}
	}
	if rev == "" {
		return Version
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	return Version + " (" + rev + dirty + ")"
}
