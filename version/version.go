package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"time"
)

// Set at build time with -ldflags -X.
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// Info is the build identity of the running binary.
type Info struct {
	Version   string    `json:"version"`
	Commit    string    `json:"commit,omitempty"`
	Modified  bool      `json:"modified,omitempty"`
	BuildTime time.Time `json:"build_time"`
	GoVersion string    `json:"go_version"`
}

// Get collects the stamped values and fills the gaps from the embedded
// build settings.
func Get() Info {
	return fromBuild(debug.ReadBuildInfo())
}

func fromBuild(bi *debug.BuildInfo, ok bool) Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		GoVersion: runtime.Version(),
	}
	if t, err := time.Parse(time.RFC3339, BuildTime); err == nil {
		info.BuildTime = t
	}
	if !ok {
		return info
	}

	if bi.GoVersion != "" {
		info.GoVersion = bi.GoVersion
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		case "vcs.time":
			if info.BuildTime.IsZero() {
				if t, err := time.Parse(time.RFC3339, s.Value); err == nil {
					info.BuildTime = t
				}
			}
		}
	}
	return info
}

// Release reports whether the binary carries a stamped version from a clean
// tree.
func (i Info) Release() bool {
	return i.Version != "dev" && !i.Modified
}

// Short returns the version, the abbreviated commit and a dirty marker,
// e.g. "1.2.0-3f2a9c1-dirty".
func (i Info) Short() string {
	s := i.Version
	if i.Commit != "" {
		commit := i.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		s += "-" + commit
	}
	if i.Modified {
		s += "-dirty"
	}
	return s
}

// String returns Short plus the toolchain and, when known, the build time.
func (i Info) String() string {
	s := fmt.Sprintf("%s (%s", i.Short(), i.GoVersion)
	if !i.BuildTime.IsZero() {
		s += ", built " + i.BuildTime.UTC().Format(time.RFC3339)
	}
	return s + ")"
}
