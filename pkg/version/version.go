package version

import (
	"runtime"

	goversion "github.com/hashicorp/go-version"
)

var (
	UnreleasedVersion = "dev"
	// Version is the current git version of the code.  It is filled in by "make build".
	// Make sure to change that target in Makefile if you change its name or package.
	Version = "dev"
)

// Info describes the running ringctl binary.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	Release   bool   `json:"release" yaml:"release"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

func Current() Info {
	return Info{
		Version:   Version,
		Release:   IsRelease(Version),
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// IsRelease reports whether v is a semantic version without a pre-release part, e.g. v0.1.2.
func IsRelease(v string) bool {
	if v == UnreleasedVersion {
		return false
	}
	ver, err := goversion.NewSemver(v)
	if err != nil {
		return false
	}
	return ver.Prerelease() == ""
}
