// Package version exposes the pxm-manifest release and the build metadata
// stamped in by the linker.
package version

import (
	"runtime"
	"strings"
)

const (
	// Name is the program name shown in version output
	Name = "pxm-manifest"

	// Version is the release of pxm-manifest and the "version" field of every manifest
	Version = "0.5.0"
)

// Set via -ldflags "-X .../pkg/version.Commit=... -X .../pkg/version.BuildTime=..."
var (
	Commit    string
	BuildTime string
)

// Build describes the running binary
type Build struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuildTime string `json:"build_time,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Current returns the build description of this binary
func Current() Build {
	return Build{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders the build on one line; unset ldflags values are left out
func (b Build) String() string {
	var sb strings.Builder
	sb.WriteString(Name + " " + b.Version)
	if b.Commit != "" {
		sb.WriteString(" commit " + b.Commit)
	}
	if b.BuildTime != "" {
		sb.WriteString(" built " + b.BuildTime)
	}
	sb.WriteString(" (" + b.GoVersion + " " + b.Platform + ")")
	return sb.String()
}

// Short returns the bare release number
func Short() string {
	return Version
}

// Full returns the one-line build description
func Full() string {
	return Current().String()
}
