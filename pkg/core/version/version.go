// ============================================================================
// hlog - Typed placeholder log formatter
// ============================================================================
//
// Package:     version
// Description: Central version information for the hlog binary
// Author:      msto63
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version is the release version. GitCommit and BuildDate are set at build
// time via -ldflags "-X github.com/msto63/hlog/pkg/core/version.GitCommit=...".
var (
	Version   = "0.1.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info describes the running build
type Info struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"git_commit" yaml:"git_commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns the one-line form printed by "hlog version --short"
func (i Info) String() string {
	return fmt.Sprintf("hlog v%s (%s)", i.Version, i.GitCommit)
}
