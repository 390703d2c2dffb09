// Package version holds build metadata injected with -ldflags:
//
//	go build -ldflags "-X github.com/HerbHall/authdeck/internal/version.Version=v0.3.0 \
//	  -X github.com/HerbHall/authdeck/internal/version.GitCommit=$(git rev-parse --short HEAD) \
//	  -X github.com/HerbHall/authdeck/internal/version.BuildDate=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package version

import (
	"fmt"
	"runtime"
)

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Short returns the version string alone.
func Short() string {
	return Version
}

// Info returns a one-line description for --version output.
func Info() string {
	return fmt.Sprintf("authdeck %s (commit %s, built %s, %s %s/%s)",
		Version, GitCommit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Map returns the build metadata for JSON responses.
func Map() map[string]string {
	return map[string]string{
		"version":    Version,
		"git_commit": GitCommit,
		"build_date": BuildDate,
		"go_version": runtime.Version(),
	}
}
