// Package buildinfo holds version metadata injected at build time:
//
//	go build -ldflags "-X github.com/katalvlaran/lvmaze/internal/buildinfo.Version=v0.3.0 \
//	    -X github.com/katalvlaran/lvmaze/internal/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/katalvlaran/lvmaze/internal/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/lvmaze
package buildinfo

import "fmt"

var (
	// Version is the release tag, "dev" for local builds.
	Version = "dev"
	// Commit is the source revision.
	Commit = "none"
	// Date is the build time.
	Date = "unknown"
)

// String returns the build information on three lines.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
