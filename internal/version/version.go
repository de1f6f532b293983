// Package version holds the goflo release metadata printed by
// "goflo version" and the root banner.
//
// Release builds stamp the commit and build time:
//
//	go build -ldflags "\
//	  -X github.com/alexiusacademia/goflo/internal/version.GitCommit=$(git rev-parse --short HEAD) \
//	  -X github.com/alexiusacademia/goflo/internal/version.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package version

var (
	// Version of goflo; bump together with the release tag
	Version = "0.3.0"

	// BuildTime is stamped by release builds, "unknown" otherwise
	BuildTime = "unknown"

	// GitCommit is the short commit hash of release builds
	GitCommit = "unknown"

	Author = "Alexius Academia"

	// Year shown in the banner copyright line
	Year = "2026"
)
