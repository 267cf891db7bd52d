// Package version carries build information injected at link time.
package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/extlinker/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/extlinker/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/extlinker/internal/version.Date={{.Date}}
)
