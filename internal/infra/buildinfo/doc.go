// Package buildinfo exposes build information for kappa-cli:
//
//   - Version: Semantic version (e.g., "1.0.0")
//   - Commit: Git commit hash
//   - BuildTime: Build timestamp
//
// The Go version comes from the runtime.
package buildinfo
