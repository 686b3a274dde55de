// Package version holds build metadata injected at link time via
// -ldflags "-X github.com/tsawler/contour/version.GitRelease=...".
package version

import "runtime"

var (
	// GitRelease is the release tag or "dev" for local builds.
	GitRelease = "dev"
	// GitCommit is the short commit hash of the build.
	GitCommit = "unknown"
	// GitCommitDate is the commit timestamp of the build.
	GitCommitDate = "unknown"
	// GoInfo is the Go toolchain version the binary was built with.
	GoInfo = runtime.Version()
)
