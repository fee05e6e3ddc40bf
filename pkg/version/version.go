// Package version holds the release version of cv.
package version

// Version is overridden at build time with
// -ldflags "-X github.com/Dicklesworthstone/cats_viewer/pkg/version.Version=..."
var Version = "0.1.0"

// String returns the version line printed by `cv version`
func String() string {
	return "cv version " + Version
}
