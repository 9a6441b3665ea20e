// Package version exposes the build version of the ppd binary.
package version

import (
	"github.com/Masterminds/semver/v3"
)

// version is overridden at build time via -ldflags "-X github.com/ppd-dev/ppd/pkg/version.version=...".
//
//nolint:gochecknoglobals // Set by the linker.
var version = "0.1.0-dev"

// GetVersion returns the version string the binary was built with.
func GetVersion() string {
	return version
}

// Semantic parses the build version. Builds stamped with a non-semver string
// (for example a bare commit hash) report ok=false.
func Semantic() (*semver.Version, bool) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return nil, false
	}
	return v, true
}
