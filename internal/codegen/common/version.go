package common

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Version is set via ldflags at build time:
// -ldflags "-X github.com/openminted/xsdgen/internal/codegen/common.Version=x.y.z"
var Version = ""

// GetVersion returns the version string that was set at build time via ldflags.
// Returns "0.0.1-dev" if Version is empty (development builds only).
func GetVersion() (string, error) {
	if Version == "" {
		return "0.0.1-dev", nil
	}

	version := strings.TrimPrefix(Version, "v")
	baseVersion := strings.SplitN(version, "-", 2)[0]
	if !strings.Contains(baseVersion, ".") {
		return "", errors.Newf("invalid version format: %s (expected x.y.z)", Version)
	}

	return version, nil
}
