package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the skiff version",
	Run: func(cmd *cobra.Command, args []string) {
		version := NormalizeVersion(Version)
		if version == "" {
			version = Version
		}
		fmt.Fprintf(cmd.OutOrStdout(), "skiff version %s (built %s)\n", version, BuildTime)
	},
}

// NormalizeVersion returns a canonical release version, or empty if the
// version is not a valid release (dev builds, pseudo-versions from
// go install). Explicit prerelease tags (v0.2.0-rc1) are allowed.
//
// Examples:
//
//	"v0.1.0"                          -> "v0.1.0"
//	"0.1.0"                           -> "v0.1.0"
//	"skiff-v0.1.0"                    -> "v0.1.0"
//	"v0.2.0-rc1"                      -> "v0.2.0-rc1" (prerelease allowed)
//	"0.1.0-dev"                       -> "" (dev build)
//	"v0.2.1-0.20260122153045-abc123"  -> "" (pseudo-version)
func NormalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	version = strings.TrimPrefix(version, "skiff-")

	// Reject -dev builds
	if strings.HasSuffix(version, "-dev") {
		return ""
	}

	// Reject Go pseudo-versions (v0.2.1-0.20260122153045-abc123)
	if strings.Contains(version, "-0.") {
		return ""
	}

	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	if !semver.IsValid(version) {
		return ""
	}
	// Require a full X.Y.Z release, not a shorthand like v1.2.
	if semver.Canonical(version) != version {
		return ""
	}
	return version
}
