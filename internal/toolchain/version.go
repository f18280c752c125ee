package toolchain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var versionPattern = regexp.MustCompile(`v?\d+(\.\d+){1,2}`)

// ExtractVersion finds the first version number in a tool's --version output,
// e.g. "git version 2.43.0" or "v20.11.1".
func ExtractVersion(output string) (*semver.Version, error) {
	match := versionPattern.FindString(output)
	if match == "" {
		return nil, fmt.Errorf("no version found in %q", strings.TrimSpace(output))
	}
	return parseSemver(match)
}

// Satisfies reports whether version meets constraint (e.g. ">= 18.0.0").
func Satisfies(version, constraint string) (bool, error) {
	v, err := parseSemver(version)
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", version, err)
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}
	return c.Check(v), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
