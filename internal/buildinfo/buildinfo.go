// Package buildinfo carries the version, commit, and build date injected
// via ldflags and interprets the version as semver.
package buildinfo

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Info describes the running binary.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Semver parses Version, tolerating a leading "v".
func (i Info) Semver() (*semver.Version, error) {
	v, err := semver.NewVersion(strings.TrimPrefix(i.Version, "v"))
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", i.Version, err)
	}
	return v, nil
}

// IsRelease reports whether Version is a semver release without a
// prerelease suffix. Local builds ("dev") are not releases.
func (i Info) IsRelease() bool {
	v, err := i.Semver()
	if err != nil {
		return false
	}
	return v.Prerelease() == ""
}

// String renders the one-line form used by "version".
func (i Info) String() string {
	version := i.Version
	if v, err := i.Semver(); err == nil {
		version = v.String()
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, i.Commit, i.Date)
}
