package version

import (
	"strings"

	"github.com/Masterminds/semver"
)

// Key ranks toolchain builds by semantic version first and build date second.
// Version may be nil when the build's version string could not be parsed as
// semver; a nil version sorts below any parsed one.
type Key struct {
	Version *semver.Version
	Date    string
}

// NewKey builds a Key from an optional semantic version and a build date.
// The date is expected in YYYY-MM-DD form (what rustc-style tools print),
// which makes lexicographic comparison match chronological order. An unknown
// date is the empty string and sorts below any known date.
func NewKey(v *semver.Version, date string) Key {
	return Key{Version: v, Date: date}
}

// Compare returns -1, 0 or 1 ordering k against other. The version dominates:
// only equal (or equally absent) versions fall through to the date.
func (k Key) Compare(other Key) int {
	switch {
	case k.Version == nil && other.Version == nil:
		// fall through to date
	case k.Version == nil:
		return -1
	case other.Version == nil:
		return 1
	default:
		if c := k.Version.Compare(other.Version); c != 0 {
			return c
		}
	}
	return strings.Compare(k.Date, other.Date)
}
