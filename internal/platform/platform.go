// Package platform holds the executable naming convention of the target
// operating system.
package platform

// ExeName appends the executable suffix the given GOOS requires. Candidate
// matching and compiler-path derivation both go through here so the suffix
// rule lives in one place.
func ExeName(base, goos string) string {
	if goos == "windows" {
		return base + ".exe"
	}
	return base
}
