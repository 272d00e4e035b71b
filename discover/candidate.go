// Package discover enumerates installed toolchains and picks the best build
// of a requested component.
package discover

import "github.com/quantmind-br/toolpick/version"

// Candidate is a discovered component binary together with the version key
// probed from its toolchain's compiler. Key is nil when the probe produced
// nothing (compiler missing, output unrecognizable); such candidates still
// participate in ranking but lose to anything with a populated key.
type Candidate struct {
	Key  *version.Key
	Path string
}

// Compare orders candidates by key, with a nil key below everything else.
func (c Candidate) Compare(other Candidate) int {
	switch {
	case c.Key == nil && other.Key == nil:
		return 0
	case c.Key == nil:
		return -1
	case other.Key == nil:
		return 1
	}
	return c.Key.Compare(*other.Key)
}
