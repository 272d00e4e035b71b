package discover

import "sort"

// Best returns the path of the highest-ranked candidate, or false when the
// collection is empty. Ranking is a stable ascending sort with the last
// element taken, so among candidates with identical (version, date) keys the
// one encountered last in input order wins. When directory enumeration order
// varies across platforms or filesystems, the winner among exact ties can
// vary with it.
func Best(candidates []Candidate) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}

	ranked := make([]Candidate, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Compare(ranked[j]) < 0
	})

	return ranked[len(ranked)-1].Path, true
}
