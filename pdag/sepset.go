package pdag

import "sort"

// pairKey is the canonical (lexicographically ordered) form of an
// unordered variable pair, so both orderings share one map entry.
type pairKey struct{ lo, hi string }

func keyOf(i, j string) pairKey {
	if j < i {
		i, j = j, i
	}

	return pairKey{lo: i, hi: j}
}

// SepSet records, for each removed skeleton edge, the conditioning set
// that rendered its endpoints independent. Written during skeleton
// construction, read-only afterwards.
type SepSet struct {
	sets map[pairKey]map[string]struct{}
}

// NewSepSet returns an empty separating-set record.
func NewSepSet() *SepSet {
	return &SepSet{sets: make(map[pairKey]map[string]struct{})}
}

// Record stores s as the separating set for the unordered pair {i, j}.
// The set is copied; later Lookup calls from either ordering see it.
func (ss *SepSet) Record(i, j string, s []string) {
	set := make(map[string]struct{}, len(s))
	for _, v := range s {
		set[v] = struct{}{}
	}
	ss.sets[keyOf(i, j)] = set
}

// Lookup returns the separating set for {i, j} as a sorted copy, and
// whether one was recorded. A missing entry means the edge survived.
func (ss *SepSet) Lookup(i, j string) ([]string, bool) {
	set, ok := ss.sets[keyOf(i, j)]
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)

	return out, true
}

// Contains reports whether v is in the separating set recorded for
// {i, j}. A pair with no recorded set contains nothing.
func (ss *SepSet) Contains(i, j, v string) bool {
	set, ok := ss.sets[keyOf(i, j)]
	if !ok {
		return false
	}
	_, in := set[v]

	return in
}

// Len reports the number of pairs with a recorded separating set.
func (ss *SepSet) Len() int { return len(ss.sets) }
