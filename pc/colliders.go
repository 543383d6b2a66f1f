package pc

import "github.com/katalvlaran/causal/pdag"

// OrientColliders runs phase 2 of the PC algorithm: initialize a PDAG
// with every skeleton edge undirected, then orient every justified
// v-structure.
//
// For each node k and each pair {i, j} of its neighbors with i and j not
// adjacent (an unshielded triple i - k - j): if the recorded separating
// set of (i, j) is missing or does not contain k, then k cannot lie on
// the path that separated i and j, and the only consistent explanation
// is a common effect — orient i → k ← j by dropping the outgoing arcs
// k → i and k → j. Triples whose separator contains k are left alone.
//
// Nodes and neighbor pairs are visited in canonical order, so the output
// is deterministic. The inputs are not modified.
//
// Complexity: O(V·deg²) triples, O(1) per triple.
func OrientColliders(sk *pdag.Skeleton, sep *pdag.SepSet) *pdag.Graph {
	g := pdag.FromSkeleton(sk)

	for _, k := range sk.Nodes() {
		nb := sk.Neighbors(k)
		for a := 0; a < len(nb); a++ {
			for b := a + 1; b < len(nb); b++ {
				i, j := nb[a], nb[b]
				if sk.HasEdge(i, j) {
					continue // shielded: no v-structure to read
				}
				if sep.Contains(i, j, k) {
					continue // k separated i and j: not a collider
				}
				g.DropArc(k, i)
				g.DropArc(k, j)
			}
		}
	}

	return g
}
