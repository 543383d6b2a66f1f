// Package pc implements the PC algorithm for constraint-based causal
// structure discovery: from tabular observational data to a completed
// partially directed acyclic graph (CPDAG) representing the
// Markov-equivalence class of causal structures consistent with the
// observed conditional-independence pattern.
//
// # The three phases
//
// BuildSkeleton — start from the complete undirected graph and thin it:
//
//  1. For conditioning-set size k = 0, 1, 2, …:
//     1.1 For every surviving edge (i, j), take the current neighbors of
//     i and of j (each minus the other endpoint) and use the smaller
//     set as the candidate pool. Removals earlier in the same pass
//     shrink the pool for later tests.
//     1.2 If the pool has ≥ k members, test every k-subset S with the
//     independence oracle. The first S with i ⊥ j | S removes the
//     edge and is recorded as sepset(i, j), symmetrically.
//  2. Stop when no node has k neighbors left.
//
// OrientColliders — for every unshielded triple i - k - j (i, j both
// adjacent to k but not to each other): if sepset(i, j) is missing or
// does not contain k, the only consistent explanation is a common
// effect, so orient i → k ← j. Triples whose separator contains k stay
// undirected.
//
// Propagate — apply Meek's four orientation rules until a fixed point,
// restarting from rule 1 after every single orientation:
//
//	R1: k → i - j, k ∦ j            ⇒ i → j  (no new collider at i)
//	R2: i → k → j, i - j            ⇒ i → j  (no cycle)
//	R3: i - k → j, i - l → j, k ∦ l ⇒ i → j  (no new collider at j)
//	R4: i - k, k ∦ j, k → l → j     ⇒ i → j  (discriminating path)
//
// Edges still undirected at the fixed point are genuinely unresolvable:
// multiple causal structures fit the data equally well.
//
// # Guarantees and limits
//
// The pipeline is deterministic for a fixed dataset and alpha (canonical
// edge order, lexicographic subset order, conservative oracle). It is
// sound only under causal sufficiency and faithfulness; violations are
// undetectable locally and yield a self-consistent but wrong graph.
// An edge whose separating set lies above the reachable size bound
// survives the skeleton phase — an intrinsic limit of the search, not a
// defect.
//
// Complexity: worst case exponential in the maximum degree (subset
// enumeration), as for every faithful PC implementation.
package pc
