// Package pdag defines the graph value types the PC phases hand to one
// another: the undirected Skeleton, the SepSet record of separating
// conditioning sets, and the partially directed Graph (PDAG).
//
// All three are plain values with explicit ownership:
//
//   - Skeleton starts as the complete graph over the variable set and only
//     ever loses edges (RemoveEdge is the sole mutator).
//   - SepSet is written during skeleton construction and read-only after;
//     it is keyed by the canonically ordered pair, so both orderings of a
//     removed pair resolve to the same conditioning set.
//   - Graph represents each adjacent pair as undirected (both arcs
//     present) or directed (one arc). Orient resolves an undirected edge;
//     a directed edge is never reversed by later phases.
//
// Iteration helpers (Nodes, Neighbors, Pairs, Edges) return sorted
// results, so algorithms built on top are deterministic for a fixed input.
package pdag
