// Package causal is an in-memory toolkit for constraint-based causal
// structure discovery: feed it tabular observational data, get back a
// representative of the Markov-equivalence class of causal graphs
// consistent with the data.
//
// 🚀 What is causal?
//
//	A small, deterministic implementation of the PC algorithm:
//		• Dataset model: named numeric columns, validated up front
//		• Independence oracle: partial-correlation tests with a
//		  conservative failure policy (doubt keeps the edge)
//		• Skeleton search: level-wise conditioning-set growth
//		• Collider orientation: v-structures from separating sets
//		• Meek propagation: four orientation rules to a fixed point
//		• d-separation: exact structural independence on a known DAG
//
// ✨ Why choose causal?
//
//   - Deterministic — fixed iteration orders, same graph for same data
//   - Conservative — statistical doubt never deletes an edge
//   - Hookable — observe every independence test as it happens
//   - Honest — unresolvable edge directions stay undirected
//
// Everything is organized under five subpackages:
//
//	dataset/ — tabular input model and validation
//	indep/   — conditional-independence oracle (partial correlation)
//	pdag/    — Skeleton, SepSet and PDAG value types
//	dsep/    — d-separation on a known DAG + structural oracle
//	pc/      — the three PC phases and the Discover pipeline
//
// Quick ASCII example (a diamond):
//
//	    A            A
//	   / \          / \
//	  B   C   ⇒   B   C     PC recovers B→D and C→D; the A edges
//	   \ /          ↘ ↙     stay undirected — chain and fork are
//	    D            D      observationally indistinguishable here.
//
// The algorithm assumes causal sufficiency and faithfulness; when the true
// process violates them it still returns a self-consistent graph, so treat
// the output as "consistent with the data", not ground truth.
//
//	go get github.com/katalvlaran/causal/pc
package causal
