// Package dsep implements d-separation on a known directed acyclic
// graph, the structural counterpart of statistical conditional
// independence: x and y are d-separated by a set Z exactly when every
// path between them is blocked, i.e. when a faithful distribution over
// the DAG makes x and y independent given Z.
//
// Separated answers the question with the classic active-trail
// reachability procedure (ancestors-of-Z pass, then a direction-tagged
// breadth-first walk).
//
// Oracle wraps a DAG as an indep.Tester, answering independence queries
// from structure instead of data. It is the exact, noise-free oracle:
// running the PC pipeline against it must recover the DAG's equivalence
// class, which makes it both a test harness for the pipeline and a
// faithfulness baseline for callers who know (or hypothesize) the true
// graph.
package dsep
