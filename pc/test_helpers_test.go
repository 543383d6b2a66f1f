package pc_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/causal/dataset"
	"github.com/katalvlaran/causal/dsep"
	"github.com/katalvlaran/causal/pdag"
)

// mustDAG builds a DAG over vars with the given edges or fails the test.
func mustDAG(t *testing.T, vars []string, edges [][2]string) *dsep.DAG {
	t.Helper()
	g, err := dsep.New(vars...)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// placeholderData returns a dataset whose values are irrelevant — used
// when the structural oracle, not the data, answers the tests.
func placeholderData(t *testing.T, vars ...string) *dataset.Dataset {
	t.Helper()
	cols := make([][]float64, len(vars))
	for i := range cols {
		cols[i] = []float64{0, 1, 2}
	}
	d, err := dataset.New(vars, cols)
	require.NoError(t, err)

	return d
}

// gaussianDiamond samples the diamond structural causal model
//
//	A := N(0,1)
//	B := 1.0·A + N(0,1)
//	C := -1.5·A + N(0,1)
//	D := 2.0·B - 1.0·C + N(0,1)
//
// with a fixed seed, so runs are reproducible.
func gaussianDiamond(t *testing.T, n int, seed int64) *dataset.Dataset {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	a := make([]float64, n)
	b := make([]float64, n)
	c := make([]float64, n)
	dd := make([]float64, n)
	for i := 0; i < n; i++ {
		a[i] = rng.NormFloat64()
		b[i] = 1.0*a[i] + rng.NormFloat64()
		c[i] = -1.5*a[i] + rng.NormFloat64()
		dd[i] = 2.0*b[i] - 1.0*c[i] + rng.NormFloat64()
	}
	d, err := dataset.New([]string{"A", "B", "C", "D"}, [][]float64{a, b, c, dd})
	require.NoError(t, err)

	return d
}

// buildPDAG assembles a PDAG with exactly the given undirected and
// directed edges over vars.
func buildPDAG(vars []string, und, dir [][2]string) *pdag.Graph {
	sk := pdag.Complete(vars)
	keep := make(map[[2]string]bool)
	mark := func(a, b string) {
		if b < a {
			a, b = b, a
		}
		keep[[2]string{a, b}] = true
	}
	for _, e := range und {
		mark(e[0], e[1])
	}
	for _, e := range dir {
		mark(e[0], e[1])
	}
	for _, p := range sk.Pairs() {
		if !keep[p] {
			sk.RemoveEdge(p[0], p[1])
		}
	}
	g := pdag.FromSkeleton(sk)
	for _, e := range dir {
		g.DropArc(e[1], e[0]) // leave only e[0] → e[1]
	}

	return g
}

// isDirectedAcyclic reports whether the directed arcs of g (undirected
// edges excluded) form a DAG, via Kahn's algorithm.
func isDirectedAcyclic(g *pdag.Graph) bool {
	nodes := g.Nodes()
	indeg := make(map[string]int, len(nodes))
	for _, u := range nodes {
		for _, v := range nodes {
			if u != v && g.Directed(u, v) {
				indeg[v]++
			}
		}
	}
	queue := make([]string, 0, len(nodes))
	for _, v := range nodes {
		if indeg[v] == 0 {
			queue = append(queue, v)
		}
	}
	seen := 0
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		seen++
		for _, v := range nodes {
			if u != v && g.Directed(u, v) {
				if indeg[v]--; indeg[v] == 0 {
					queue = append(queue, v)
				}
			}
		}
	}

	return seen == len(nodes)
}
