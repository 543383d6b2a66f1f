package dsep_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/causal/dsep"
	"github.com/katalvlaran/causal/indep"
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

// sep is a shorthand asserting the Separated verdict.
func sep(t *testing.T, g *dsep.DAG, x, y string, given []string, want bool) {
	t.Helper()
	got, err := dsep.Separated(g, x, y, given)
	require.NoError(t, err)
	assert.Equal(t, want, got, "%s vs %s given %v", x, y, given)
}

// TestSeparated_Chain: X → Z → Y. Conditioning on the mediator blocks
// the only trail.
func TestSeparated_Chain(t *testing.T) {
	g := mustDAG(t, []string{"X", "Z", "Y"}, [][2]string{{"X", "Z"}, {"Z", "Y"}})

	sep(t, g, "X", "Y", nil, false)
	sep(t, g, "X", "Y", []string{"Z"}, true)
	sep(t, g, "X", "Z", nil, false)
}

// TestSeparated_Fork: X ← Z → Y. Identical separation pattern to the
// chain — the two are observationally indistinguishable.
func TestSeparated_Fork(t *testing.T) {
	g := mustDAG(t, []string{"X", "Z", "Y"}, [][2]string{{"Z", "X"}, {"Z", "Y"}})

	sep(t, g, "X", "Y", nil, false)
	sep(t, g, "X", "Y", []string{"Z"}, true)
}

// TestSeparated_Collider: X → Z ← Y. Marginally separated; conditioning
// on the collider opens the trail.
func TestSeparated_Collider(t *testing.T) {
	g := mustDAG(t, []string{"X", "Z", "Y"}, [][2]string{{"X", "Z"}, {"Y", "Z"}})

	sep(t, g, "X", "Y", nil, true)
	sep(t, g, "X", "Y", []string{"Z"}, false)
}

// TestSeparated_ColliderDescendant verifies that conditioning on a
// descendant of a collider opens it too.
func TestSeparated_ColliderDescendant(t *testing.T) {
	g := mustDAG(t, []string{"X", "Z", "Y", "W"},
		[][2]string{{"X", "Z"}, {"Y", "Z"}, {"Z", "W"}})

	sep(t, g, "X", "Y", nil, true)
	sep(t, g, "X", "Y", []string{"W"}, false)
}

// TestSeparated_Diamond: A → B, A → C, B → D, C → D.
func TestSeparated_Diamond(t *testing.T) {
	g := mustDAG(t, []string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}})

	sep(t, g, "B", "C", nil, false)                  // common cause A
	sep(t, g, "B", "C", []string{"A"}, true)         // blocked; D collider stays closed
	sep(t, g, "B", "C", []string{"A", "D"}, false)   // conditioning on D reopens
	sep(t, g, "A", "D", []string{"B"}, false)        // path through C still active
	sep(t, g, "A", "D", []string{"B", "C"}, true)    // both routes blocked
}

// TestDAG_Validation verifies constructor and AddEdge errors.
func TestDAG_Validation(t *testing.T) {
	_, err := dsep.New()
	assert.ErrorIs(t, err, dsep.ErrNoVariables)

	_, err = dsep.New("A", "A")
	assert.ErrorIs(t, err, dsep.ErrDuplicateVariable)

	g, err := dsep.New("A", "B", "C")
	require.NoError(t, err)

	assert.ErrorIs(t, g.AddEdge("A", "Z"), dsep.ErrUnknownVariable)
	assert.ErrorIs(t, g.AddEdge("A", "A"), dsep.ErrSelfLoop)

	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))
	assert.ErrorIs(t, g.AddEdge("C", "A"), dsep.ErrCycle)
}

// TestSeparated_Validation verifies query-side contract errors.
func TestSeparated_Validation(t *testing.T) {
	g := mustDAG(t, []string{"A", "B"}, [][2]string{{"A", "B"}})

	_, err := dsep.Separated(g, "A", "A", nil)
	assert.ErrorIs(t, err, dsep.ErrSameVariable)

	_, err = dsep.Separated(g, "A", "Z", nil)
	assert.ErrorIs(t, err, dsep.ErrUnknownVariable)

	_, err = dsep.Separated(g, "A", "B", []string{"A"})
	assert.ErrorIs(t, err, dsep.ErrBadConditioning)
}

// TestParentsChildren verifies sorted accessors.
func TestParentsChildren(t *testing.T) {
	g := mustDAG(t, []string{"A", "B", "C"}, [][2]string{{"A", "C"}, {"B", "C"}})

	assert.Equal(t, []string{"A", "B"}, g.Parents("C"))
	assert.Equal(t, []string{"C"}, g.Children("A"))
	assert.Empty(t, g.Parents("A"))
}

// TestOracle verifies that the structural oracle speaks the Tester
// protocol: p-value 1 with an independent verdict on separation, 0 and
// dependent otherwise.
func TestOracle(t *testing.T) {
	g := mustDAG(t, []string{"X", "Z", "Y"}, [][2]string{{"X", "Z"}, {"Z", "Y"}})
	o := dsep.Oracle{G: g}

	res, err := o.Test(nil, "X", "Y", []string{"Z"}, 0.05)
	require.NoError(t, err)
	assert.Equal(t, indep.VerdictIndependent, res.Verdict)
	assert.Equal(t, 1.0, res.PValue)
	assert.True(t, res.Independent())

	res, err = o.Test(nil, "X", "Y", nil, 0.05)
	require.NoError(t, err)
	assert.Equal(t, indep.VerdictDependent, res.Verdict)
	assert.Equal(t, 0.0, res.PValue)

	_, err = o.Test(nil, "X", "W", nil, 0.05)
	assert.ErrorIs(t, err, dsep.ErrUnknownVariable)
}
