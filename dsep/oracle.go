package dsep

import (
	"math"
	"sort"

	"github.com/katalvlaran/causal/dataset"
	"github.com/katalvlaran/causal/indep"
)

// Oracle adapts a known DAG into an indep.Tester: x ⊥ y | S holds
// exactly when the DAG d-separates x and y given S. The dataset argument
// is ignored (structure is the ground truth), and the reported p-value
// is a degenerate 1 or 0.
//
// Useful for exercising the PC pipeline without statistical noise and as
// a faithfulness baseline against a hypothesized graph.
type Oracle struct {
	G *DAG
}

// Test implements indep.Tester.
func (o Oracle) Test(_ *dataset.Dataset, x, y string, given []string, _ float64) (indep.Result, error) {
	sortedGiven := append([]string(nil), given...)
	sort.Strings(sortedGiven)
	res := indep.Result{X: x, Y: y, Given: sortedGiven, PValue: math.NaN(), Verdict: indep.VerdictIndeterminate}

	sep, err := Separated(o.G, x, y, given)
	if err != nil {
		return res, err
	}
	if sep {
		res.PValue = 1
		res.Verdict = indep.VerdictIndependent
	} else {
		res.PValue = 0
		res.Verdict = indep.VerdictDependent
	}

	return res, nil
}
