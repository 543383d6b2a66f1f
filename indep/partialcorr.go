package indep

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/causal/dataset"
)

// minObservations is the slack beyond |S| required for a stable
// partial-correlation estimate: a test needs n ≥ |S| + 3.
const minObservations = 3

// PartialCorr is the default Tester: a partial-correlation test with a
// Student's-t p-value, the Gaussian special case of conditional
// independence. It is stateless; the zero value is ready to use.
type PartialCorr struct{}

// Test estimates the partial correlation of x and y given `given` and
// reports VerdictIndependent iff the two-sided p-value exceeds alpha.
//
// Implementation:
//  1. Validate the contract (distinct known variables, alpha ∈ (0,1),
//     conditioning set free of x, y and duplicates).
//  2. Degenerate-data gate: n < |given|+3 → VerdictIndeterminate.
//  3. Estimate r: plain Pearson correlation for an empty conditioning
//     set, otherwise off the precision matrix of the (x, y, given...)
//     block as -P₀₁/√(P₀₀·P₁₁).
//  4. t = r·√(dof/(1-r²)) with dof = n-|given|-2; p = 2·(1-T(dof).CDF(|t|)).
//
// Any numerical failure in step 3 (uninvertible or non-finite
// correlation structure) yields VerdictIndeterminate, never an error.
//
// Complexity: O(n·p² + p³) for p = 2+|given|.
func (PartialCorr) Test(d *dataset.Dataset, x, y string, given []string, alpha float64) (Result, error) {
	res := Result{X: x, Y: y, Given: sortedCopy(given), PValue: math.NaN(), Verdict: VerdictIndeterminate}

	if err := validate(d, x, y, given, alpha); err != nil {
		return res, err
	}

	// Degenerate-data gate: refuse to certify independence from too few
	// observations. The edge stays; a later, larger dataset can retest.
	n := d.Len()
	if n < len(given)+minObservations {
		return res, nil
	}

	r, ok := partialR(d, x, y, given)
	if !ok {
		return res, nil
	}

	// Two-sided p-value from Student's t with n-|S|-2 degrees of freedom.
	dof := float64(n - len(given) - 2)
	if 1-r*r <= 0 {
		// |r| = 1: perfect (anti)correlation, certain dependence.
		res.PValue = 0
		res.Verdict = VerdictDependent

		return res, nil
	}
	t := r * math.Sqrt(dof/(1-r*r))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: dof}
	res.PValue = 2 * (1 - dist.CDF(math.Abs(t)))

	if res.PValue > alpha {
		res.Verdict = VerdictIndependent
	} else {
		res.Verdict = VerdictDependent
	}

	return res, nil
}

// partialR estimates the partial correlation of x and y given `given`.
// ok is false on any numerical failure (singular correlation structure,
// degenerate variance); the caller maps that to VerdictIndeterminate.
//
// Order 0 is plain Pearson correlation. Higher orders read the estimate
// off the precision matrix: invert the sample correlation matrix of the
// (x, y, given...) block, then r = -P₀₁/√(P₀₀·P₁₁).
func partialR(d *dataset.Dataset, x, y string, given []string) (float64, bool) {
	if len(given) == 0 {
		xs, _ := d.Column(x)
		ys, _ := d.Column(y)
		r := stat.Correlation(xs, ys, nil)

		return r, !math.IsNaN(r) && !math.IsInf(r, 0)
	}

	// Assemble the (x, y, given...) observation block column by column.
	p := 2 + len(given)
	block := mat.NewDense(d.Len(), p, nil)
	names := append([]string{x, y}, given...)
	for c, name := range names {
		col, _ := d.Column(name) // names validated by the caller
		block.SetCol(c, col)
	}

	corr := mat.NewSymDense(p, nil)
	stat.CorrelationMatrix(corr, block, nil)

	var prec mat.Dense
	if err := prec.Inverse(corr); err != nil {
		// Singular or hopelessly ill-conditioned: cannot be trusted.
		return 0, false
	}
	den := prec.At(0, 0) * prec.At(1, 1)
	if den <= 0 || math.IsNaN(den) || math.IsInf(den, 0) {
		return 0, false
	}
	r := -prec.At(0, 1) / math.Sqrt(den)

	return r, !math.IsNaN(r) && !math.IsInf(r, 0)
}

// validate enforces the oracle contract shared by all Testers.
func validate(d *dataset.Dataset, x, y string, given []string, alpha float64) error {
	if alpha <= 0 || alpha >= 1 {
		return fmt.Errorf("%w: got %v", ErrBadAlpha, alpha)
	}
	if x == y {
		return fmt.Errorf("%w: %q", ErrSameVariable, x)
	}
	for _, name := range []string{x, y} {
		if !d.Has(name) {
			return fmt.Errorf("indep: %w: %q", dataset.ErrUnknownVariable, name)
		}
	}
	seen := make(map[string]struct{}, len(given))
	for _, s := range given {
		if s == x || s == y {
			return fmt.Errorf("%w: contains endpoint %q", ErrBadConditioning, s)
		}
		if !d.Has(s) {
			return fmt.Errorf("indep: %w: %q", dataset.ErrUnknownVariable, s)
		}
		if _, dup := seen[s]; dup {
			return fmt.Errorf("%w: duplicate %q", ErrBadConditioning, s)
		}
		seen[s] = struct{}{}
	}

	return nil
}

// sortedCopy returns a sorted copy of s for stable trace output.
func sortedCopy(s []string) []string {
	out := append([]string(nil), s...)
	sort.Strings(out)

	return out
}
