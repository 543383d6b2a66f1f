package indep

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/causal/dataset"
)

// Sentinel errors for contract violations. Statistical trouble is never
// an error; it is a Verdict.
var (
	// ErrBadAlpha indicates a significance level outside (0, 1).
	ErrBadAlpha = errors.New("indep: alpha must be in (0,1)")

	// ErrSameVariable indicates x == y.
	ErrSameVariable = errors.New("indep: x and y must be distinct")

	// ErrBadConditioning indicates a conditioning set containing x, y,
	// or a duplicate entry.
	ErrBadConditioning = errors.New("indep: malformed conditioning set")
)

// Verdict is the three-valued outcome of an independence test.
type Verdict int

const (
	// VerdictDependent: independence was rejected (p ≤ alpha).
	VerdictDependent Verdict = iota

	// VerdictIndependent: independence was not rejected (p > alpha).
	VerdictIndependent

	// VerdictIndeterminate: the test could not be trusted (too little
	// data or a numerical failure). Reads as dependence at the boundary.
	VerdictIndeterminate
)

// String implements fmt.Stringer.
func (v Verdict) String() string {
	switch v {
	case VerdictDependent:
		return "dependent"
	case VerdictIndependent:
		return "independent"
	case VerdictIndeterminate:
		return "indeterminate"
	default:
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
}

// Result records one performed independence test: its inputs, the
// estimated p-value, and the verdict. A stream of Results is the audit
// trace of a skeleton search.
type Result struct {
	// X, Y are the tested pair.
	X, Y string

	// Given is the conditioning set, sorted.
	Given []string

	// PValue is the estimated two-sided p-value. NaN when the verdict is
	// VerdictIndeterminate and no estimate was produced.
	PValue float64

	// Verdict is the three-valued outcome.
	Verdict Verdict
}

// Independent collapses the verdict to the oracle's boolean contract:
// true only for VerdictIndependent.
func (r Result) Independent() bool { return r.Verdict == VerdictIndependent }

// String renders the test in trace form, e.g.
// "X ⊥ Y | {Z}: p=0.8312 → independent".
func (r Result) String() string {
	return fmt.Sprintf("%s ⊥ %s | {%s}: p=%.4g → %s",
		r.X, r.Y, strings.Join(r.Given, ","), r.PValue, r.Verdict)
}

// Tester is the conditional-independence oracle interface consumed by
// the skeleton search. Errors are reserved for contract violations
// (unknown variables, malformed inputs); implementations must express
// statistical failure through the verdict, per the conservative policy.
type Tester interface {
	Test(d *dataset.Dataset, x, y string, given []string, alpha float64) (Result, error)
}
