package pc

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/causal/dataset"
	"github.com/katalvlaran/causal/indep"
)

// Sentinel errors for pipeline entry points.
var (
	// ErrNilDataset indicates a nil *dataset.Dataset.
	ErrNilDataset = errors.New("pc: nil dataset")

	// ErrBadAlpha indicates a significance level outside (0, 1).
	ErrBadAlpha = errors.New("pc: alpha must be in (0,1)")
)

// DefaultAlpha is the conventional significance level for the
// conditional-independence tests.
const DefaultAlpha = 0.05

// Options configures a PC run.
//
// Fields:
//   - Alpha  — significance level in (0, 1) for every independence test;
//     zero selects DefaultAlpha.
//   - Tester — conditional-independence oracle; nil selects
//     indep.PartialCorr. Swap in dsep.Oracle for structural ground truth.
//   - Ctx    — allows cancellation; if nil, context.Background() is used.
//     A cancelled run returns the context error and no result, never a
//     partial graph.
//   - OnTest — called after every independence test with its full
//     Result (inputs, p-value, verdict). Purely observational: the audit
//     trace of the run.
type Options struct {
	Alpha  float64
	Tester indep.Tester
	Ctx    context.Context
	OnTest func(indep.Result)
}

// DefaultOptions returns the standard configuration: alpha 0.05,
// partial-correlation oracle, background context, no trace hook.
func DefaultOptions() Options {
	return Options{Alpha: DefaultAlpha, Tester: indep.PartialCorr{}}
}

// settings is a fully resolved, validated copy of Options.
type settings struct {
	alpha  float64
	tester indep.Tester
	ctx    context.Context
	onTest func(indep.Result)
}

// resolve validates d and opts and fills in the defaults.
func resolve(d *dataset.Dataset, opts *Options) (settings, error) {
	if d == nil {
		return settings{}, ErrNilDataset
	}
	s := settings{
		alpha:  DefaultAlpha,
		tester: indep.PartialCorr{},
		ctx:    context.Background(),
	}
	if opts != nil {
		if opts.Alpha != 0 {
			s.alpha = opts.Alpha
		}
		s.onTest = opts.OnTest
		if opts.Tester != nil {
			s.tester = opts.Tester
		}
		if opts.Ctx != nil {
			s.ctx = opts.Ctx
		}
	}
	if s.alpha <= 0 || s.alpha >= 1 {
		return settings{}, fmt.Errorf("%w: got %v", ErrBadAlpha, s.alpha)
	}

	return s, nil
}
