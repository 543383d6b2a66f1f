// Package indep implements the conditional-independence oracle consumed
// by the PC skeleton search.
//
// The oracle answers one question: are x and y statistically independent
// given a conditioning set S, at significance level alpha? The default
// implementation, PartialCorr, estimates the partial correlation of x and
// y controlling for S (via inversion of the sample correlation matrix of
// the (x, y, S...) block) and derives a two-sided p-value from a
// Student's-t distribution with n − |S| − 2 degrees of freedom.
//
// # Conservative failure policy
//
// A false "independent" verdict deletes a skeleton edge permanently, so
// every situation in which the test cannot be trusted must read as
// dependence, never as independence:
//
//   - too few observations (n < |S| + 3)
//   - singular or otherwise uninvertible correlation structure
//   - non-finite partial correlation (degenerate variance)
//
// Internally these are the third verdict, VerdictIndeterminate, so the
// policy lives in one place and each trace entry shows whether an edge
// was kept because of evidence or because of doubt. Independent() then
// collapses the three values to the boolean contract.
//
// The oracle is a pure function of its inputs: same dataset, same
// arguments, same verdict.
package indep
