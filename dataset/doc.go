// Package dataset defines the tabular input model for causal discovery.
//
// A Dataset is a fixed, ordered set of named numeric variables, each backed
// by one column of i.i.d. observations. All structural validation happens in
// New, before any algorithmic work can touch the data:
//
//   - at least one variable, no duplicate names
//   - one column per name, all columns the same length
//   - every value finite (no NaN, no ±Inf)
//
// Datasets are immutable after construction. Column returns the backing
// slice without copying; callers must treat it as read-only.
package dataset
