package dataset

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for dataset construction and access.
var (
	// ErrNoVariables indicates an empty variable set.
	ErrNoVariables = errors.New("dataset: no variables")

	// ErrDuplicateVariable indicates two columns share a name.
	ErrDuplicateVariable = errors.New("dataset: duplicate variable name")

	// ErrEmptyVariable indicates a variable with an empty name.
	ErrEmptyVariable = errors.New("dataset: variable name is empty")

	// ErrShapeMismatch indicates len(names) != len(cols).
	ErrShapeMismatch = errors.New("dataset: names/columns count mismatch")

	// ErrRaggedColumns indicates columns of unequal length.
	ErrRaggedColumns = errors.New("dataset: columns have unequal lengths")

	// ErrNonFiniteValue indicates a NaN or infinite observation.
	ErrNonFiniteValue = errors.New("dataset: non-finite value")

	// ErrUnknownVariable indicates a lookup for a name not in the dataset.
	ErrUnknownVariable = errors.New("dataset: unknown variable")
)

// Dataset is an immutable table of named numeric columns.
// Rows are i.i.d. observations; column order is the canonical variable
// order used by every deterministic iteration downstream.
type Dataset struct {
	names []string           // canonical variable order
	index map[string]int     // name → position in names/cols
	cols  [][]float64        // column-major storage
	n     int                // observations per column
}

// New builds a Dataset from parallel name and column slices.
// The input slices are retained, not copied; callers must not mutate them
// after construction.
//
// Errors: ErrNoVariables, ErrShapeMismatch, ErrEmptyVariable,
// ErrDuplicateVariable, ErrRaggedColumns, ErrNonFiniteValue.
// Complexity: O(V·N) for V variables and N observations.
func New(names []string, cols [][]float64) (*Dataset, error) {
	if len(names) == 0 {
		return nil, ErrNoVariables
	}
	if len(names) != len(cols) {
		return nil, fmt.Errorf("%w: %d names, %d columns", ErrShapeMismatch, len(names), len(cols))
	}

	d := &Dataset{
		names: names,
		index: make(map[string]int, len(names)),
		cols:  cols,
		n:     len(cols[0]),
	}
	for i, name := range names {
		if name == "" {
			return nil, ErrEmptyVariable
		}
		if _, dup := d.index[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVariable, name)
		}
		d.index[name] = i

		if len(cols[i]) != d.n {
			return nil, fmt.Errorf("%w: %q has %d rows, want %d", ErrRaggedColumns, name, len(cols[i]), d.n)
		}
		for r, v := range cols[i] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: %q row %d", ErrNonFiniteValue, name, r)
			}
		}
	}

	return d, nil
}

// Len reports the number of observations (rows).
func (d *Dataset) Len() int { return d.n }

// Vars returns the variables in canonical (construction) order.
// The returned slice is a copy and safe to mutate.
func (d *Dataset) Vars() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)

	return out
}

// Has reports whether name is a variable of the dataset.
func (d *Dataset) Has(name string) bool {
	_, ok := d.index[name]

	return ok
}

// Column returns the observations for name.
// The returned slice is the backing storage; treat it as read-only.
func (d *Dataset) Column(name string) ([]float64, error) {
	i, ok := d.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}

	return d.cols[i], nil
}
