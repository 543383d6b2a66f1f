package pc

import (
	"github.com/katalvlaran/causal/dataset"
	"github.com/katalvlaran/causal/pdag"
)

// Result bundles the artifacts of a full PC run.
type Result struct {
	// Skeleton is the thinned undirected graph from phase 1.
	Skeleton *pdag.Skeleton

	// SepSet records the separating set of every removed edge.
	SepSet *pdag.SepSet

	// Graph is the completed PDAG: directed edges are identified causal
	// directions, undirected edges are genuinely unresolvable from the
	// data alone.
	Graph *pdag.Graph
}

// Discover runs the full PC pipeline on d: skeleton search, collider
// orientation, Meek propagation. Each phase consumes the complete output
// of the previous one.
//
// Input validation (nil dataset, alpha range) happens before any
// algorithmic work; dataset shape and value validation happened at
// dataset.New. On cancellation or a contract violation inside the
// oracle, Discover returns a nil Result and the error — never a partial
// graph.
func Discover(d *dataset.Dataset, opts *Options) (*Result, error) {
	s, err := resolve(d, opts)
	if err != nil {
		return nil, err
	}

	sk, sep, err := BuildSkeleton(d, opts)
	if err != nil {
		return nil, err
	}
	if err = s.ctx.Err(); err != nil {
		return nil, err
	}

	g := Propagate(OrientColliders(sk, sep))
	if err = s.ctx.Err(); err != nil {
		return nil, err
	}

	return &Result{Skeleton: sk, SepSet: sep, Graph: g}, nil
}
