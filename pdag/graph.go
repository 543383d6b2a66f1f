package pdag

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotUndirected indicates an Orient call on a pair that is not
// currently an undirected edge. Directed edges are final.
var ErrNotUndirected = errors.New("pdag: edge is not undirected")

// EdgeKind classifies an edge of the output graph.
type EdgeKind int

const (
	// EdgeUndirected marks a pair whose direction the data cannot resolve.
	EdgeUndirected EdgeKind = iota

	// EdgeDirected marks an oriented edge From → To.
	EdgeDirected
)

// Edge is one annotated edge of the output PDAG.
// Undirected edges are reported once, with From < To.
type Edge struct {
	From, To string
	Kind     EdgeKind
}

// String renders the edge as "A → B" or "A — B".
func (e Edge) String() string {
	if e.Kind == EdgeDirected {
		return fmt.Sprintf("%s → %s", e.From, e.To)
	}

	return fmt.Sprintf("%s — %s", e.From, e.To)
}

// Graph is a partially directed graph (PDAG) over a fixed variable set.
// Each adjacent pair is either undirected (arcs both ways) or directed
// (a single arc). Absent pairs carry no arc at all.
type Graph struct {
	nodes []string
	arcs  map[string]map[string]struct{} // arc u → v
}

// FromSkeleton returns a Graph with every skeleton edge undirected.
// Complexity: O(V + E).
func FromSkeleton(s *Skeleton) *Graph {
	g := &Graph{
		nodes: s.Nodes(),
		arcs:  make(map[string]map[string]struct{}, len(s.nodes)),
	}
	for _, u := range g.nodes {
		g.arcs[u] = make(map[string]struct{})
	}
	for _, p := range s.Pairs() {
		g.arcs[p[0]][p[1]] = struct{}{}
		g.arcs[p[1]][p[0]] = struct{}{}
	}

	return g
}

// Nodes returns the variables in canonical order. The slice is a copy.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// HasArc reports whether the arc u → v is present.
func (g *Graph) HasArc(u, v string) bool {
	_, ok := g.arcs[u][v]

	return ok
}

// Undirected reports whether u and v are joined by an undirected edge
// (arcs in both directions).
func (g *Graph) Undirected(u, v string) bool {
	return g.HasArc(u, v) && g.HasArc(v, u)
}

// Directed reports whether the edge between u and v is oriented u → v.
func (g *Graph) Directed(u, v string) bool {
	return g.HasArc(u, v) && !g.HasArc(v, u)
}

// Adjacent reports whether any edge joins u and v, in either state.
func (g *Graph) Adjacent(u, v string) bool {
	return g.HasArc(u, v) || g.HasArc(v, u)
}

// DropArc removes the single arc u → v if present. It is the collider
// orientation primitive: dropping k → i from an undirected k-i edge
// leaves the directed edge i → k.
func (g *Graph) DropArc(u, v string) {
	delete(g.arcs[u], v)
}

// Orient resolves the undirected edge i-j to i → j.
// Returns ErrNotUndirected when the pair is absent or already directed;
// an established direction is never reversed.
func (g *Graph) Orient(i, j string) error {
	if !g.Undirected(i, j) {
		return fmt.Errorf("%w: %s-%s", ErrNotUndirected, i, j)
	}
	g.DropArc(j, i)

	return nil
}

// Edges returns the annotated edge list: directed edges as From → To,
// undirected edges once with From < To, sorted for stable output.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0)
	for u, nb := range g.arcs {
		for v := range nb {
			switch {
			case g.HasArc(v, u): // undirected, report once
				if u < v {
					out = append(out, Edge{From: u, To: v, Kind: EdgeUndirected})
				}
			default:
				out = append(out, Edge{From: u, To: v, Kind: EdgeDirected})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		if out[i].To != out[j].To {
			return out[i].To < out[j].To
		}

		return out[i].Kind < out[j].Kind
	})

	return out
}

// Clone returns an independent deep copy of the graph.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		nodes: append([]string(nil), g.nodes...),
		arcs:  make(map[string]map[string]struct{}, len(g.arcs)),
	}
	for u, nb := range g.arcs {
		cp := make(map[string]struct{}, len(nb))
		for v := range nb {
			cp[v] = struct{}{}
		}
		c.arcs[u] = cp
	}

	return c
}

// Equal reports whether g and o have identical node sets and arc sets.
func (g *Graph) Equal(o *Graph) bool {
	if len(g.nodes) != len(o.nodes) || len(g.arcs) != len(o.arcs) {
		return false
	}
	for i, n := range g.nodes {
		if o.nodes[i] != n {
			return false
		}
	}
	for u, nb := range g.arcs {
		onb, ok := o.arcs[u]
		if !ok || len(onb) != len(nb) {
			return false
		}
		for v := range nb {
			if _, ok = onb[v]; !ok {
				return false
			}
		}
	}

	return true
}
