package pdag

import "sort"

// Skeleton is an undirected graph over a fixed variable set.
// It begins life as the complete graph (see Complete) and is thinned by
// RemoveEdge; edges are never added back.
type Skeleton struct {
	nodes []string                       // canonical node order
	adj   map[string]map[string]struct{} // symmetric adjacency
}

// Complete returns the complete undirected graph over vars.
// The node order of vars becomes the skeleton's canonical order.
// Complexity: O(V²).
func Complete(vars []string) *Skeleton {
	s := &Skeleton{
		nodes: append([]string(nil), vars...),
		adj:   make(map[string]map[string]struct{}, len(vars)),
	}
	for _, v := range vars {
		s.adj[v] = make(map[string]struct{}, len(vars)-1)
	}
	for i, u := range vars {
		for _, v := range vars[i+1:] {
			s.adj[u][v] = struct{}{}
			s.adj[v][u] = struct{}{}
		}
	}

	return s
}

// Nodes returns the variables in canonical order. The slice is a copy.
func (s *Skeleton) Nodes() []string {
	out := make([]string, len(s.nodes))
	copy(out, s.nodes)

	return out
}

// HasEdge reports whether the undirected edge u-v is present.
func (s *Skeleton) HasEdge(u, v string) bool {
	_, ok := s.adj[u][v]

	return ok
}

// RemoveEdge deletes the undirected edge u-v if present.
// Removing an absent edge is a no-op.
func (s *Skeleton) RemoveEdge(u, v string) {
	delete(s.adj[u], v)
	delete(s.adj[v], u)
}

// Neighbors returns the current neighbors of v, sorted.
// It reflects every removal made so far, never a snapshot.
func (s *Skeleton) Neighbors(v string) []string {
	out := make([]string, 0, len(s.adj[v]))
	for u := range s.adj[v] {
		out = append(out, u)
	}
	sort.Strings(out)

	return out
}

// Degree reports the current number of neighbors of v.
func (s *Skeleton) Degree(v string) int { return len(s.adj[v]) }

// EdgeCount reports the current number of undirected edges.
func (s *Skeleton) EdgeCount() int {
	total := 0
	for _, nb := range s.adj {
		total += len(nb)
	}

	return total / 2
}

// Pairs returns every edge exactly once as [2]string{u, v} with u < v,
// ordered lexicographically. The result is a stable iteration base for
// algorithms that mutate the skeleton mid-pass.
func (s *Skeleton) Pairs() [][2]string {
	out := make([][2]string, 0, s.EdgeCount())
	for u, nb := range s.adj {
		for v := range nb {
			if u < v {
				out = append(out, [2]string{u, v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}

		return out[i][1] < out[j][1]
	})

	return out
}

// Clone returns an independent deep copy of the skeleton.
// Phases hand copies across their boundary instead of sharing state.
func (s *Skeleton) Clone() *Skeleton {
	c := &Skeleton{
		nodes: append([]string(nil), s.nodes...),
		adj:   make(map[string]map[string]struct{}, len(s.adj)),
	}
	for u, nb := range s.adj {
		cp := make(map[string]struct{}, len(nb))
		for v := range nb {
			cp[v] = struct{}{}
		}
		c.adj[u] = cp
	}

	return c
}
