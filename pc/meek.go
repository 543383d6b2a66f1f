package pc

import "github.com/katalvlaran/causal/pdag"

// Propagate runs phase 3 of the PC algorithm: Meek's four orientation
// rules, applied to a clone of g until a full scan orients nothing.
// After every single orientation the scan restarts from rule 1, since an
// orientation can unlock earlier rules. Termination is guaranteed: each
// application converts one undirected edge and none is ever reverted.
//
// The result is the completed PDAG. Running Propagate on its own output
// returns an identical graph.
func Propagate(g *pdag.Graph) *pdag.Graph {
	out := g.Clone()
	for orientOnce(out) {
	}

	return out
}

// orientOnce scans the rules in order and applies at most one
// orientation, reporting whether it did.
func orientOnce(g *pdag.Graph) bool {
	nodes := g.Nodes()
	for _, i := range nodes {
		for _, j := range nodes {
			if i == j || !g.Undirected(i, j) {
				continue
			}
			if rule1(g, nodes, i, j) || rule2(g, nodes, i, j) ||
				rule3(g, nodes, i, j) || rule4(g, nodes, i, j) {
				return true
			}
		}
	}

	return false
}

// rule1 orients i → j when some k → i exists with k not adjacent to j.
// The reverse orientation would create the unshielded collider
// k → i ← j, which phase 2 would already have found.
func rule1(g *pdag.Graph, nodes []string, i, j string) bool {
	for _, k := range nodes {
		if k == i || k == j {
			continue
		}
		if g.Directed(k, i) && !g.Adjacent(k, j) {
			return orient(g, i, j)
		}
	}

	return false
}

// rule2 orients i → j when a directed path i → k → j exists.
// The reverse orientation would close the cycle i → k → j → i.
func rule2(g *pdag.Graph, nodes []string, i, j string) bool {
	for _, k := range nodes {
		if k == i || k == j {
			continue
		}
		if g.Directed(i, k) && g.Directed(k, j) {
			return orient(g, i, j)
		}
	}

	return false
}

// rule3 orients i → j when two non-adjacent k, l both satisfy
// i - k → j and i - l → j. Either reverse choice would force a new
// collider at j.
func rule3(g *pdag.Graph, nodes []string, i, j string) bool {
	var candidates []string
	for _, k := range nodes {
		if k == i || k == j {
			continue
		}
		if g.Undirected(i, k) && g.Directed(k, j) {
			candidates = append(candidates, k)
		}
	}
	for a := 0; a < len(candidates); a++ {
		for b := a + 1; b < len(candidates); b++ {
			if !g.Adjacent(candidates[a], candidates[b]) {
				return orient(g, i, j)
			}
		}
	}

	return false
}

// rule4 orients i → j when some k with i - k, k not adjacent to j, has
// a directed path k → l → j. Resolves discriminating-path
// configurations consistently with the rest of the graph.
func rule4(g *pdag.Graph, nodes []string, i, j string) bool {
	for _, k := range nodes {
		if k == i || k == j {
			continue
		}
		if !g.Undirected(i, k) || g.Adjacent(k, j) {
			continue
		}
		for _, l := range nodes {
			if l == i || l == j || l == k {
				continue
			}
			if g.Directed(k, l) && g.Directed(l, j) {
				return orient(g, i, j)
			}
		}
	}

	return false
}

// orient resolves i - j to i → j; the caller guarantees the edge is
// currently undirected, so failure cannot occur.
func orient(g *pdag.Graph, i, j string) bool {
	return g.Orient(i, j) == nil
}
