package dsep

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for DAG construction and queries.
var (
	// ErrNoVariables indicates an empty variable set.
	ErrNoVariables = errors.New("dsep: no variables")

	// ErrDuplicateVariable indicates a repeated variable name.
	ErrDuplicateVariable = errors.New("dsep: duplicate variable")

	// ErrUnknownVariable indicates a reference to a variable not in the DAG.
	ErrUnknownVariable = errors.New("dsep: unknown variable")

	// ErrSelfLoop indicates an edge from a variable to itself.
	ErrSelfLoop = errors.New("dsep: self-loop")

	// ErrCycle indicates an edge that would create a directed cycle.
	ErrCycle = errors.New("dsep: edge would create a cycle")

	// ErrSameVariable indicates a separation query with x == y.
	ErrSameVariable = errors.New("dsep: x and y must be distinct")

	// ErrBadConditioning indicates a conditioning set containing x or y.
	ErrBadConditioning = errors.New("dsep: conditioning set contains an endpoint")
)

// DAG is a minimal directed acyclic graph over named variables.
type DAG struct {
	nodes    []string
	parents  map[string]map[string]struct{}
	children map[string]map[string]struct{}
}

// New returns an edgeless DAG over vars.
// Errors: ErrNoVariables, ErrDuplicateVariable.
func New(vars ...string) (*DAG, error) {
	if len(vars) == 0 {
		return nil, ErrNoVariables
	}
	g := &DAG{
		nodes:    append([]string(nil), vars...),
		parents:  make(map[string]map[string]struct{}, len(vars)),
		children: make(map[string]map[string]struct{}, len(vars)),
	}
	for _, v := range vars {
		if _, dup := g.parents[v]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVariable, v)
		}
		g.parents[v] = make(map[string]struct{})
		g.children[v] = make(map[string]struct{})
	}

	return g, nil
}

// AddEdge inserts the directed edge from → to.
// Errors: ErrUnknownVariable, ErrSelfLoop, ErrCycle.
// Complexity: O(V + E) per call (cycle check).
func (g *DAG) AddEdge(from, to string) error {
	if _, ok := g.parents[from]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownVariable, from)
	}
	if _, ok := g.parents[to]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownVariable, to)
	}
	if from == to {
		return fmt.Errorf("%w: %q", ErrSelfLoop, from)
	}
	if g.reaches(to, from) {
		return fmt.Errorf("%w: %s → %s", ErrCycle, from, to)
	}
	g.children[from][to] = struct{}{}
	g.parents[to][from] = struct{}{}

	return nil
}

// Nodes returns the variables in construction order. The slice is a copy.
func (g *DAG) Nodes() []string {
	out := make([]string, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Parents returns the parents of v, sorted.
func (g *DAG) Parents(v string) []string { return sortedKeys(g.parents[v]) }

// Children returns the children of v, sorted.
func (g *DAG) Children(v string) []string { return sortedKeys(g.children[v]) }

// reaches reports whether a directed path from start to target exists.
func (g *DAG) reaches(start, target string) bool {
	if start == target {
		return true
	}
	seen := map[string]struct{}{start: {}}
	queue := []string{start}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for c := range g.children[v] {
			if c == target {
				return true
			}
			if _, ok := seen[c]; !ok {
				seen[c] = struct{}{}
				queue = append(queue, c)
			}
		}
	}

	return false
}

// direction tags how the active-trail walk arrived at a node.
type direction int

const (
	fromChild  direction = iota // moving upward along an edge
	fromParent                  // moving downward along an edge
)

// visit is one queue item of the reachability walk.
type visit struct {
	node string
	dir  direction
}

// Separated reports whether x and y are d-separated given the
// conditioning set `given`.
//
// Algorithm (active-trail reachability):
//  1. Mark An(Z): every member of `given` and all its ancestors.
//     Only these can activate a collider.
//  2. Breadth-first walk from x over (node, arrival-direction) states:
//     arriving from a child, an unconditioned node passes the trail to
//     parents and children; arriving from a parent, an unconditioned
//     node passes it to children, and a node in An(Z) passes it back up
//     to parents (an activated collider).
//  3. x and y are d-separated iff the walk never reaches y.
//
// Complexity: O(V + E).
func Separated(g *DAG, x, y string, given []string) (bool, error) {
	if x == y {
		return false, fmt.Errorf("%w: %q", ErrSameVariable, x)
	}
	for _, v := range []string{x, y} {
		if _, ok := g.parents[v]; !ok {
			return false, fmt.Errorf("%w: %q", ErrUnknownVariable, v)
		}
	}
	conditioned := make(map[string]struct{}, len(given))
	for _, v := range given {
		if _, ok := g.parents[v]; !ok {
			return false, fmt.Errorf("%w: %q", ErrUnknownVariable, v)
		}
		if v == x || v == y {
			return false, fmt.Errorf("%w: %q", ErrBadConditioning, v)
		}
		conditioned[v] = struct{}{}
	}

	// Stage 1: ancestors of the conditioning set (including itself).
	anc := make(map[string]struct{}, len(conditioned))
	stack := make([]string, 0, len(conditioned))
	for v := range conditioned {
		anc[v] = struct{}{}
		stack = append(stack, v)
	}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for p := range g.parents[v] {
			if _, ok := anc[p]; !ok {
				anc[p] = struct{}{}
				stack = append(stack, p)
			}
		}
	}

	// Stage 2: direction-tagged BFS from x.
	seen := make(map[visit]struct{})
	queue := []visit{{node: x, dir: fromChild}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if _, ok := seen[cur]; ok {
			continue
		}
		seen[cur] = struct{}{}

		_, inZ := conditioned[cur.node]
		if !inZ && cur.node == y {
			return false, nil // active trail found
		}

		switch cur.dir {
		case fromChild:
			if inZ {
				break
			}
			for p := range g.parents[cur.node] {
				queue = append(queue, visit{node: p, dir: fromChild})
			}
			for c := range g.children[cur.node] {
				queue = append(queue, visit{node: c, dir: fromParent})
			}
		case fromParent:
			if !inZ {
				for c := range g.children[cur.node] {
					queue = append(queue, visit{node: c, dir: fromParent})
				}
			}
			if _, inAnc := anc[cur.node]; inAnc {
				for p := range g.parents[cur.node] {
					queue = append(queue, visit{node: p, dir: fromChild})
				}
			}
		}
	}

	return true, nil
}

// sortedKeys returns the keys of set, sorted.
func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}
