package pc

import (
	"github.com/katalvlaran/causal/dataset"
	"github.com/katalvlaran/causal/pdag"
)

// BuildSkeleton runs phase 1 of the PC algorithm: thin the complete
// undirected graph over the dataset's variables by searching, level by
// level, for conditioning sets that render each adjacent pair
// independent. Every removal records its separating set.
//
// The returned skeleton contains exactly the edges for which no
// separating set of any reachable size was found; the SepSet holds one
// entry per removed edge, readable from either ordering of the pair.
//
// Edges are visited in canonical pair order and subsets in lexicographic
// order, so the result is deterministic for a fixed dataset and alpha.
// A cancelled opts.Ctx aborts with the context error and nil results.
func BuildSkeleton(d *dataset.Dataset, opts *Options) (*pdag.Skeleton, *pdag.SepSet, error) {
	s, err := resolve(d, opts)
	if err != nil {
		return nil, nil, err
	}

	sk := pdag.Complete(d.Vars())
	sep := pdag.NewSepSet()

	for k := 0; ; k++ {
		if err = thinPass(d, sk, sep, k, s); err != nil {
			return nil, nil, err
		}
		// No node can supply a conditioning set of size k+1: done.
		if maxDegree(sk) < k+1 {
			break
		}
	}

	return sk, sep, nil
}

// thinPass performs one full pass over the surviving edges at
// conditioning-set size k, removing edges as separators are found.
// Removals take effect immediately: later edges in the same pass see the
// already-thinned neighbor pools.
func thinPass(d *dataset.Dataset, sk *pdag.Skeleton, sep *pdag.SepSet, k int, s settings) error {
	for _, pair := range sk.Pairs() {
		if err := s.ctx.Err(); err != nil {
			return err
		}
		i, j := pair[0], pair[1]
		if !sk.HasEdge(i, j) { // removed earlier in this pass
			continue
		}

		pool := candidatePool(sk, i, j)
		if len(pool) < k {
			continue
		}
		if err := searchSubsets(d, sk, sep, i, j, pool, k, s); err != nil {
			return err
		}
	}

	return nil
}

// candidatePool returns the smaller of the two endpoint neighbor sets,
// each excluding the opposite endpoint, under the current skeleton.
// Conditioning on either side is a valid test under causal sufficiency;
// the smaller side just bounds the subset enumeration.
func candidatePool(sk *pdag.Skeleton, i, j string) []string {
	adjI := without(sk.Neighbors(i), j)
	adjJ := without(sk.Neighbors(j), i)
	if len(adjJ) < len(adjI) {
		return adjJ
	}

	return adjI
}

// searchSubsets tests every k-subset of pool against the edge (i, j),
// in lexicographic order. The first independent subset removes the edge,
// records the separating set symmetrically, and ends the search.
func searchSubsets(d *dataset.Dataset, sk *pdag.Skeleton, sep *pdag.SepSet, i, j string, pool []string, k int, s settings) error {
	return forEachSubset(pool, k, func(sub []string) (bool, error) {
		res, err := s.tester.Test(d, i, j, sub, s.alpha)
		if err != nil {
			return false, err
		}
		if s.onTest != nil {
			s.onTest(res)
		}
		if !res.Independent() {
			return true, nil // keep searching
		}

		sk.RemoveEdge(i, j)
		sep.Record(i, j, sub)

		return false, nil // separator found, stop
	})
}

// forEachSubset calls fn for every k-subset of pool in lexicographic
// index order. fn returns (continue, error); enumeration stops on the
// first false or error. pool must be sorted for deterministic output.
func forEachSubset(pool []string, k int, fn func(sub []string) (bool, error)) error {
	if k > len(pool) {
		return nil
	}

	// idx holds the current combination as positions into pool.
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	sub := make([]string, k)
	for {
		for i, p := range idx {
			sub[i] = pool[p]
		}
		cont, err := fn(sub)
		if err != nil || !cont {
			return err
		}

		// Advance to the next combination (rightmost movable position).
		i := k - 1
		for i >= 0 && idx[i] == len(pool)-k+i {
			i--
		}
		if i < 0 {
			return nil
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// maxDegree reports the largest current neighbor count in the skeleton.
func maxDegree(sk *pdag.Skeleton) int {
	best := 0
	for _, v := range sk.Nodes() {
		if deg := sk.Degree(v); deg > best {
			best = deg
		}
	}

	return best
}

// without returns vs minus one excluded element, preserving order.
func without(vs []string, excluded string) []string {
	out := vs[:0]
	for _, v := range vs {
		if v != excluded {
			out = append(out, v)
		}
	}

	return out
}
