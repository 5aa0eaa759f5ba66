// Package seed implements a single greedy heuristic seed producer.
package seed

import (
	"github.com/arnegrid/maxclique-bench/bitset"
	"github.com/arnegrid/maxclique-bench/core"
)

// GreedyClique returns a valid clique in g, built greedily: start from
// the maximum-degree vertex, then repeatedly add the candidate v in the
// common-neighbor set C that maximizes |C ∩ N(v)|, narrowing C to
// C ∩ N(v) each step. Ties are broken by smallest vertex id, matching
// this module's deterministic tie-break convention everywhere else.
//
// Returns an empty clique for n == 0; otherwise it always succeeds,
// since every vertex trivially forms a valid clique of size one to
// start from.
//
// Complexity: O(n) to pick the start vertex, then O(k·n·n/64) for k
// growth steps, each scanning candidates and scoring them against the
// bitset layer's word-parallel intersection-popcount.
func GreedyClique(g *core.Graph) []int32 {
	n := g.VertexCount()
	if n == 0 {
		return []int32{}
	}

	start := maxDegreeVertex(g)
	clique := make([]int32, 0, 8)
	clique = append(clique, int32(start))

	mask, err := g.NeighborMask(start)
	if err != nil {
		// Unreachable: start is always in [0, n).
		return clique
	}
	candidates := mask.Clone()

	for {
		next, found := bestCandidate(g, candidates)
		if !found {
			break
		}
		clique = append(clique, int32(next))

		nextMask, err := g.NeighborMask(next)
		if err != nil {
			break
		}
		bitset.AndInPlace(&candidates, nextMask)
	}

	return clique
}

// maxDegreeVertex returns the vertex of maximum degree, ties broken by
// smallest id.
func maxDegreeVertex(g *core.Graph) int {
	best, bestDeg := 0, -1
	for v := 0; v < g.VertexCount(); v++ {
		d, _ := g.Degree(v)
		if d > bestDeg {
			best, bestDeg = v, d
		}
	}

	return best
}

// bestCandidate returns the vertex in candidates maximizing
// |candidates ∩ N(v)|, ties broken by smallest id; reports false if
// candidates is empty.
func bestCandidate(g *core.Graph, candidates bitset.Set) (int, bool) {
	best, bestScore, found := -1, -1, false
	candidates.IterateSetBits(func(v int) bool {
		mask, err := g.NeighborMask(v)
		if err != nil {
			return true
		}
		score := bitset.IntersectionPopCount(candidates, mask)
		if score > bestScore {
			best, bestScore, found = v, score, true
		}

		return true
	})

	return best, found
}
