package clique

import "github.com/arnegrid/maxclique-bench/bitset"

// choosePivot picks u from P ∪ X maximizing |P ∩ N(u)|, ties broken by
// smallest vertex id. Reports false if both P and X are empty.
//
// Restricting branching to P \ N(u) after choosing the pivot is what
// collapses the classic Bron–Kerbosch branching factor (Tomita et al.,
// 2006): every vertex in P ∩ N(u) is guaranteed to appear in some other
// branch's R, so skipping it here never misses a maximal clique.
func choosePivot(g graphView, P, X bitset.Set) (int, bool) {
	best, bestScore, found := -1, -1, false

	score := func(u int) {
		mask, err := g.NeighborMask(u)
		if err != nil {
			return
		}
		s := bitset.IntersectionPopCount(P, mask)
		if s > bestScore || (s == bestScore && u < best) {
			best, bestScore, found = u, s, true
		}
	}

	P.IterateSetBits(func(u int) bool { score(u); return true })
	X.IterateSetBits(func(u int) bool { score(u); return true })

	return best, found
}
