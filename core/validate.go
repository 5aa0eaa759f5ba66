package core

// IsClique reports whether every pair of distinct vertices in K is
// adjacent in g. The empty set and any singleton are trivially cliques.
// A K containing an out-of-range vertex id is never a clique.
//
// Complexity: O(|K|^2).
func (g *Graph) IsClique(K []int32) bool {
	for _, v := range K {
		if v < 0 || int(v) >= g.n {
			return false
		}
	}
	for i := 0; i < len(K); i++ {
		for j := i + 1; j < len(K); j++ {
			if !g.HasEdge(int(K[i]), int(K[j])) {
				return false
			}
		}
	}

	return true
}
