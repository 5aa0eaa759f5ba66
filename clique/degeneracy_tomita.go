package clique

import (
	"context"

	"github.com/arnegrid/maxclique-bench/bitset"
	"github.com/arnegrid/maxclique-bench/core"
)

// runDegeneracyTomita drives the pivoted skeleton with a degeneracy-
// ordered outer loop: for each vertex v_i in degeneracy order, it seeds
// R = {v_i}, P = N(v_i) ∩ {v_i+1, ...}, X = N(v_i) ∩ {v_0, ..., v_i-1},
// and recurses. Bounding every outer branch's initial P/X split to
// "later" and "earlier" neighbors by degeneracy position keeps peak
// recursion depth at d+1 (Eppstein, Löffler, Strash), independent of n.
func runDegeneracyTomita(ctx context.Context, g *core.Graph, seed []int32) Result {
	n := g.VertexCount()
	order := g.DegeneracyOrder()

	e := newEngine(g, ctx, true, false, NaturalOrder, seed)

	position := make([]int, n)
	for i, v := range order {
		position[v] = i
	}

	for i, v := range order {
		if e.checkCancelled() {
			break
		}

		mask, err := g.NeighborMask(int(v))
		if err != nil {
			continue
		}

		later := bitset.New(n)
		earlier := bitset.New(n)
		mask.IterateSetBits(func(u int) bool {
			if position[u] > i {
				later.SetBit(u)
			} else {
				earlier.SetBit(u)
			}

			return true
		})

		e.r = append(e.r, v)
		e.search(later, earlier, 1)
		e.r = e.r[:0]
	}

	return Result{
		Clique: e.bestClique,
		Proven: !e.cancelled,
		Stats:  Stats{NodesExplored: e.nodes},
	}
}
