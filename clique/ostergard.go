package clique

import (
	"context"

	"github.com/arnegrid/maxclique-bench/bitset"
	"github.com/arnegrid/maxclique-bench/core"
)

// runOstergard implements the Östergård / MaxCliqueDyn branch-and-bound
// variant: an outer loop over all of V in descending-degree order, each
// iteration seeding R = {v_i}, P = N(v_i) ∩ {vertices later in the outer
// order}, and recursing with the greedy-coloring upper bound enabled.
// No pivot is used — Östergård's coloring bound already subsumes most of
// what pivoting buys elsewhere, so the extra bookkeeping of computing a
// pivot on every node does not pay for itself here.
func runOstergard(ctx context.Context, g *core.Graph, seed []int32) Result {
	n := g.VertexCount()

	order := make([]int32, n)
	for i := range order {
		order[i] = int32(i)
	}
	sortByDegreeDesc(g, order)

	position := make([]int, n)
	for i, v := range order {
		position[v] = i
	}

	// Ordering is irrelevant once useColorBound is set: branchOrder always
	// derives branch order from greedyColor in that mode.
	e := newEngine(g, ctx, false, true, DegreeDescOrder, seed)

	for i, v := range order {
		if e.checkCancelled() {
			break
		}

		mask, err := g.NeighborMask(int(v))
		if err != nil {
			continue
		}

		later := bitset.New(n)
		mask.IterateSetBits(func(u int) bool {
			if position[u] > i {
				later.SetBit(u)
			}

			return true
		})

		e.r = append(e.r, v)
		e.search(later, bitset.New(n), 1)
		e.r = e.r[:0]
	}

	return Result{
		Clique: e.bestClique,
		Proven: !e.cancelled,
		Stats:  Stats{NodesExplored: e.nodes},
	}
}
