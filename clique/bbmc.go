package clique

import (
	"context"

	"github.com/arnegrid/maxclique-bench/bitset"
	"github.com/arnegrid/maxclique-bench/core"
)

// permutedGraph is a degree-descending relabeling of a *core.Graph,
// satisfying graphView so the shared skeleton can search it directly.
// BBMC reorders vertices by descending degree before searching because
// its bitset-intersection inner loop runs faster when high-degree
// (densely connected) vertices are branched on first, shrinking the
// candidate bitsets sooner.
type permutedGraph struct {
	n        int
	masks    []bitset.Set // masks[newID] = neighbor mask in new-id space
	newToOld []int32
}

// newPermutedGraph builds the new-id adjacency from g using the given
// new-id -> old-id mapping.
func newPermutedGraph(g *core.Graph, newToOld []int32) *permutedGraph {
	n := len(newToOld)
	oldToNew := make([]int32, n)
	for newID, oldID := range newToOld {
		oldToNew[oldID] = int32(newID)
	}

	masks := make([]bitset.Set, n)
	for newID, oldID := range newToOld {
		oldMask, err := g.NeighborMask(int(oldID))
		m := bitset.New(n)
		if err == nil {
			oldMask.IterateSetBits(func(old int) bool {
				m.SetBit(int(oldToNew[old]))
				return true
			})
		}
		masks[newID] = m
	}

	return &permutedGraph{n: n, masks: masks, newToOld: newToOld}
}

func (p *permutedGraph) VertexCount() int { return p.n }

func (p *permutedGraph) NeighborMask(v int) (bitset.Set, error) {
	if v < 0 || v >= p.n {
		return bitset.Set{}, core.ErrOutOfRange
	}

	return p.masks[v], nil
}

// degreeDescendingPermutation returns new-id -> old-id, old ids sorted
// by descending degree (ties broken by ascending old id).
func degreeDescendingPermutation(g *core.Graph) []int32 {
	n := g.VertexCount()
	order := make([]int32, n)
	for i := range order {
		order[i] = int32(i)
	}
	sortByDegreeDesc(g, order)

	return order
}

// runBBMC implements the bitset-specialized pivoted-off, coloring-
// bounded variant: search runs over a degree-descending permutedGraph,
// and the final clique is translated back to the caller's original
// vertex ids.
func runBBMC(ctx context.Context, g *core.Graph, seed []int32) Result {
	newToOld := degreeDescendingPermutation(g)
	pg := newPermutedGraph(g, newToOld)

	oldToNew := make(map[int32]int32, len(newToOld))
	for newID, oldID := range newToOld {
		oldToNew[oldID] = int32(newID)
	}
	newSeed := make([]int32, len(seed))
	for i, oldID := range seed {
		newSeed[i] = oldToNew[oldID]
	}

	e := newEngine(pg, ctx, false, true, DegreeDescOrder, newSeed)
	e.search(bitset.Full(pg.n), bitset.New(pg.n), 0)

	clique := make([]int32, len(e.bestClique))
	for i, newID := range e.bestClique {
		clique[i] = newToOld[newID]
	}

	return Result{
		Clique: clique,
		Proven: !e.cancelled,
		Stats:  Stats{NodesExplored: e.nodes},
	}
}
