package clique

import (
	"context"

	"github.com/arnegrid/maxclique-bench/bitset"
	"github.com/arnegrid/maxclique-bench/core"
)

// runBKBasic is the textbook unpivoted Bron–Kerbosch backtracker: every
// vertex of P is a branch candidate, pruned only by the running incumbent
// size. This is the baseline every other variant is measured against.
func runBKBasic(ctx context.Context, g *core.Graph, seed []int32) Result {
	n := g.VertexCount()
	e := newEngine(g, ctx, false, false, NaturalOrder, seed)

	e.search(bitset.Full(n), bitset.New(n), 0)

	return Result{
		Clique: e.bestClique,
		Proven: !e.cancelled,
		Stats:  Stats{NodesExplored: e.nodes},
	}
}
