package clique

import "github.com/arnegrid/maxclique-bench/bitset"

// greedyColor assigns greedy colors to every vertex in P, returning the
// vertices grouped by increasing color class and each vertex's color.
// order[i] and colorOf[i] describe the same vertex at the same index.
//
// Construction: repeatedly take an uncolored residual set Q = P, peel an
// independent set by taking Q's first vertex, assigning it the current
// color, then removing it and all its neighbors from Q (Q ← Q ∩ ¬N(v)),
// and repeat within Q until empty; then start a new color on what
// remains of P. This is the standard greedy vertex-coloring upper bound
// for clique search (Tomita's MCR/MCS family, Östergård): no clique
// can contain two same-colored vertices, so the number of colors used
// bounds the size of any clique remaining in P.
//
// Callers branch in reverse color order (a vertex's color bounds
// 1 + its remaining colors), so order and colorOf are returned in
// ascending-color order and reversed by the caller.
func greedyColor(g graphView, P bitset.Set) (order []int32, colorOf []int) {
	order = make([]int32, 0, P.PopCount())
	colorOf = make([]int, 0, P.PopCount())

	remaining := P.Clone()
	color := 0

	for !remaining.IsEmpty() {
		Q := remaining.Clone()
		for !Q.IsEmpty() {
			v, ok := Q.FirstSetBit()
			if !ok {
				break
			}
			order = append(order, int32(v))
			colorOf = append(colorOf, color)
			Q.ClearBit(v)
			remaining.ClearBit(v)

			mask, err := g.NeighborMask(v)
			if err != nil {
				continue
			}
			bitset.AndNotInPlace(&Q, mask)
		}
		color++
	}

	return order, colorOf
}
