package clique

import (
	"context"

	"github.com/arnegrid/maxclique-bench/bitset"
)

// cancelCheckInterval is how many recursion-skeleton node events elapse
// between ctx.Done() polls, matching the sparse-cancellation idiom this
// module's TSP Branch-and-Bound engine uses (checking context on every
// call is measurable overhead on the hot recursive path).
const cancelCheckInterval = 4095

// graphView abstracts the adjacency a search runs over, so the skeleton
// can drive both a *core.Graph directly and BBMC's internally degree-
// permuted view without a second copy of the recursion.
type graphView interface {
	VertexCount() int
	NeighborMask(v int) (bitset.Set, error)
}

// engine carries all mutable state for one search, mirroring the TSP
// solver's dedicated bbEngine struct: a plain struct instead of closures,
// so the hot recursive path never allocates to capture loop variables.
type engine struct {
	g   graphView
	ctx context.Context

	usePivot      bool
	useColorBound bool
	ordering      Ordering

	r []int32 // current partial clique, pushed/popped in place

	bestClique []int32
	bestSize   int

	nodes     int64
	cancelled bool
}

// newEngine builds an engine primed with the incumbent seed so the very
// first size/coloring bound reflects it.
func newEngine(g graphView, ctx context.Context, usePivot, useColorBound bool, ordering Ordering, seed []int32) *engine {
	e := &engine{
		g:             g,
		ctx:           ctx,
		usePivot:      usePivot,
		useColorBound: useColorBound,
		ordering:      ordering,
		r:             make([]int32, 0, 16),
		bestSize:      len(seed),
	}
	e.bestClique = append([]int32(nil), seed...)

	return e
}

// checkCancelled polls ctx.Done() every cancelCheckInterval nodes and
// latches e.cancelled once true so later nodes skip the syscall-adjacent
// channel receive entirely.
func (e *engine) checkCancelled() bool {
	if e.cancelled {
		return true
	}
	if e.nodes%cancelCheckInterval != 0 {
		return false
	}
	select {
	case <-e.ctx.Done():
		e.cancelled = true
	default:
	}

	return e.cancelled
}

// recordIfBetter saves e.r as the new incumbent if it strictly improves
// on bestSize.
func (e *engine) recordIfBetter() {
	if len(e.r) > e.bestSize {
		e.bestSize = len(e.r)
		e.bestClique = append(e.bestClique[:0], e.r...)
	}
}

// branchOrder returns the vertices of P to branch on, in the order this
// engine should iterate them, optionally restricted to P \ N(pivot) when
// usePivot is set, and the per-index bound used for step-5 pruning.
//
// Non-coloring variants bound the i-th branch by the number of candidates
// still in P when it starts (|P|-i, since each earlier branch moved one
// vertex from P to X): any clique found in that branch draws its new
// vertices from those candidates, so this is a valid, non-increasing
// upper bound even when a pivot has excluded P ∩ N(u) from the branch
// list. Coloring variants use colorOf[i] — the
// vertex's greedy color — which Tomita's MCR/MCS analysis shows is a
// tighter non-increasing bound when branching in decreasing color order.
func (e *engine) branchOrder(P, X bitset.Set) (order []int32, bound []int) {
	var restrict bitset.Set
	hasRestrict := false
	if e.usePivot {
		if u, ok := choosePivot(e.g, P, X); ok {
			mask, err := e.g.NeighborMask(u)
			if err == nil {
				restrict = bitset.Difference(P, mask)
				hasRestrict = true
			}
		}
	}
	branchSet := P
	if hasRestrict {
		branchSet = restrict
	}

	if e.useColorBound {
		colOrder, colorOf := greedyColor(e.g, branchSet)
		// Branch in decreasing color: reverse both slices in place.
		n := len(colOrder)
		order = make([]int32, n)
		bound = make([]int, n)
		for i := 0; i < n; i++ {
			order[i] = colOrder[n-1-i]
			bound[i] = colorOf[n-1-i] + 1
		}

		return order, bound
	}

	order = branchSet.Slice()
	if e.ordering == DegreeDescOrder {
		// Residual degree: neighbors inside the current candidate set P.
		deg := make(map[int32]int, len(order))
		for _, v := range order {
			if mask, err := e.g.NeighborMask(int(v)); err == nil {
				deg[v] = bitset.IntersectionPopCount(P, mask)
			}
		}
		for i := 1; i < len(order); i++ {
			for j := i; j > 0 && less(deg, order[j-1], order[j]); j-- {
				order[j-1], order[j] = order[j], order[j-1]
			}
		}
	}
	sizeP := P.PopCount()
	bound = make([]int, len(order))
	for i := range order {
		bound[i] = sizeP - i
	}

	return order, bound
}

// sortByDegreeDesc orders vs by descending degree (popcount of the
// vertex's full neighbor mask), ties broken by ascending id. Used by the
// outer vertex orderings of Ostergard and BBMC.
func sortByDegreeDesc(g graphView, vs []int32) {
	deg := make(map[int32]int, len(vs))
	for _, v := range vs {
		mask, err := g.NeighborMask(int(v))
		if err == nil {
			deg[v] = mask.PopCount()
		}
	}
	// Simple insertion sort: branch lists are small relative to n, and
	// this keeps the skeleton allocation-free beyond the map above.
	for i := 1; i < len(vs); i++ {
		j := i
		for j > 0 && less(deg, vs[j-1], vs[j]) {
			vs[j-1], vs[j] = vs[j], vs[j-1]
			j--
		}
	}
}

// less reports whether b should sort before a under descending-degree,
// ascending-id order.
func less(deg map[int32]int, a, b int32) bool {
	if deg[a] != deg[b] {
		return deg[b] > deg[a]
	}

	return b < a
}

// search is the shared (R, P, X) recursion. depth is len(e.r) at entry,
// passed explicitly to avoid a repeated len() call in the hot path.
func (e *engine) search(P, X bitset.Set, depth int) {
	e.nodes++
	if e.checkCancelled() {
		return
	}

	// Size-only prune: even taking every remaining candidate cannot beat
	// the incumbent.
	if depth+P.PopCount() <= e.bestSize {
		return
	}

	if P.IsEmpty() && X.IsEmpty() {
		e.recordIfBetter()
		return
	}

	order, bound := e.branchOrder(P, X)

	localP := P.Clone()
	localX := X.Clone()

	for i, v := range order {
		if e.checkCancelled() {
			return
		}
		if depth+bound[i] <= e.bestSize {
			break // bound is non-increasing in i: nothing later can help either
		}

		mask, err := e.g.NeighborMask(int(v))
		if err != nil {
			continue
		}

		e.r = append(e.r, v)
		e.search(bitset.Intersect(localP, mask), bitset.Intersect(localX, mask), depth+1)
		e.r = e.r[:len(e.r)-1]

		localP.ClearBit(int(v))
		localX.SetBit(int(v))
	}
}
