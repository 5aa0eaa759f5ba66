package core

// degeneracy implements the Matula–Beck repeated-minimum-degree-removal
// algorithm: maintain a bucket array indexed by residual degree, always
// pop a vertex from the lowest nonempty bucket, and push its neighbors
// down a bucket as their residual degree drops. Each vertex and each
// edge is touched O(1) times, so the whole pass is O(n+m).
//
// Tie-break note: within a bucket, vertices are popped most-recently-
// enqueued-first (O(1) swap-remove) rather than by smallest id, trading
// the "smallest index" tie-break used elsewhere in this module (pivot,
// coloring) for amortized O(n+m) instead of an O(bucket size) scan per
// pop — degeneracy ordering has no canonical tie-break requirement,
// only that it be deterministic for a fixed graph, which this
// satisfies.
func (g *Graph) degeneracyPass() (order []int32, degeneracy int) {
	n := g.n
	order = make([]int32, 0, n)
	if n == 0 {
		return order, 0
	}

	deg := make([]int, n)
	maxDeg := 0
	for v := 0; v < n; v++ {
		deg[v] = len(g.adjacency[v])
		if deg[v] > maxDeg {
			maxDeg = deg[v]
		}
	}

	buckets := make([][]int32, maxDeg+1)
	bucketIdx := make([]int, n) // position of v within buckets[deg[v]]
	for v := 0; v < n; v++ {
		d := deg[v]
		buckets[d] = append(buckets[d], int32(v))
		bucketIdx[v] = len(buckets[d]) - 1
	}

	removed := make([]bool, n)
	d := 0
	for processed := 0; processed < n; processed++ {
		for d <= maxDeg && len(buckets[d]) == 0 {
			d++
		}
		if d > degeneracy {
			degeneracy = d
		}

		b := buckets[d]
		v := b[len(b)-1]
		buckets[d] = b[:len(b)-1]
		removed[v] = true
		order = append(order, v)

		for _, u32 := range g.adjacency[v] {
			u := int(u32)
			if removed[u] {
				continue
			}
			ub := buckets[deg[u]]
			idx := bucketIdx[u]
			last := len(ub) - 1
			ub[idx] = ub[last]
			bucketIdx[ub[idx]] = idx
			buckets[deg[u]] = ub[:last]

			deg[u]--
			buckets[deg[u]] = append(buckets[deg[u]], u32)
			bucketIdx[u] = len(buckets[deg[u]]) - 1
			if deg[u] < d {
				d = deg[u]
			}
		}
	}

	return order, degeneracy
}

// DegeneracyOrder returns a permutation of all n vertices such that each
// vertex has at most Degeneracy() neighbors appearing later in the
// ordering.
func (g *Graph) DegeneracyOrder() []int32 {
	order, _ := g.degeneracyPass()

	return order
}

// Degeneracy returns d: the maximum, over the sequence of removals in
// DegeneracyOrder, of the residual degree of the removed vertex.
func (g *Graph) Degeneracy() int {
	_, d := g.degeneracyPass()

	return d
}
