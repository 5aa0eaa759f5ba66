package core

import (
	"fmt"
	"sort"

	"github.com/arnegrid/maxclique-bench/bitset"
)

// EdgePair is one (u, v) input edge in the external (arbitrary
// non-negative integer) id space. Order of U/V does not matter; the
// graph is always undirected.
type EdgePair struct {
	U, V int64
}

// IDMap is the sidecar remapping produced by every Build call. Dense ids
// are assigned in order of first appearance in the edge list, even when
// the external ids already form a dense [0, n) range. ToExternal[i] is the original
// id of dense vertex i; ToDense looks up the dense index for an external
// id.
type IDMap struct {
	ToExternal []int64
	ToDense    map[int64]int32
}

// Dense returns the dense index for an external id, and whether it was
// seen during Build.
func (m *IDMap) Dense(external int64) (int32, bool) {
	v, ok := m.ToDense[external]

	return v, ok
}

// External returns the original external id for a dense vertex index.
// Panics if v is out of range, mirroring slice-index semantics; callers
// within this module only ever call this with ids returned by a Graph
// they built from the same IDMap.
func (m *IDMap) External(v int32) int64 {
	return m.ToExternal[v]
}

// Graph is an immutable simple undirected graph over a dense vertex range
// [0, n). It stores two equivalent representations built once in Build:
// sorted per-vertex adjacency slices (natural iteration order, used by
// Neighbors, Degree and the degeneracy pass) and per-vertex bitset.Set
// masks (O(1) edge test and word-parallel set operations, used by every
// solver variant).
type Graph struct {
	n         int
	m         int
	adjacency [][]int32
	masks     []bitset.Set
}

// Build constructs a Graph from an edge sequence in external id space.
// Self-loops are dropped; duplicate edges (in either direction) are
// idempotent. A negative external id fails with ErrInvalidInput and no
// partial Graph is returned. The returned IDMap lets callers translate a
// result clique back into the caller's original id space.
//
// Complexity: O(m log m) for the sort-dedup pass; O(n + m) thereafter.
func Build(edges []EdgePair) (*Graph, *IDMap, error) {
	idMap := &IDMap{ToDense: make(map[int64]int32)}
	assign := func(ext int64) (int32, error) {
		if ext < 0 {
			return 0, fmt.Errorf("core: %w: negative vertex id %d", ErrInvalidInput, ext)
		}
		if d, ok := idMap.ToDense[ext]; ok {
			return d, nil
		}
		d := int32(len(idMap.ToExternal))
		idMap.ToExternal = append(idMap.ToExternal, ext)
		idMap.ToDense[ext] = d

		return d, nil
	}

	type denseEdge struct{ u, v int32 }
	pairs := make([]denseEdge, 0, len(edges))
	for _, e := range edges {
		u, err := assign(e.U)
		if err != nil {
			return nil, nil, err
		}
		v, err := assign(e.V)
		if err != nil {
			return nil, nil, err
		}
		if u == v {
			continue // drop self-loops
		}
		if u > v {
			u, v = v, u
		}
		pairs = append(pairs, denseEdge{u, v})
	}

	n := len(idMap.ToExternal)
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].u != pairs[j].u {
			return pairs[i].u < pairs[j].u
		}

		return pairs[i].v < pairs[j].v
	})

	adjacency := make([][]int32, n)
	masks := make([]bitset.Set, n)
	for i := range masks {
		masks[i] = bitset.New(n)
	}

	m := 0
	for i, p := range pairs {
		if i > 0 && pairs[i-1] == p {
			continue // drop duplicate edge
		}
		adjacency[p.u] = append(adjacency[p.u], p.v)
		adjacency[p.v] = append(adjacency[p.v], p.u)
		masks[p.u].SetBit(int(p.v))
		masks[p.v].SetBit(int(p.u))
		m++
	}

	return &Graph{n: n, m: m, adjacency: adjacency, masks: masks}, idMap, nil
}

// VertexCount returns n = |V|.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns m = |E|.
func (g *Graph) EdgeCount() int { return g.m }

// HasEdge reports whether u and v are adjacent. Out-of-range vertices
// report false rather than erroring, per this module's failure
// semantics for adjacency queries.
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return false
	}

	return g.masks[u].Test(v)
}

// Neighbors returns the sorted-ascending adjacency slice for v. The
// returned slice is an internal view and must not be mutated by callers.
func (g *Graph) Neighbors(v int) ([]int32, error) {
	if v < 0 || v >= g.n {
		return nil, fmt.Errorf("core: %w: vertex %d", ErrOutOfRange, v)
	}

	return g.adjacency[v], nil
}

// Degree returns |neighbors(v)|.
func (g *Graph) Degree(v int) (int, error) {
	if v < 0 || v >= g.n {
		return 0, fmt.Errorf("core: %w: vertex %d", ErrOutOfRange, v)
	}

	return len(g.adjacency[v]), nil
}

// NeighborMask returns the dense adjacency bitmap for v: the Neighbor
// Bitmap of the graph's bitset layer, built once in Build and read-only
// thereafter.
func (g *Graph) NeighborMask(v int) (bitset.Set, error) {
	if v < 0 || v >= g.n {
		return bitset.Set{}, fmt.Errorf("core: %w: vertex %d", ErrOutOfRange, v)
	}

	return g.masks[v], nil
}

// Density returns 2m / (n(n-1)) for n >= 2, else 0.
func (g *Graph) Density() float64 {
	if g.n < 2 {
		return 0
	}

	return 2 * float64(g.m) / (float64(g.n) * float64(g.n-1))
}
