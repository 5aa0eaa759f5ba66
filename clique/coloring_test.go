package clique

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnegrid/maxclique-bench/bitset"
	"github.com/arnegrid/maxclique-bench/core"
)

func TestGreedyColor_CompleteGraphNeedsNColors(t *testing.T) {
	edges := []core.EdgePair{}
	const n = 5
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, core.EdgePair{U: int64(i), V: int64(j)})
		}
	}
	g, _, err := core.Build(edges)
	require.NoError(t, err)

	order, colorOf := greedyColor(g, bitset.Full(n))
	require.Len(t, order, n)
	require.Len(t, colorOf, n)

	seen := map[int]bool{}
	for _, c := range colorOf {
		seen[c] = true
	}
	assert.Len(t, seen, n, "a complete graph needs one color per vertex")
}

func TestGreedyColor_NoEdgesIsEmptyDomain(t *testing.T) {
	// core.Build with no edges produces an empty graph (no vertices were
	// ever observed), so greedyColor has nothing to do.
	g, _, err := core.Build(nil)
	require.NoError(t, err)

	order, colorOf := greedyColor(g, bitset.New(g.VertexCount()))
	assert.Empty(t, order)
	assert.Empty(t, colorOf)
}

func TestGreedyColor_NoTwoSameColorAreAdjacent(t *testing.T) {
	edges := []core.EdgePair{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, // C5
	}
	g, _, err := core.Build(edges)
	require.NoError(t, err)
	n := g.VertexCount()

	order, colorOf := greedyColor(g, bitset.Full(n))
	colorByVertex := make(map[int32]int, len(order))
	for i, v := range order {
		colorByVertex[v] = colorOf[i]
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if g.HasEdge(i, j) {
				assert.NotEqual(t, colorByVertex[int32(i)], colorByVertex[int32(j)],
					"adjacent vertices %d,%d must not share a color", i, j)
			}
		}
	}
}
