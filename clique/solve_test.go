package clique_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnegrid/maxclique-bench/clique"
	"github.com/arnegrid/maxclique-bench/core"
)

var allAlgorithms = []clique.Algorithm{
	clique.BKBasic,
	clique.Tomita,
	clique.DegeneracyTomita,
	clique.Ostergard,
	clique.BBMC,
}

func buildGraph(t *testing.T, edges []core.EdgePair) *core.Graph {
	t.Helper()
	g, _, err := core.Build(edges)
	require.NoError(t, err)

	return g
}

// scenario bundles a named graph with its known maximum clique size, for
// S1-S6-style coverage across every variant.
type scenario struct {
	name     string
	edges    []core.EdgePair
	wantSize int
}

func scenarios() []scenario {
	return []scenario{
		{
			name:     "triangle",
			edges:    []core.EdgePair{{0, 1}, {1, 2}, {0, 2}},
			wantSize: 3,
		},
		{
			name:     "path P5",
			edges:    []core.EdgePair{{0, 1}, {1, 2}, {2, 3}, {3, 4}},
			wantSize: 2,
		},
		{
			name: "K4 union K3",
			edges: []core.EdgePair{
				{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3},
				{4, 5}, {4, 6}, {5, 6},
			},
			wantSize: 4,
		},
		{
			name:     "K3,3 bipartite",
			edges:    bipartite(3, 3),
			wantSize: 2,
		},
		{
			name:     "planted clique with noise",
			edges:    plantedCliqueWithNoise(),
			wantSize: 5,
		},
		{
			name:     "isolated vertex",
			edges:    isolatedVertexGraph(),
			wantSize: 3,
		},
	}
}

func bipartite(a, b int) []core.EdgePair {
	edges := make([]core.EdgePair, 0, a*b)
	for i := 0; i < a; i++ {
		for j := 0; j < b; j++ {
			edges = append(edges, core.EdgePair{U: int64(i), V: int64(a + j)})
		}
	}

	return edges
}

// plantedCliqueWithNoise embeds a K5 on {0..4} plus sparse extra edges
// that touch the clique vertices but never form a sixth mutual clique
// member, and a couple of edges entirely outside the clique.
func plantedCliqueWithNoise() []core.EdgePair {
	edges := []core.EdgePair{}
	for i := int64(0); i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			edges = append(edges, core.EdgePair{U: i, V: j})
		}
	}
	// Noise: vertex 5 connects to 0 and 1 only (not a clique member),
	// vertex 6 connects to 2 only, and 7-8 form an unrelated edge.
	edges = append(edges,
		core.EdgePair{U: 5, V: 0},
		core.EdgePair{U: 5, V: 1},
		core.EdgePair{U: 6, V: 2},
		core.EdgePair{U: 7, V: 8},
	)

	return edges
}

// isolatedVertexGraph is a triangle plus a vertex with no edges at all.
func isolatedVertexGraph() []core.EdgePair {
	// core.Build assigns a dense id to both ends of a pair before dropping
	// it as a self-loop, so {3, 3} registers vertex 3 with degree zero.
	// The maximum clique is still the triangle.
	edges := []core.EdgePair{{0, 1}, {1, 2}, {0, 2}, {3, 3}}
	return edges
}

func TestFindMaximumClique_Scenarios(t *testing.T) {
	for _, sc := range scenarios() {
		sc := sc
		for _, algo := range allAlgorithms {
			algo := algo
			t.Run(sc.name+"/"+algo.String(), func(t *testing.T) {
				g := buildGraph(t, sc.edges)
				result, err := clique.FindMaximumClique(context.Background(), g, clique.Options{Algorithm: algo})
				require.NoError(t, err)
				assert.True(t, clique.ValidateClique(g, result.Clique))
				assert.Equal(t, sc.wantSize, len(result.Clique))
				assert.True(t, result.Proven)
			})
		}
	}
}

func TestFindMaximumClique_SingleIsolatedVertex(t *testing.T) {
	// core.Build only registers a vertex via some edge touching it; a
	// self-loop registers the vertex while contributing no adjacency, so
	// {5,5} yields a single dense vertex with degree zero. The maximum
	// clique of a one-vertex graph is that vertex alone.
	g := buildGraph(t, []core.EdgePair{{5, 5}})
	require.Equal(t, 1, g.VertexCount())

	for _, algo := range allAlgorithms {
		result, err := clique.FindMaximumClique(context.Background(), g, clique.Options{Algorithm: algo})
		require.NoError(t, err)
		assert.Equal(t, []int32{0}, result.Clique, "algorithm %v", algo)
		assert.True(t, result.Proven)
	}
}

func TestFindMaximumClique_PendantVertexNeverJoinsClique(t *testing.T) {
	// Vertex 3 has one edge to 2, so it registers with degree 1 and can
	// never be part of the triangle {0,1,2}'s maximum clique.
	g := buildGraph(t, []core.EdgePair{{0, 1}, {1, 2}, {0, 2}, {2, 3}})
	result, err := clique.FindMaximumClique(context.Background(), g, clique.Options{Algorithm: clique.Tomita})
	require.NoError(t, err)
	assert.Equal(t, 3, len(result.Clique))
	for _, v := range result.Clique {
		assert.NotEqual(t, int32(3), v)
	}
}

func TestFindMaximumClique_AgreementAcrossVariants(t *testing.T) {
	edges := plantedCliqueWithNoise()
	g := buildGraph(t, edges)

	sizes := make(map[clique.Algorithm]int, len(allAlgorithms))
	for _, algo := range allAlgorithms {
		result, err := clique.FindMaximumClique(context.Background(), g, clique.Options{Algorithm: algo})
		require.NoError(t, err)
		require.True(t, clique.ValidateClique(g, result.Clique))
		sizes[algo] = len(result.Clique)
	}

	for algo, size := range sizes {
		assert.Equal(t, sizes[clique.BKBasic], size, "variant %v disagreed on clique size", algo)
	}
}

func TestFindMaximumClique_UnsupportedAlgorithm(t *testing.T) {
	g := buildGraph(t, []core.EdgePair{{0, 1}})
	_, err := clique.FindMaximumClique(context.Background(), g, clique.Options{Algorithm: clique.Algorithm(99)})
	assert.ErrorIs(t, err, clique.ErrUnsupportedAlgorithm)
}

func TestFindMaximumClique_NilGraph(t *testing.T) {
	_, err := clique.FindMaximumClique(context.Background(), nil, clique.DefaultOptions())
	assert.ErrorIs(t, err, clique.ErrGraphNil)
}

func TestFindMaximumClique_NilContextDefaultsToBackground(t *testing.T) {
	g := buildGraph(t, []core.EdgePair{{0, 1}, {1, 2}, {0, 2}})
	result, err := clique.FindMaximumClique(nil, g, clique.Options{Algorithm: clique.BKBasic})
	require.NoError(t, err)
	assert.Equal(t, 3, len(result.Clique))
}

func TestFindMaximumClique_SeedNeverChangesOptimum(t *testing.T) {
	edges := plantedCliqueWithNoise()
	g := buildGraph(t, edges)

	withoutSeed, err := clique.FindMaximumClique(context.Background(), g, clique.Options{Algorithm: clique.Tomita})
	require.NoError(t, err)

	// An intentionally weak seed (a single vertex) must not change the
	// proven optimum, only possibly the search's internal path to it.
	withSeed, err := clique.FindMaximumClique(context.Background(), g, clique.Options{
		Algorithm: clique.Tomita,
		Seed:      []int32{0},
	})
	require.NoError(t, err)

	assert.Equal(t, len(withoutSeed.Clique), len(withSeed.Clique))
}

func TestFindMaximumClique_MonotoneIncumbent(t *testing.T) {
	// A correct seed of the true optimum must not be shrunk by search.
	edges := []core.EdgePair{{0, 1}, {1, 2}, {0, 2}}
	g := buildGraph(t, edges)

	result, err := clique.FindMaximumClique(context.Background(), g, clique.Options{
		Algorithm: clique.BKBasic,
		Seed:      []int32{0, 1, 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, len(result.Clique))
}

func TestFindMaximumClique_CancellationReturnsValidButUnprovenClique(t *testing.T) {
	// A pathological graph large enough that an immediately-cancelled
	// context is observed before the search can complete.
	n := 40
	edges := []core.EdgePair{}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if (i+j)%3 != 0 {
				edges = append(edges, core.EdgePair{U: int64(i), V: int64(j)})
			}
		}
	}
	g := buildGraph(t, edges)

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	result, err := clique.FindMaximumClique(ctx, g, clique.Options{Algorithm: clique.BKBasic})
	require.NoError(t, err)
	assert.True(t, clique.ValidateClique(g, result.Clique))
	assert.False(t, result.Proven)
}

func TestFindMaximumClique_PermutationInvariance(t *testing.T) {
	// Relabeling every external id by a constant offset must not change
	// the discovered clique's size.
	base := plantedCliqueWithNoise()
	shifted := make([]core.EdgePair, len(base))
	for i, e := range base {
		shifted[i] = core.EdgePair{U: e.U + 1000, V: e.V + 1000}
	}

	g1 := buildGraph(t, base)
	g2 := buildGraph(t, shifted)

	r1, err := clique.FindMaximumClique(context.Background(), g1, clique.Options{Algorithm: clique.BBMC})
	require.NoError(t, err)
	r2, err := clique.FindMaximumClique(context.Background(), g2, clique.Options{Algorithm: clique.BBMC})
	require.NoError(t, err)

	assert.Equal(t, len(r1.Clique), len(r2.Clique))
}

func TestDefaultOptions(t *testing.T) {
	opts := clique.DefaultOptions()
	assert.Equal(t, clique.Tomita, opts.Algorithm)
	assert.Equal(t, clique.NaturalOrder, opts.Ordering)
}

func TestAlgorithm_String(t *testing.T) {
	assert.Equal(t, "bk-basic", clique.BKBasic.String())
	assert.Equal(t, "tomita", clique.Tomita.String())
	assert.Equal(t, "degeneracy-tomita", clique.DegeneracyTomita.String())
	assert.Equal(t, "ostergard", clique.Ostergard.String())
	assert.Equal(t, "bbmc", clique.BBMC.String())
	assert.Equal(t, "unknown", clique.Algorithm(99).String())
}
