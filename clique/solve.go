package clique

import (
	"context"
	"fmt"
	"time"

	"github.com/arnegrid/maxclique-bench/core"
	"github.com/arnegrid/maxclique-bench/seed"
)

// FindMaximumClique dispatches to the solver variant named in
// opts.Algorithm and returns the maximum clique found (and, unless
// ctx was cancelled mid-search, a proof that it is optimal).
//
// ctx defaults to context.Background() if nil. The incumbent is seeded
// from opts.Seed when non-nil, else opts.SeedProducer, else
// seed.GreedyClique — seeding only affects which optimum is returned
// when several exist and how quickly the search converges, never
// whether the result is correct.
func FindMaximumClique(ctx context.Context, g *core.Graph, opts Options) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now()

	initial := opts.Seed
	if initial == nil {
		producer := opts.SeedProducer
		if producer == nil {
			producer = seed.GreedyClique
		}
		initial = producer(g)
	}

	var result Result
	switch opts.Algorithm {
	case BKBasic:
		result = runBKBasic(ctx, g, initial)
	case Tomita:
		result = runTomita(ctx, g, opts.Ordering, initial)
	case DegeneracyTomita:
		result = runDegeneracyTomita(ctx, g, initial)
	case Ostergard:
		result = runOstergard(ctx, g, initial)
	case BBMC:
		result = runBBMC(ctx, g, initial)
	default:
		return Result{}, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, opts.Algorithm)
	}

	result.Stats.Elapsed = time.Since(start)

	return result, nil
}

// ValidateClique reports whether K is a clique in g, delegating to
// core.Graph's own pairwise-adjacency check. Exposed here so callers of
// FindMaximumClique can independently certify a Result without importing
// core directly for that one call.
func ValidateClique(g *core.Graph, K []int32) bool {
	return g.IsClique(K)
}
