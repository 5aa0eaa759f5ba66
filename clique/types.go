package clique

import (
	"errors"
	"time"

	"github.com/arnegrid/maxclique-bench/core"
)

// Sentinel errors for the clique package's public entry points.
var (
	// ErrUnsupportedAlgorithm is returned when Options.Algorithm selects
	// an unavailable strategy.
	ErrUnsupportedAlgorithm = errors.New("clique: unsupported algorithm")

	// ErrGraphNil is returned when a nil *core.Graph is passed to a solver.
	ErrGraphNil = errors.New("clique: graph is nil")
)

// Algorithm selects one of the five composed solver variants.
type Algorithm int

const (
	// BKBasic is the unpivoted Bron–Kerbosch backtracker with size-based
	// pruning only.
	BKBasic Algorithm = iota

	// Tomita is the pivoted Bron–Kerbosch variant (Tomita et al.), no
	// outer loop, size-based pruning.
	Tomita

	// DegeneracyTomita drives the pivoted skeleton with a degeneracy-
	// ordered outer loop, bounding recursion depth by d+1.
	DegeneracyTomita

	// Ostergard is the branch-and-bound variant whose upper bound is a
	// greedy vertex coloring, with a degree-descending outer loop over
	// all of V (Östergård / MaxCliqueDyn).
	Ostergard

	// BBMC is the bitset-specialized, coloring-bounded variant (no pivot)
	// that reorders vertices by descending degree before searching.
	BBMC
)

// String implements fmt.Stringer for diagnostic output (CSV algorithm
// column, log lines).
func (a Algorithm) String() string {
	switch a {
	case BKBasic:
		return "bk-basic"
	case Tomita:
		return "tomita"
	case DegeneracyTomita:
		return "degeneracy-tomita"
	case Ostergard:
		return "ostergard"
	case BBMC:
		return "bbmc"
	default:
		return "unknown"
	}
}

// Ordering selects the step-5 iteration order for variants that do not
// hardwire their own (Tomita may be run in either order via Options).
type Ordering int

const (
	// NaturalOrder iterates candidates in ascending vertex id.
	NaturalOrder Ordering = iota

	// DegreeDescOrder iterates candidates by descending residual degree
	// within the current candidate set P, ties broken by ascending id.
	DegreeDescOrder
)

// SeedProducer returns a valid clique in g used to prime the incumbent.
// seed.GreedyClique is the only implementation this module ships; the
// type exists so a caller-supplied heuristic (greedy/SA/local-search) can
// be substituted without changing the solver's signature — seeding only
// ever primes the incumbent bound, so any heuristic producing a valid
// clique can be swapped in safely.
type SeedProducer func(g *core.Graph) []int32

// Options configures a call to FindMaximumClique or one of the named
// variant entry points. The zero value selects BKBasic with natural
// ordering and the default seed producer; DefaultOptions selects Tomita.
type Options struct {
	// Algorithm selects the solver variant. Default: Tomita.
	Algorithm Algorithm

	// Ordering overrides the step-5 order for variants that expose a
	// choice (currently Tomita only; ignored elsewhere). Default: NaturalOrder.
	Ordering Ordering

	// Seed, if non-nil, is used directly as the initial incumbent
	// instead of running SeedProducer. Must be a valid clique in the
	// target graph; callers that violate this get undefined (but not
	// unsafe) pruning behavior, since seeding never changes the
	// algorithm's correctness, only its starting bound.
	Seed []int32

	// SeedProducer generates the initial incumbent when Seed is nil.
	// Default: nil, in which case FindMaximumClique uses
	// seed.GreedyClique.
	SeedProducer SeedProducer
}

// DefaultOptions returns Options with the Tomita variant, natural
// ordering, and no pre-supplied seed (SeedProducer is left nil; callers
// get seed.GreedyClique's behavior via FindMaximumClique, which fills it
// in when nil).
func DefaultOptions() Options {
	return Options{
		Algorithm: Tomita,
		Ordering:  NaturalOrder,
	}
}

// Stats carries diagnostic counters for one solver invocation.
type Stats struct {
	// NodesExplored counts recursion-skeleton calls, for comparing
	// pruning effectiveness across variants on the same graph.
	NodesExplored int64

	// Elapsed is wall-clock search time, including seeding.
	Elapsed time.Duration
}

// Result is the outcome of a maximum-clique search.
type Result struct {
	// Clique is the best clique found, as dense vertex ids into the
	// graph it was found on.
	Clique []int32

	// Proven is true iff Clique is certified optimal: false only when a
	// caller's cancellation fired before the search space was
	// exhausted, in which case Clique is still guaranteed to be a valid
	// clique, just not necessarily maximum.
	Proven bool

	// Stats holds diagnostic counters for this invocation.
	Stats Stats
}
