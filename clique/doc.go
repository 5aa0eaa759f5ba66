// Package clique implements exact branch-and-bound maximum clique search
// over a core.Graph: one shared (R, P, X) recursion skeleton driven by
// pluggable pivot, bound, and ordering policies, composed into five named
// solver variants (BKBasic, Tomita, DegeneracyTomita, Ostergard, BBMC).
//
// The skeleton is modeled on this module's TSP Branch-and-Bound engine:
// a dedicated struct carries all mutable search state (no closures), a
// sparse cancellation check runs every few thousand node events instead
// of on every call, and every variant shares one dfs-shaped recursion
// parameterized by flag fields (pivot on/off, coloring bound on/off,
// ordering) rather than an
// interface hierarchy.
//
// All five variants return the same clique *size* on a given graph; which
// specific maximum clique is returned may differ by tie-break when more
// than one optimum exists. That is an accepted consequence of each
// variant ordering and pruning its search differently, not a defect.
//
// Errors:
//
//	ErrUnsupportedAlgorithm - Options.Algorithm selects an unknown variant.
//	ErrGraphNil             - a nil *core.Graph was passed to a solver.
package clique
