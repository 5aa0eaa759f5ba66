// Package seed produces a fast, valid clique used to prime the incumbent
// (best-known lower bound) before exact branch-and-bound search begins.
// A good seed tightens size and coloring bounds immediately, pruning the
// very first recursion nodes the way a good upper bound does for the
// Branch-and-Bound TSP solver this module's search skeleton is modeled
// on.
//
// Seeding the incumbent never changes the optimum an exact solver
// returns — only which specific maximum clique is returned when several
// exist — so GreedyClique is safe to call unconditionally.
package seed
