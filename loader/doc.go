// Package loader reads a graph from a line-oriented text format into a
// core.Graph, auto-detecting between a SNAP-like plain edge list and
// DIMACS clique-format ("c"/"p edge"/"e") input on a line-by-line basis.
package loader
