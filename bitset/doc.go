// Package bitset provides a dense, dynamic-width bitmap used as the
// machine-word-parallel set representation for clique search: candidate
// sets P, excluded sets X, and per-vertex neighbor masks are all
// bitset.Set values, so "P ∩ N(v)" and "P \ N(u)" compress to a handful
// of AND / AND-NOT instructions over n/64 words instead of per-element
// set operations.
//
// A Set has a fixed domain [0, n) chosen at New; every operation between
// two Sets assumes equal domains and is undefined otherwise (callers in
// this module always build Sets from the same graph's vertex count).
//
// Sets are not safe for concurrent mutation; callers that need to share
// a Set across goroutines must synchronize externally. Read-only use
// (Test, PopCount, iteration) is safe to share once a Set is no longer
// mutated.
package bitset
