package core

import "errors"

// Sentinel error kinds shared across this module. A package reporting one
// of these conditions wraps the sentinel with its own package-prefixed
// detail via fmt.Errorf("%w: ...", ...), so callers can use errors.Is
// against it regardless of which package raised the error. Packages also
// define their own sentinels for conditions outside these kinds (for
// example clique.ErrGraphNil and clique.ErrUnsupportedAlgorithm).
var (
	// ErrInvalidInput indicates malformed input the substrate cannot
	// normalize: a negative vertex id, a non-simple edge the loader
	// cannot drop automatically, or similar.
	ErrInvalidInput = errors.New("core: invalid input")

	// ErrOutOfRange indicates a vertex query referenced an id outside
	// [0, VertexCount()).
	ErrOutOfRange = errors.New("core: vertex out of range")

	// ErrResourceExhausted indicates a bitmap or recursion-depth bound
	// could not be satisfied (allocation failure, depth budget exceeded).
	ErrResourceExhausted = errors.New("core: resource exhausted")

	// ErrInterrupted indicates a caller-supplied cancellation signal was
	// observed between recursion nodes.
	ErrInterrupted = errors.New("core: interrupted")
)
