package graph

import "errors"

// Sentinel errors for graph construction and mutation.
var (
	// ErrEmptyID indicates an empty vertex identifier was supplied.
	ErrEmptyID = errors.New("graph: vertex id is empty")

	// ErrVertexNotFound indicates an operation referenced a vertex or an
	// edge that was never added to the graph (SetCost returns it for a
	// missing edge).
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrNegativeCost indicates an edge cost was negative. The engines in
	// this module assume non-negative costs; callers must not pass
	// negative values (see spec §6 Numeric conventions).
	ErrNegativeCost = errors.New("graph: edge cost must be non-negative or +Inf")

	// ErrSelfLoopCost indicates a self-loop was added with a non-zero,
	// finite cost. A vertex is never a beneficial successor of itself, so
	// a non-zero self-loop cost almost always signals a caller mistake.
	ErrSelfLoopCost = errors.New("graph: self-loop must have zero cost")
)
