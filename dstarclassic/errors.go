package dstarclassic

import "errors"

var (
	// ErrUnknownVertex is returned when Initialize names a start vertex
	// never added via AddNode/AddEdge. ModifyCost does not return it: an
	// unknown edge there is a silent no-op.
	ErrUnknownVertex = errors.New("dstarclassic: unknown vertex")

	// ErrEmptyQueue names a corrupt invariant: the open queue popped or
	// peeked while empty. No code in this package returns it or panics
	// with it; an empty-queue Dequeue/Peek panics with pqueue.ErrEmpty.
	ErrEmptyQueue = errors.New("dstarclassic: empty queue operation")

	// ErrGridBacked is returned by AddNode/AddEdge on a GridEngine,
	// whose vertex set is fixed by grid dimensions rather than grown by
	// mutation.
	ErrGridBacked = errors.New("dstarclassic: AddNode/AddEdge unsupported on a grid-backed engine")
)
