package pqueue

import "errors"

// Sentinel errors used to panic on programming-error conditions. The
// queue itself never returns these as ordinary error values: per spec
// §4.1 ("Failure"), dequeue/peek on an empty queue and enqueueing a
// vertex that is already present are caller mistakes, not recoverable
// runtime conditions.
var (
	// ErrEmpty indicates Dequeue, Peek, or PeekPriority was called on an
	// empty queue.
	ErrEmpty = errors.New("pqueue: operation on empty queue")

	// ErrAlreadyPresent indicates Enqueue was called for a vertex that is
	// already queued. Callers must Remove before re-Enqueue to re-key.
	ErrAlreadyPresent = errors.New("pqueue: vertex already present; remove before re-enqueue")
)
