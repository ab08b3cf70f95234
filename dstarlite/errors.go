package dstarlite

import "errors"

// Sentinel errors for the D* Lite engine.
var (
	// ErrUnknownVertex is returned by Initialize or UpdateStartAndReplan
	// when given a vertex id that was never added via AddNode/AddEdge.
	ErrUnknownVertex = errors.New("dstarlite: vertex was never added to the graph")

	// ErrNotInitialized names the condition of an engine used before a
	// successful Initialize call. No Engine method returns it: the engine
	// does not check whether Initialize has run.
	ErrNotInitialized = errors.New("dstarlite: engine has not been initialized")

	// ErrEmptyQueue names an internal invariant violation: the search
	// kernel peeking or dequeuing an empty queue. No code in this package
	// returns it or panics with it; an empty-queue Peek/Dequeue panics
	// with pqueue.ErrEmpty.
	ErrEmptyQueue = errors.New("dstarlite: internal invariant violation: empty priority queue")
)
