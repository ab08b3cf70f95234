// Package pqueue implements the indexed binary min-heap the search
// kernels in dstarlite and dstarclassic are built on: a priority queue
// that supports O(1) membership tests and O(log n) removal by vertex
// identity, on top of the usual O(log n) push/pop.
//
// The heap is generic over the vertex identity type V (comparable) and a
// priority type P constrained by Priority[P], so the same implementation
// backs both the lexicographic (k1, k2) keys D* Lite uses and the plain
// float64 keys classic D* uses. An index map kept in lockstep inside
// Swap lets Contains/Remove locate any element by vertex identity in
// O(1)/O(log n) instead of the O(n) linear scan a plain heap would need.
//
// This heap supports true re-keying — Remove followed by Enqueue, each
// O(log n) — because the engines need to re-key a vertex that is already
// queued whenever its priority changes mid-search.
package pqueue
