// Package dstarclassic implements the classic D* incremental search
// kernel over an arbitrary directed graph or, via gridenv, an
// 8-connected 2D grid.
//
// Each vertex carries h (best known cost to the goal), tag (NEW, OPEN,
// or CLOSED), parent (the next hop toward the goal), and k (the
// priority at which the vertex is, or was last, queued — tracked
// separately from h so that processState can detect cost increases
// that must propagate outward before being trusted).
//
// processState runs one of two phases per dequeued vertex: RAISE, run
// when its h has risen above its queued priority, which looks for a
// cheaper parent among its successors whose h is at most that priority,
// and LOWER, which offers the vertex as parent to its predecessors of
// any tag and re-queues those whose h changes. insert applies the priority-inversion-safe
// re-keying rule described in its own doc comment.
//
// Like dstarlite, Engine is not safe for concurrent use and is not
// reentrant.
package dstarclassic
