package dstarlite

import "math"

// updateVertex recomputes v's rhs from its successors (unless v is the
// goal, whose rhs is pinned at 0), removes any stale queue entry, and
// re-enqueues v iff it is now locally inconsistent (spec §4.3
// "update_vertex(v)").
func (e *Engine) updateVertex(v string) {
	if v != e.goal {
		best := math.Inf(1)
		for _, nbr := range e.g.Successors(v) {
			cand := nbr.Cost + e.state(nbr.ID).g
			if cand < best {
				best = cand
			}
		}
		e.state(v).rhs = best
	}

	if e.pq.Contains(v) {
		e.pq.Remove(v)
	}
	if !e.consistent(v) {
		e.pq.Enqueue(v, e.key(v))
	}
}

// computeShortestPath drains the queue until the termination predicate
// of spec §4.3 holds: the queue is empty, or the start is locally
// consistent and its key is no larger than the queue's top key.
// Returns true iff g(start) is finite.
func (e *Engine) computeShortestPath() bool {
	for !e.pq.IsEmpty() {
		kStart := e.key(e.start)
		topKey := e.pq.PeekPriority()
		if !topKey.Less(kStart) && e.consistent(e.start) {
			break
		}

		u := e.pq.Peek()
		kOld := topKey
		kNew := e.key(u)

		switch {
		case kOld.Less(kNew):
			// The vertex's key has risen since it was queued; re-insert
			// at the fresh key rather than processing it now.
			e.pq.Remove(u)
			e.pq.Enqueue(u, kNew)

		case e.state(u).g > e.state(u).rhs+epsilon:
			// Overconsistent: lower g to rhs and propagate to predecessors.
			e.state(u).g = e.state(u).rhs
			e.pq.Remove(u)
			for _, p := range e.g.Predecessors(u) {
				e.updateVertex(p.ID)
			}

		default:
			// Underconsistent (including g == rhs == +Inf): raise g to
			// +Inf and propagate to u itself and its predecessors.
			e.state(u).g = math.Inf(1)
			e.updateVertex(u)
			for _, p := range e.g.Predecessors(u) {
				e.updateVertex(p.ID)
			}
		}
	}

	return !math.IsInf(e.state(e.start).g, 1)
}
