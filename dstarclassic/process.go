package dstarclassic

import (
	"math"

	"github.com/dstarpath/dstar/pqueue"
)

// insert applies the priority-inversion-safe re-keying rule: a vertex
// re-entering the queue at a new h must never be given a priority
// higher than one it already held, or a stale high priority could let
// a RAISE phase trust an h that is about to be lowered again.
//
// For the CLOSED case, k = min(h_old, h_new) where h_old is read before
// h is reassigned below — reassigning first and then taking min(h, h_new)
// would always yield h_new and silently drop the inversion guard.
func (e *Engine) insert(v Vertex, hNew float64) {
	s := e.state(v)

	switch s.tag {
	case TagNew:
		s.k = hNew
	case TagOpen:
		if hNew < s.k {
			s.k = hNew
		}
		e.pq.Remove(v)
	case TagClosed:
		hOld := s.h
		if hOld < hNew {
			s.k = hOld
		} else {
			s.k = hNew
		}
	}

	s.h = hNew
	s.tag = TagOpen
	e.pq.Enqueue(v, pqueue.ScalarKey(s.k))
}

// ProcessState drains the open queue until the termination predicate
// holds: the queue is empty, or the top priority is no longer less than
// h(start) while h(start) is finite. Returns true iff start ended up
// reachable (h(start) finite).
func (e *Engine) ProcessState() bool {
	return e.processState()
}

func (e *Engine) processState() bool {
	for !e.pq.IsEmpty() {
		top := float64(e.pq.PeekPriority())
		hStart := e.state(e.start).h
		if !(top < hStart) && !math.IsInf(hStart, 1) {
			break
		}

		kOld := top
		u := e.pq.Dequeue()
		hOld := e.state(u).h
		e.state(u).tag = TagClosed

		if kOld < hOld {
			e.raise(u, kOld)
		} else {
			e.lower(u)
		}
	}

	return !math.IsInf(e.state(e.start).h, 1)
}

// raise looks for a cheaper parent for u among u's own successors — the
// only vertices that can validly serve as u's next hop toward the goal
// — trusted at or below kOld. Triggered when u's cost just went up and
// a better route might exist through a successor that was settled
// before the increase was known.
func (e *Engine) raise(u Vertex, kOld float64) {
	s := e.state(u)
	for _, nbr := range e.g.Successors(u) {
		n := nbr.ID
		ns := e.state(n)
		if ns.h > kOld {
			continue
		}
		cand := ns.h + nbr.Cost
		if s.h > cand {
			s.parent = n
			s.hasPar = true
			s.h = cand
		}
	}
}

// lower propagates u's newly-settled h to u's predecessors — the nodes
// for which u is a valid next hop toward the goal — the LOWER phase,
// run when u's cost just went down (or u is being processed for the
// first time) and a predecessor may now have a cheaper route through u.
func (e *Engine) lower(u Vertex) {
	s := e.state(u)
	for _, nbr := range e.g.Predecessors(u) {
		n := nbr.ID
		ns := e.state(n)
		hNew := s.h + nbr.Cost

		isParent := ns.hasPar && ns.parent == u
		shouldUpdate := ns.tag == TagNew ||
			(isParent && ns.h != hNew) ||
			(!isParent && ns.h > hNew)
		if !shouldUpdate {
			continue
		}

		ns.parent = u
		ns.hasPar = true
		e.insert(n, hNew)
	}
}
