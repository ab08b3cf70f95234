package dstarclassic

import (
	"math"

	"github.com/dstarpath/dstar/pqueue"
)

// Initialize resets every known vertex's h/tag/parent, and enqueues the
// goal at h=0 (spec §4.5). start must already be known to the graph;
// otherwise ErrUnknownVertex is returned. The goal is created lazily if
// it has never been referenced.
func (e *Engine) Initialize(start Vertex) error {
	if !e.g.Contains(start) {
		return ErrUnknownVertex
	}

	e.start = start
	e.states = make(map[Vertex]*vertexState)
	e.pq = pqueue.NewQueue[Vertex, pqueue.ScalarKey]()
	e.insert(e.goal, 0)
	e.initialized = true

	return nil
}

// ModifyCost applies a single edge-cost change (or, via gridenv, an
// obstacle toggle expressed as a run of edge changes around a cell) and
// repairs the solution. to, not from, is the vertex re-inserted when it
// was already CLOSED: LOWER(to) walks to's predecessors — which include
// from — reading the now-current cost(from,to), so reinserting to is
// what lets the change actually reach from during this processState run
// (spec §4.5's "modify_cost(vertex)" is this reinsertion step,
// generalized here to the edge that triggers it).
func (e *Engine) ModifyCost(from, to Vertex, cost float64) error {
	if err := e.g.SetCost(from, to, cost); err != nil {
		return nil // StaleEdge: silent no-op, spec §7.
	}

	e.reinsertIfClosed(to)
	e.processState()

	return nil
}

// reinsertIfClosed re-opens v at its current h if it was CLOSED, so the
// next processState run re-examines it under the edge cost that just
// changed. A no-op for NEW/OPEN vertices, which processState will reach
// on its own.
func (e *Engine) reinsertIfClosed(v Vertex) {
	s := e.state(v)
	if s.tag == TagClosed {
		e.insert(v, s.h)
	}
}

// RestoreCost resets the edge from→to to the cost it had the first time
// it was added, then repairs the solution the same way ModifyCost does.
func (e *Engine) RestoreCost(from, to Vertex) error {
	if !e.g.RestoreCost(from, to) {
		return nil
	}

	e.reinsertIfClosed(to)
	e.processState()

	return nil
}

// GetPath follows parent pointers from start to goal, returning the
// visited vertex sequence. Returns (nil, false) if start is unreachable
// or extraction exceeds 2*|V| steps (spec §4.5 safeguard).
func (e *Engine) GetPath() ([]Vertex, bool) {
	if math.IsInf(e.state(e.start).h, 1) {
		return nil, false
	}

	limit := 2 * len(e.g.Nodes())
	if limit == 0 {
		limit = 2
	}

	path := []Vertex{e.start}
	cur := e.start
	for cur != e.goal {
		if len(path) > limit {
			return nil, false
		}

		s := e.state(cur)
		if !s.hasPar {
			return nil, false
		}
		cur = s.parent
		path = append(path, cur)
	}

	return path, true
}

// GetPathCost returns h(start): the current best known cost from start
// to goal, or +Inf if unreachable.
func (e *Engine) GetPathCost() float64 {
	return e.state(e.start).h
}

// Stats is a cheap read-only snapshot of engine progress, useful for a
// watchdog observing queue size between repairs.
type Stats struct {
	VertexCount int
	QueueSize   int
}

// Stats returns a snapshot of the engine's current size.
func (e *Engine) Stats() Stats {
	queueSize := 0
	if e.pq != nil {
		queueSize = e.pq.Count()
	}

	return Stats{
		VertexCount: len(e.g.Nodes()),
		QueueSize:   queueSize,
	}
}
