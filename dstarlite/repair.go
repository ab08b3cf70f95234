package dstarlite

import (
	"math"

	"github.com/dstarpath/dstar/pqueue"
)

// Initialize resets all known vertices' g/rhs, zeroes km, and seeds the
// queue with the goal at rhs(goal)=0 (spec §4.5). Both start and goal
// must already be known to the graph (added via AddNode/AddEdge);
// otherwise ErrUnknownVertex is returned.
func (e *Engine) Initialize(start, goal string) error {
	if !e.g.Contains(start) {
		return ErrUnknownVertex
	}
	if !e.g.Contains(goal) {
		return ErrUnknownVertex
	}

	e.start = start
	e.goal = goal
	e.km = 0
	e.states = make(map[string]*vertexState)
	e.pq = pqueue.NewQueue[string, pqueue.LexKey]()
	e.state(goal).rhs = 0
	e.pq.Enqueue(goal, e.key(goal))
	e.initialized = true

	return nil
}

// ComputeShortestPath runs the search kernel to a cold or repaired
// solution and reports whether start is reachable from goal under the
// current edge costs.
func (e *Engine) ComputeShortestPath() bool {
	return e.computeShortestPath()
}

// UpdateEdgeCost applies a single edge-cost change and repairs the
// solution. Updating an edge that was never added (StaleEdge) is a
// silent no-op. Each call runs the search kernel once; to change several
// edges with a single kernel run, use BatchUpdateEdgeCosts.
func (e *Engine) UpdateEdgeCost(from, to string, newCost float64) error {
	if err := e.g.SetCost(from, to, newCost); err != nil {
		// The edge was never added (or newCost is invalid): a StaleEdge
		// no-op per spec §7, not a reported failure.
		return nil
	}
	e.updateVertex(from)
	e.computeShortestPath()

	return nil
}

// RestoreEdgeCost resets the edge from→to to the cost it had the first
// time it was added, undoing later UpdateEdgeCost calls, and repairs the
// solution. Restoring an edge that was never added, or that already sits
// at its original cost, is a silent no-op (spec §8 Idempotence).
func (e *Engine) RestoreEdgeCost(from, to string) error {
	if !e.g.RestoreCost(from, to) {
		return nil
	}
	e.updateVertex(from)
	e.computeShortestPath()

	return nil
}

// EdgeCostChange describes one edge's new cost for BatchUpdateEdgeCosts.
type EdgeCostChange struct {
	From, To string
	Cost     float64
}

// BatchUpdateEdgeCosts applies every change's new cost first, then calls
// updateVertex once per distinct From endpoint, then runs the search
// kernel a single time — the batching protocol spec §4.5 describes for
// multiple simultaneous edge changes.
func (e *Engine) BatchUpdateEdgeCosts(changes []EdgeCostChange) {
	touched := make(map[string]struct{}, len(changes))
	for _, c := range changes {
		if err := e.g.SetCost(c.From, c.To, c.Cost); err != nil {
			continue // StaleEdge: silently skip
		}
		touched[c.From] = struct{}{}
	}
	for from := range touched {
		e.updateVertex(from)
	}
	e.computeShortestPath()
}

// UpdateStartAndReplan moves the start vertex, folding
// h(oldStart, newStart) into km so previously-queued keys stay valid
// without a full re-key (spec §4.2, §4.5), then repairs the solution.
// Returns ErrUnknownVertex if newStart was never added to the graph.
func (e *Engine) UpdateStartAndReplan(newStart string) (bool, error) {
	if !e.g.Contains(newStart) {
		return false, ErrUnknownVertex
	}

	e.km += e.h(e.start, newStart)
	e.start = newStart

	return e.computeShortestPath(), nil
}

// GetPath greedily follows, from start, the successor minimizing
// cost(current,n)+g(n) until goal is reached, returning the sequence of
// visited vertex ids. Returns (nil, false) if start is unreachable, or if
// extraction exceeds 2*|V| steps — the spec §4.5 safeguard against a
// pathologically inconsistent state.
func (e *Engine) GetPath() ([]string, bool) {
	if math.IsInf(e.state(e.start).g, 1) {
		return nil, false
	}

	limit := 2 * len(e.g.Nodes())
	if limit == 0 {
		limit = 2
	}

	path := []string{e.start}
	cur := e.start
	for cur != e.goal {
		if len(path) > limit {
			return nil, false
		}

		best := ""
		bestCost := math.Inf(1)
		for _, nbr := range e.g.Successors(cur) {
			cand := nbr.Cost + e.state(nbr.ID).g
			if cand < bestCost {
				bestCost = cand
				best = nbr.ID
			}
		}
		if best == "" {
			return nil, false
		}
		cur = best
		path = append(path, cur)
	}

	return path, true
}

// GetPathCost returns g(start): the current best known cost from start
// to goal, or +Inf if unreachable.
func (e *Engine) GetPathCost() float64 {
	return e.state(e.start).g
}

// Start returns the vertex last passed to Initialize or
// UpdateStartAndReplan.
func (e *Engine) Start() string {
	return e.start
}

// Goal returns the vertex passed to Initialize.
func (e *Engine) Goal() string {
	return e.goal
}

// Stats is a cheap read-only snapshot of engine progress, useful for a
// watchdog observing queue size between repairs.
type Stats struct {
	VertexCount int
	QueueSize   int
	Km          float64
}

// Stats returns a snapshot of the engine's current size and km offset.
func (e *Engine) Stats() Stats {
	queueSize := 0
	if e.pq != nil {
		queueSize = e.pq.Count()
	}

	return Stats{
		VertexCount: len(e.g.Nodes()),
		QueueSize:   queueSize,
		Km:          e.km,
	}
}

// GetEdgeStates returns every currently-known edge and its current cost.
func (e *Engine) GetEdgeStates() map[EdgeKey]float64 {
	out := make(map[EdgeKey]float64)
	for _, from := range e.g.Nodes() {
		for _, nbr := range e.g.Successors(from) {
			out[EdgeKey{From: from, To: nbr.ID}] = nbr.Cost
		}
	}

	return out
}
