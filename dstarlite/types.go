package dstarlite

import (
	"math"

	"github.com/dstarpath/dstar/graph"
	"github.com/dstarpath/dstar/pqueue"
)

// epsilon is the absolute tolerance used for local-consistency tests
// (spec §4.3 "Edge-case policies"). Key comparisons never use epsilon:
// they are strict.
const epsilon = 1e-10

// vertexState holds a vertex's D* Lite bookkeeping: current best cost
// g and one-step lookahead rhs. Both default to +Inf for a vertex that
// has never been touched (spec §3 "Lifecycle").
type vertexState struct {
	g, rhs float64
}

func newVertexState() *vertexState {
	return &vertexState{g: math.Inf(1), rhs: math.Inf(1)}
}

// EdgeKey identifies a directed edge for GetEdgeStates.
type EdgeKey struct {
	From, To string
}

// Engine is a D* Lite planner over a graph.Digraph it owns. It is not
// safe for concurrent use and is not reentrant: a heuristic callback
// invoked during a repair must not call back into the same Engine
// (spec §5).
type Engine struct {
	g *graph.Digraph
	h Heuristic

	start, goal string
	km          float64
	initialized bool

	states map[string]*vertexState
	pq     *pqueue.Queue[string, pqueue.LexKey]
}

// New constructs an Engine with the given heuristic. A nil heuristic
// falls back to DefaultHeuristic.
// Complexity: O(1).
func New(h Heuristic) *Engine {
	if h == nil {
		h = DefaultHeuristic
	}

	return &Engine{
		g:      graph.NewDigraph(),
		h:      h,
		states: make(map[string]*vertexState),
	}
}

// state returns v's vertexState, lazily creating it at its default
// +Inf/+Inf values on first reference (spec §3 "Lifecycle").
func (e *Engine) state(v string) *vertexState {
	s, ok := e.states[v]
	if !ok {
		s = newVertexState()
		e.states[v] = s
	}

	return s
}

// AddNode inserts a vertex into the owned graph. Idempotent.
func (e *Engine) AddNode(id string) error {
	return e.g.AddNode(id)
}

// AddEdge inserts or overwrites the directed edge from→to at the given
// cost in the owned graph. Idempotent on re-add (cost is overwritten).
func (e *Engine) AddEdge(from, to string, cost float64) error {
	return e.g.AddEdge(from, to, cost)
}
