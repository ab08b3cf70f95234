package dstarclassic

import (
	"math"

	"github.com/dstarpath/dstar/graph"
	"github.com/dstarpath/dstar/pqueue"
)

// Vertex identifies a graph vertex. The grid adapter packs (x, y) cells
// into a Vertex elsewhere (gridenv); the plain Engine treats it as an
// opaque string handle, same as dstarlite.
type Vertex = string

// Tag is a vertex's classic D* lifecycle marker.
type Tag int

const (
	TagNew Tag = iota
	TagOpen
	TagClosed
)

// String implements fmt.Stringer.
func (t Tag) String() string {
	switch t {
	case TagNew:
		return "NEW"
	case TagOpen:
		return "OPEN"
	case TagClosed:
		return "CLOSED"
	default:
		return "UNKNOWN"
	}
}

// vertexState holds a vertex's classic D* bookkeeping: h is the best
// known cost to the goal, tag is its lifecycle marker, parent is the
// next hop toward the goal, and k is the priority the vertex is (or was
// last) queued at — distinct from h so RAISE can detect a stale,
// now-too-low h before trusting it.
type vertexState struct {
	h      float64
	tag    Tag
	parent Vertex
	hasPar bool
	k      float64
}

func newVertexState() *vertexState {
	return &vertexState{h: math.Inf(1), tag: TagNew, k: math.Inf(1)}
}

// Engine is a classic D* planner over a graph.MutableView it drives.
// The kernel (processState, raise, lower, GetPath, Stats) only ever
// touches g through that interface, which is what lets a GridEngine
// substitute a gridenv.Grid for the plain graph-backed store without
// duplicating any search logic.
type Engine struct {
	g     graph.MutableView
	store *graph.Digraph // non-nil only when New constructed the engine; nil for grid-backed engines
	goal  Vertex

	start       Vertex
	initialized bool

	states map[Vertex]*vertexState
	pq     *pqueue.Queue[Vertex, pqueue.ScalarKey]
}

// New constructs an Engine over its own owned graph.Digraph, targeting
// goal. goal need not already exist in the graph; it is created lazily
// like any other vertex.
// Complexity: O(1).
func New(goal Vertex) *Engine {
	store := graph.NewDigraph()

	return &Engine{
		g:      store,
		store:  store,
		goal:   goal,
		states: make(map[Vertex]*vertexState),
	}
}

// newOverView constructs an Engine over an already-built graph.MutableView
// (e.g. a gridenv.Grid), with no owned Digraph — used by GridEngine.
func newOverView(goal Vertex, view graph.MutableView) *Engine {
	return &Engine{
		g:      view,
		goal:   goal,
		states: make(map[Vertex]*vertexState),
	}
}

// state returns v's vertexState, lazily creating it at its default
// +Inf/NEW values on first reference.
func (e *Engine) state(v Vertex) *vertexState {
	s, ok := e.states[v]
	if !ok {
		s = newVertexState()
		e.states[v] = s
	}

	return s
}

// AddNode inserts a vertex into the owned graph. Idempotent. Returns
// ErrGridBacked if the engine is backed by a gridenv.Grid instead of an
// owned Digraph.
func (e *Engine) AddNode(id Vertex) error {
	if e.store == nil {
		return ErrGridBacked
	}

	return e.store.AddNode(id)
}

// AddEdge inserts or overwrites the directed edge from→to at the given
// cost in the owned graph. Idempotent on re-add (cost is overwritten).
// Returns ErrGridBacked if the engine is backed by a gridenv.Grid.
func (e *Engine) AddEdge(from, to Vertex, cost float64) error {
	if e.store == nil {
		return ErrGridBacked
	}

	return e.store.AddEdge(from, to, cost)
}
