// Package graph defines the minimal directed, float64-weighted adjacency
// store consumed by the incremental planners in dstarlite and dstarclassic.
//
// A Digraph owns vertices and edges and exposes two seams:
//
//   - A mutation surface (AddNode, AddEdge, SetCost, RemoveEdge) that the
//     planner packages forward their own public AddNode/AddEdge calls to.
//   - A read-only View interface (Successors, Predecessors, Cost, Contains)
//     that the search kernels actually consume. Any type satisfying View
//     — including gridenv.Grid — can drive a planner without it knowing
//     the difference.
//
// Edge costs are float64, non-negative, or exactly math.Inf(1) to denote a
// blocked or absent edge. Multi-edges are not permitted: re-adding an edge
// between the same ordered pair overwrites its cost in place.
//
// Digraph is safe for concurrent reads and writes via an internal RWMutex,
// but this is purely a defensive aid for callers reading graph state
// between planner repairs — the planners themselves are single-threaded
// and non-reentrant.
package graph
