// Package dstarlite implements the D* Lite incremental shortest-path
// planner over an arbitrary directed, float64-weighted graph, with
// support for a moving start vertex via a key-modifier accumulator.
//
// An Engine is constructed with a caller-supplied heuristic, populated
// with AddNode/AddEdge, and Initialize'd with a start and goal. The first
// ComputeShortestPath call is a cold solve; subsequent calls after
// UpdateEdgeCost, RestoreEdgeCost, or UpdateStartAndReplan repair the
// existing solution rather than recomputing it from scratch.
//
// Vertex state.
//
//	g(v)   - current best known cost-to-goal.
//	rhs(v) - one-step lookahead: min over successors s of cost(v,s)+g(s),
//	         with rhs(goal) = 0.
//	A vertex is locally consistent iff g(v) == rhs(v) (within epsilon).
//
// The queue holds exactly the locally inconsistent vertices, keyed by
//
//	key(v) = ( min(g(v),rhs(v)) + h(v,start) + km, min(g(v),rhs(v)) )
//
// compared lexicographically. km accumulates h(oldStart, newStart) across
// UpdateStartAndReplan calls so that keys already in the heap stay valid
// without a full re-key (spec §4.2 "Rationale for km").
//
// Floating-point discipline: key comparisons use strict < / >; local
// consistency tests use an absolute epsilon of 1e-10 (spec §4.3, §9).
package dstarlite
