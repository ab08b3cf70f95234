// Package dstar is an incremental shortest-path planning library: two
// replanning engines, D* Lite and classic D*, that keep a path to a
// fixed goal up to date as individual edge costs change, without
// recomputing the whole graph from scratch.
//
// Subpackages:
//
//	graph       — directed, float64-weighted adjacency store (the planners' graph view)
//	dstarlite   — D* Lite: g/rhs vertex state, lexicographic priority keys
//	dstarclassic — classic D*: h/tag/parent vertex state, RAISE/LOWER repair
//	gridenv     — 8-connected grid adapter usable as a graph view without materializing edges
//	pathoracle  — from-scratch Dijkstra/Floyd–Warshall, used only to verify the incremental engines
//	fixtures    — deterministic graph generators for tests
//
// Both engines are initialized once against a goal, then driven by a
// small repair API (UpdateEdgeCost/ModifyCost, and for D* Lite,
// UpdateStartAndReplan) as the world changes. Neither is safe for
// concurrent use or reentrant.
package dstar
