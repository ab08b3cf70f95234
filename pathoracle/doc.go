// Package pathoracle provides brute-force shortest-path references used
// only by tests: a fresh Dijkstra and an all-pairs Floyd–Warshall over a
// graph.View snapshot. The dstarlite tests check their path costs
// against a fresh Dijkstra run after each repair; the dstarclassic tests
// do not use this package.
//
// Dijkstra runs a single-source search directly over a graph.View's
// float64 costs, with no dependency on a mutable backing store.
// FloydWarshall copies a graph.View's edges into a dense n×n distance
// matrix and returns the all-pairs distances as a map keyed by
// (from, to) pair.
package pathoracle
