// Package fixtures provides deterministic graph.Digraph generators for
// the planner packages' property and stress tests: a simple path chain,
// an orthogonal grid, and an Erdős–Rényi-style random sparse graph. Each
// generator validates its parameters and returns a sentinel error rather
// than panicking, and builds directly against graph.Digraph.
package fixtures
