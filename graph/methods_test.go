package graph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dstarpath/dstar/graph"
)

// TestDigraph_AddNode verifies empty-id rejection and idempotent re-add.
func TestDigraph_AddNode(t *testing.T) {
	g := graph.NewDigraph()

	require.ErrorIs(t, g.AddNode(""), graph.ErrEmptyID)

	require.NoError(t, g.AddNode("A"))
	assert.True(t, g.Contains("A"))

	// Re-adding is a no-op, not an error.
	require.NoError(t, g.AddNode("A"))
	assert.Equal(t, 1, g.Stats().VertexCount)
}

// TestDigraph_AddEdge_OverwritesCost verifies re-adding an edge overwrites
// its cost in place rather than creating a parallel edge.
func TestDigraph_AddEdge_OverwritesCost(t *testing.T) {
	g := graph.NewDigraph()

	require.NoError(t, g.AddEdge("A", "B", 5))
	assert.Equal(t, 5.0, g.Cost("A", "B"))

	require.NoError(t, g.AddEdge("A", "B", 2))
	assert.Equal(t, 2.0, g.Cost("A", "B"))
	assert.Equal(t, 1, g.Stats().EdgeCount)
}

// TestDigraph_Cost_AbsentIsInfinite verifies that an edge never added
// reports +Inf, indistinguishable from an explicitly blocked edge.
func TestDigraph_Cost_AbsentIsInfinite(t *testing.T) {
	g := graph.NewDigraph()
	require.NoError(t, g.AddNode("A"))
	require.NoError(t, g.AddNode("B"))

	assert.True(t, math.IsInf(g.Cost("A", "B"), 1))

	require.NoError(t, g.AddEdge("A", "B", math.Inf(1)))
	assert.True(t, math.IsInf(g.Cost("A", "B"), 1))
}

// TestDigraph_AddEdge_RejectsNegativeCost verifies negative costs are
// rejected rather than silently accepted (spec §6 Numeric conventions).
func TestDigraph_AddEdge_RejectsNegativeCost(t *testing.T) {
	g := graph.NewDigraph()
	require.ErrorIs(t, g.AddEdge("A", "B", -1), graph.ErrNegativeCost)
}

// TestDigraph_AddEdge_RejectsNonZeroSelfLoop verifies a non-zero-cost
// self-loop is rejected.
func TestDigraph_AddEdge_RejectsNonZeroSelfLoop(t *testing.T) {
	g := graph.NewDigraph()
	require.ErrorIs(t, g.AddEdge("A", "A", 1), graph.ErrSelfLoopCost)
	require.NoError(t, g.AddEdge("A", "A", 0))
}

// TestDigraph_SuccessorsPredecessors verifies symmetric bookkeeping of the
// out/in adjacency maps.
func TestDigraph_SuccessorsPredecessors(t *testing.T) {
	g := graph.NewDigraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("C", "B", 3))

	succA := g.Successors("A")
	require.Len(t, succA, 1)
	assert.Equal(t, "B", succA[0].ID)

	predB := g.Predecessors("B")
	assert.Len(t, predB, 2)
}

// TestDigraph_RemoveEdge_IsIdempotent verifies removing an unknown edge is
// a silent no-op, matching the repair API's StaleEdge policy.
func TestDigraph_RemoveEdge_IsIdempotent(t *testing.T) {
	g := graph.NewDigraph()
	require.NoError(t, g.AddEdge("A", "B", 1))

	g.RemoveEdge("A", "B")
	assert.True(t, math.IsInf(g.Cost("A", "B"), 1))

	// Removing again, or removing an edge that never existed, must not panic.
	g.RemoveEdge("A", "B")
	g.RemoveEdge("X", "Y")
}

// TestDigraph_RestoreCost verifies RestoreCost reverts to the cost an
// edge had when first added, regardless of how many SetCost calls
// intervened, and reports false for an edge that was never added.
func TestDigraph_RestoreCost(t *testing.T) {
	g := graph.NewDigraph()
	require.NoError(t, g.AddEdge("A", "B", 3))

	require.NoError(t, g.SetCost("A", "B", 99))
	require.NoError(t, g.SetCost("A", "B", 7))
	assert.Equal(t, 7.0, g.Cost("A", "B"))

	assert.True(t, g.RestoreCost("A", "B"))
	assert.Equal(t, 3.0, g.Cost("A", "B"))

	assert.False(t, g.RestoreCost("X", "Y"))
}

// TestDigraph_SetCost_UnknownEdgeErrors verifies SetCost rejects an edge
// that was never added via AddEdge.
func TestDigraph_SetCost_UnknownEdgeErrors(t *testing.T) {
	g := graph.NewDigraph()
	require.NoError(t, g.AddNode("A"))
	require.NoError(t, g.AddNode("B"))

	assert.ErrorIs(t, g.SetCost("A", "B", 5), graph.ErrVertexNotFound)
}

// TestDigraph_Clone verifies Clone produces an independent deep copy.
func TestDigraph_Clone(t *testing.T) {
	g := graph.NewDigraph()
	require.NoError(t, g.AddEdge("A", "B", 4))

	clone := g.Clone()
	require.NoError(t, g.SetCost("A", "B", 9))

	assert.Equal(t, 9.0, g.Cost("A", "B"))
	assert.Equal(t, 4.0, clone.Cost("A", "B"))

	// The clone's own RestoreCost must revert to the edge's original
	// cost independently of the source graph's orig bookkeeping.
	require.NoError(t, clone.SetCost("A", "B", 50))
	assert.True(t, clone.RestoreCost("A", "B"))
	assert.Equal(t, 4.0, clone.Cost("A", "B"))
}

// TestDigraph_CloneEmpty verifies CloneEmpty copies vertices but not edges.
func TestDigraph_CloneEmpty(t *testing.T) {
	g := graph.NewDigraph()
	require.NoError(t, g.AddEdge("A", "B", 4))

	clone := g.CloneEmpty()
	assert.Equal(t, 2, clone.Stats().VertexCount)
	assert.Equal(t, 0, clone.Stats().EdgeCount)
}
