package pathoracle_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dstarpath/dstar/graph"
	"github.com/dstarpath/dstar/pathoracle"
)

func buildSample(t *testing.T) *graph.Digraph {
	t.Helper()
	g := graph.NewDigraph()
	edges := []struct {
		from, to string
		cost     float64
	}{
		{"1", "2", 1}, {"1", "3", 5}, {"2", "3", 2}, {"2", "4", 4},
		{"3", "4", 1}, {"3", "5", 6}, {"4", "5", 3}, {"4", "6", 4}, {"5", "6", 2},
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.from, e.to, e.cost))
	}

	return g
}

func TestDijkstra_MatchesKnownOptimalPath(t *testing.T) {
	g := buildSample(t)
	dist, path := pathoracle.Dijkstra(g, "1", "6")
	assert.InDelta(t, 8.0, dist, 1e-9)
	assert.Equal(t, []string{"1", "2", "3", "4", "6"}, path)
}

func TestDijkstra_Unreachable(t *testing.T) {
	g := graph.NewDigraph()
	require.NoError(t, g.AddNode("1"))
	require.NoError(t, g.AddNode("2"))
	dist, path := pathoracle.Dijkstra(g, "1", "2")
	assert.True(t, math.IsInf(dist, 1))
	assert.Nil(t, path)
}

func TestFloydWarshall_AgreesWithDijkstraOnEveryPair(t *testing.T) {
	g := buildSample(t)
	all := pathoracle.FloydWarshall(g)

	for _, from := range g.Nodes() {
		for _, to := range g.Nodes() {
			wantDist, _ := pathoracle.Dijkstra(g, from, to)
			gotDist := all[[2]string{from, to}]
			if math.IsInf(wantDist, 1) {
				assert.True(t, math.IsInf(gotDist, 1), "from=%s to=%s", from, to)
				continue
			}
			assert.InDelta(t, wantDist, gotDist, 1e-9, "from=%s to=%s", from, to)
		}
	}
}

func TestFloydWarshall_SelfDistanceIsZero(t *testing.T) {
	g := buildSample(t)
	all := pathoracle.FloydWarshall(g)
	for _, id := range g.Nodes() {
		assert.InDelta(t, 0.0, all[[2]string{id, id}], 1e-9)
	}
}
