package pathoracle

import (
	"math"

	"github.com/dstarpath/dstar/graph"
)

// FloydWarshall computes all-pairs shortest distances over g: it copies
// g's edges into a dense n×n distance matrix, relaxes it with the
// triple loop, and returns a map keyed by (from, to) pair holding an
// entry for every pair (+Inf where unreachable).
// Complexity: O(V^3) time, O(V^2) space.
func FloydWarshall(g graph.View) map[[2]string]float64 {
	ids := collectIDs(g)
	n := len(ids)
	idx := make(map[string]int, n)
	for i, id := range ids {
		idx[id] = i
	}

	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			if i == j {
				dist[i][j] = 0
			} else {
				dist[i][j] = math.Inf(1)
			}
		}
	}
	for i, id := range ids {
		for _, nbr := range g.Successors(id) {
			j, ok := idx[nbr.ID]
			if !ok || math.IsInf(nbr.Cost, 1) {
				continue
			}
			if nbr.Cost < dist[i][j] {
				dist[i][j] = nbr.Cost
			}
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if math.IsInf(dist[i][k], 1) {
				continue
			}
			for j := 0; j < n; j++ {
				if cand := dist[i][k] + dist[k][j]; cand < dist[i][j] {
					dist[i][j] = cand
				}
			}
		}
	}

	out := make(map[[2]string]float64, n*n)
	for i, from := range ids {
		for j, to := range ids {
			out[[2]string{from, to}] = dist[i][j]
		}
	}

	return out
}

// collectIDs returns g's vertex ids through NodeLister, which Digraph and
// gridenv.Grid both implement. graph.View has no "list all ids" method;
// for a View that does not implement NodeLister it returns nil, and
// FloydWarshall then returns an empty map.
func collectIDs(g graph.View) []string {
	if lister, ok := g.(NodeLister); ok {
		return lister.Nodes()
	}

	return nil
}

// NodeLister is implemented by graph views that can enumerate every
// known vertex id, which FloydWarshall needs to size its distance matrix
// (a capability graph.View itself does not require, since the search
// kernels never need to enumerate the whole graph).
type NodeLister interface {
	Nodes() []string
}
