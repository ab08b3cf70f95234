package pathoracle

import (
	"container/heap"
	"math"

	"github.com/dstarpath/dstar/graph"
)

// nodeItem represents a vertex and its current distance from the source,
// as stored in the lazy-decrease-key heap below.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by ascending dist, using the
// lazy-decrease-key discipline: stale entries are pushed and later
// skipped on pop rather than removed in place.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x any)         { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// Dijkstra computes the shortest distance and path from start to goal
// over g using a fresh, from-scratch search. It never consults any
// incremental engine's state and exists purely as a verification oracle.
// Returns (+Inf, nil) if goal is unreachable from start.
func Dijkstra(g graph.View, start, goal string) (float64, []string) {
	dist := map[string]float64{start: 0}
	prev := map[string]string{}
	visited := map[string]bool{}

	pq := make(nodePQ, 0)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: start, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u, d := item.id, item.dist
		if visited[u] {
			continue
		}
		visited[u] = true
		if u == goal {
			break
		}

		for _, nbr := range g.Successors(u) {
			if math.IsInf(nbr.Cost, 1) {
				continue
			}
			nd := d + nbr.Cost
			if cur, ok := dist[nbr.ID]; !ok || nd < cur {
				dist[nbr.ID] = nd
				prev[nbr.ID] = u
				heap.Push(&pq, &nodeItem{id: nbr.ID, dist: nd})
			}
		}
	}

	finalDist, ok := dist[goal]
	if !ok {
		return math.Inf(1), nil
	}

	path := []string{goal}
	for cur := goal; cur != start; {
		p, ok := prev[cur]
		if !ok {
			return math.Inf(1), nil
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return finalDist, path
}
