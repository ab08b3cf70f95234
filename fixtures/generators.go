package fixtures

import (
	"fmt"
	"math/rand"

	"github.com/dstarpath/dstar/graph"
)

const minNodes = 1

// Path builds a simple directed chain 0→1→…→(n-1), each edge weighted
// cost. Vertex ids are decimal strings "0".."n-1". Requires n ≥ 2.
func Path(n int, cost float64) (*graph.Digraph, error) {
	if n < 2 {
		return nil, fmt.Errorf("Path: n=%d < 2: %w", n, ErrTooFewVertices)
	}

	g := graph.NewDigraph()
	for i := 0; i < n; i++ {
		if err := g.AddNode(fmt.Sprintf("%d", i)); err != nil {
			return nil, err
		}
	}
	for i := 1; i < n; i++ {
		from, to := fmt.Sprintf("%d", i-1), fmt.Sprintf("%d", i)
		if err := g.AddEdge(from, to, cost); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Grid builds a rows×cols orthogonal grid with 4-neighborhood
// connectivity, vertex ids "r,c" in row-major order, and a reverse arc
// for every forward edge (the grid is logically undirected but
// graph.Digraph only stores directed edges). axialCost weights every
// edge. Requires rows ≥ 1 and cols ≥ 1.
func Grid(rows, cols int, axialCost float64) (*graph.Digraph, error) {
	if rows < minNodes || cols < minNodes {
		return nil, fmt.Errorf("Grid: rows=%d, cols=%d < %d: %w", rows, cols, minNodes, ErrTooFewVertices)
	}

	g := graph.NewDigraph()
	id := func(r, c int) string { return fmt.Sprintf("%d,%d", r, c) }

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if err := g.AddNode(id(r, c)); err != nil {
				return nil, err
			}
		}
	}

	link := func(a, b string) error {
		if err := g.AddEdge(a, b, axialCost); err != nil {
			return err
		}

		return g.AddEdge(b, a, axialCost)
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				if err := link(id(r, c), id(r, c+1)); err != nil {
					return nil, err
				}
			}
			if r+1 < rows {
				if err := link(id(r, c), id(r+1, c)); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// RandomSparse builds an Erdős–Rényi-style directed graph over n
// vertices, including each ordered pair (i,j), i≠j, independently with
// probability p, weighted cost. seed freezes the trial sequence so the
// same (n, p, seed) always yields the same graph. Requires n ≥ 1 and
// 0 ≤ p ≤ 1.
func RandomSparse(n int, p float64, cost float64, seed int64) (*graph.Digraph, error) {
	if n < minNodes {
		return nil, fmt.Errorf("RandomSparse: n=%d < %d: %w", n, minNodes, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("RandomSparse: p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
	}

	g := graph.NewDigraph()
	for i := 0; i < n; i++ {
		if err := g.AddNode(fmt.Sprintf("%d", i)); err != nil {
			return nil, err
		}
	}

	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if rng.Float64() < p {
				from, to := fmt.Sprintf("%d", i), fmt.Sprintf("%d", j)
				if err := g.AddEdge(from, to, cost); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}
