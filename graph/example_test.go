package graph_test

import (
	"fmt"

	"github.com/dstarpath/dstar/graph"
)

// ExampleDigraph demonstrates building a tiny directed graph and reading
// it back through the View contract that the planners consume.
func ExampleDigraph() {
	g := graph.NewDigraph()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2)

	fmt.Println(g.Cost("A", "B"))
	fmt.Println(g.Cost("A", "C"))
	// Output:
	// 1
	// +Inf
}
