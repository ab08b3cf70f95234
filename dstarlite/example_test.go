package dstarlite_test

import (
	"fmt"

	"github.com/dstarpath/dstar/dstarlite"
)

// Example demonstrates a cold solve followed by an incremental repair
// after an edge on the current path is blocked.
func Example() {
	e := dstarlite.New(zeroHeuristic)
	_ = e.AddEdge("1", "2", 1)
	_ = e.AddEdge("1", "3", 5)
	_ = e.AddEdge("2", "3", 2)
	_ = e.AddEdge("2", "4", 4)
	_ = e.AddEdge("3", "4", 1)
	_ = e.AddEdge("4", "6", 4)
	_ = e.AddEdge("3", "5", 6)
	_ = e.AddEdge("5", "6", 2)
	_ = e.AddEdge("4", "5", 3)

	_ = e.Initialize("1", "6")
	e.ComputeShortestPath()
	path, _ := e.GetPath()
	fmt.Println(path)

	_ = e.UpdateEdgeCost("3", "4", 1e18)
	path, _ = e.GetPath()
	fmt.Println(path)

	// Output:
	// [1 2 3 4 6]
	// [1 2 4 6]
}
