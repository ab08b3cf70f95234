// Command dstarlite-demo drives a dstarlite.Engine over a small weighted
// chain, prints the cold-solved path, blocks an edge on that path, and
// prints the repaired path, each result's label in its own color.
package main

import (
	"fmt"
	"log"

	"github.com/fatih/color"

	"github.com/dstarpath/dstar/dstarlite"
)

func manhattanZero(string, string) float64 { return 0 }

func main() {
	e := dstarlite.New(manhattanZero)

	edges := []struct {
		from, to string
		cost     float64
	}{
		{"1", "2", 1}, {"1", "3", 5}, {"2", "3", 2}, {"2", "4", 4},
		{"3", "4", 1}, {"3", "5", 6}, {"4", "5", 3}, {"4", "6", 4}, {"5", "6", 2},
	}
	for _, ed := range edges {
		if err := e.AddEdge(ed.from, ed.to, ed.cost); err != nil {
			log.Fatalf("AddEdge(%s,%s): %v", ed.from, ed.to, err)
		}
	}

	if err := e.Initialize("1", "6"); err != nil {
		log.Fatalf("Initialize: %v", err)
	}
	if !e.ComputeShortestPath() {
		log.Fatal("goal unreachable after cold solve")
	}

	before, ok := e.GetPath()
	if !ok {
		log.Fatal("no path found")
	}
	printPath(color.New(color.FgGreen), "cold solve", before, e.GetPathCost())

	if err := e.UpdateEdgeCost("3", "4", 1e18); err != nil {
		log.Fatalf("UpdateEdgeCost: %v", err)
	}

	after, ok := e.GetPath()
	if !ok {
		log.Fatal("no path found after repair")
	}
	printPath(color.New(color.FgYellow), "after blocking 3→4", after, e.GetPathCost())

	stats := e.Stats()
	fmt.Printf("vertices tracked: %d, queue size: %d\n", stats.VertexCount, stats.QueueSize)
}

func printPath(c *color.Color, label string, path []string, cost float64) {
	c.Printf("%s: ", label)
	for i, v := range path {
		if i > 0 {
			fmt.Print(" -> ")
		}
		fmt.Print(v)
	}
	fmt.Printf(" (cost %.2f)\n", cost)
}
