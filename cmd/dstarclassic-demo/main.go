// Command dstarclassic-demo drives a dstarclassic.GridEngine over a
// small grid, prints the cold-solved path, then drops two obstacles
// beside it (off the cold-solved route) and prints the path again on a
// colorized ASCII map.
package main

import (
	"fmt"
	"log"

	"github.com/fatih/color"

	"github.com/dstarpath/dstar/dstarclassic"
)

const (
	width, height      = 10, 6
	startX, startY     = 0, 0
	goalX, goalY       = 9, 5
	obstacleX, obstacleY1, obstacleY2 = 5, 1, 2
)

func main() {
	ge, err := dstarclassic.NewGridEngine(width, height, goalX, goalY)
	if err != nil {
		log.Fatalf("NewGridEngine: %v", err)
	}
	if err := ge.InitializeAt(startX, startY); err != nil {
		log.Fatalf("InitializeAt: %v", err)
	}
	if !ge.ProcessState() {
		log.Fatal("goal unreachable after cold solve")
	}

	before, ok := ge.GetPath()
	if !ok {
		log.Fatal("no path found")
	}
	renderGrid(ge, before)
	fmt.Printf("cold solve cost: %.3f\n\n", ge.GetPathCost())

	if err := ge.AddObstacle(obstacleX, obstacleY1); err != nil {
		log.Fatalf("AddObstacle: %v", err)
	}
	if err := ge.AddObstacle(obstacleX, obstacleY2); err != nil {
		log.Fatalf("AddObstacle: %v", err)
	}

	after, ok := ge.GetPath()
	if !ok {
		log.Fatal("no path found after obstacles")
	}
	renderGrid(ge, after)
	fmt.Printf("after obstacles cost: %.3f\n", ge.GetPathCost())
}

func renderGrid(ge *dstarclassic.GridEngine, path []string) {
	onPath := make(map[string]bool, len(path))
	for _, id := range path {
		onPath[id] = true
	}

	start := color.New(color.FgGreen, color.Bold)
	goal := color.New(color.FgRed, color.Bold)
	obstacle := color.New(color.BgBlack, color.FgWhite)
	route := color.New(color.FgYellow)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			id := fmt.Sprintf("%d,%d", x, y)
			switch {
			case x == startX && y == startY:
				start.Print("S")
			case x == goalX && y == goalY:
				goal.Print("G")
			case ge.IsObstacle(x, y):
				obstacle.Print("#")
			case onPath[id]:
				route.Print("*")
			default:
				fmt.Print(".")
			}
			fmt.Print(" ")
		}
		fmt.Println()
	}
}
