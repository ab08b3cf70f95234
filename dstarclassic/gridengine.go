package dstarclassic

import (
	"github.com/dstarpath/dstar/gridenv"
)

// GridEngine drives a classic D* Engine over a gridenv.Grid instead of
// an owned graph.Digraph, trading AddNode/AddEdge (which return
// ErrGridBacked) for AddObstacle/RemoveObstacle. The search kernel is
// unchanged: GridEngine only adds the cell-to-edge translation that lets
// a single obstacle toggle drive the same ModifyCost-style reinsertion
// an edge-level caller would trigger by hand.
type GridEngine struct {
	*Engine
	grid *gridenv.Grid
}

// NewGridEngine constructs a GridEngine over a fresh width×height grid,
// targeting the cell (goalX, goalY).
func NewGridEngine(width, height, goalX, goalY int) (*GridEngine, error) {
	grid, err := gridenv.NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	return &GridEngine{
		Engine: newOverView(gridenv.Cell(goalX, goalY), grid),
		grid:   grid,
	}, nil
}

// InitializeAt is Initialize keyed by cell coordinates rather than a raw
// Vertex id.
func (ge *GridEngine) InitializeAt(startX, startY int) error {
	return ge.Initialize(gridenv.Cell(startX, startY))
}

// AddObstacle marks (x, y) impassable on the underlying grid and repairs
// every vertex state whose edges touch it. Mirrors ModifyCost: each
// incident edge becomes +Inf, and its CLOSED target (if any) is
// reinserted before a single processState run resolves the whole
// cascade.
func (ge *GridEngine) AddObstacle(x, y int) error {
	if err := ge.grid.AddObstacle(x, y); err != nil {
		return err
	}
	ge.touchCell(x, y)
	ge.processState()

	return nil
}

// RemoveObstacle clears an obstacle at (x, y) and repairs affected
// vertex states the same way AddObstacle does.
func (ge *GridEngine) RemoveObstacle(x, y int) error {
	if err := ge.grid.RemoveObstacle(x, y); err != nil {
		return err
	}
	ge.touchCell(x, y)
	ge.processState()

	return nil
}

// touchCell reinserts the CLOSED vertices among (x,y) and its 8
// neighbors, covering both directions of every edge the obstacle toggle
// just changed the cost of.
func (ge *GridEngine) touchCell(x, y int) {
	center := gridenv.Cell(x, y)
	ge.reinsertIfClosed(center)

	for _, n := range ge.grid.Successors(center) {
		ge.reinsertIfClosed(n.ID)
	}
}

// IsObstacle reports whether (x, y) is currently marked impassable.
func (ge *GridEngine) IsObstacle(x, y int) bool {
	return ge.grid.IsObstacle(x, y)
}
