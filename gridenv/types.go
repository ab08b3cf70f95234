package gridenv

import (
	"fmt"
	"math"
)

// axial/diagonal offsets for 8-connected movement.
var offsets8 = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// Cell packs grid coordinates into the string Vertex handle dstarclassic
// expects.
func Cell(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

// coord unpacks a Cell-formatted Vertex back into coordinates. ok is
// false if s is not a well-formed cell id.
func coord(s string) (x, y int, ok bool) {
	n, err := fmt.Sscanf(s, "%d,%d", &x, &y)

	return x, y, err == nil && n == 2
}

// Grid is an 8-connected 2D grid implementing graph.MutableView, with a
// toggleable set of obstacle cells. Unlike graph.Digraph, costs are
// computed on the fly from coordinates and the obstacle set rather than
// stored per edge.
type Grid struct {
	width, height int
	blocked       map[string]bool
	overrides     map[[2]string]float64 // per-directed-edge cost overrides from SetCost
}

// NewGrid constructs an empty width×height grid with no obstacles.
// Returns ErrInvalidDimensions if either dimension is non-positive.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Grid{
		width:     width,
		height:    height,
		blocked:   make(map[string]bool),
		overrides: make(map[[2]string]float64),
	}, nil
}

// InBounds reports whether (x, y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// AddObstacle marks (x, y) impassable: every edge touching it becomes
// +Inf in both directions. Returns ErrOutOfBounds if the cell is outside
// the grid.
func (g *Grid) AddObstacle(x, y int) error {
	if !g.InBounds(x, y) {
		return ErrOutOfBounds
	}
	g.blocked[Cell(x, y)] = true

	return nil
}

// RemoveObstacle clears an obstacle at (x, y), restoring the axial/
// diagonal costs of every edge touching it. Returns ErrOutOfBounds if
// the cell is outside the grid.
func (g *Grid) RemoveObstacle(x, y int) error {
	if !g.InBounds(x, y) {
		return ErrOutOfBounds
	}
	delete(g.blocked, Cell(x, y))

	return nil
}

// IsObstacle reports whether (x, y) is currently marked impassable.
func (g *Grid) IsObstacle(x, y int) bool {
	return g.blocked[Cell(x, y)]
}

// baseCost returns the geometric move cost between adjacent cells,
// ignoring obstacles: 1 for axial moves, sqrt(2) for diagonal.
func baseCost(dx, dy int) float64 {
	if dx != 0 && dy != 0 {
		return math.Sqrt2
	}

	return 1
}
