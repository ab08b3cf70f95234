package gridenv

import (
	"math"

	"github.com/dstarpath/dstar/graph"
)

// Successors returns v's 8-connected in-bounds neighbors and their
// costs. Returns nil if v is not an in-bounds cell. Every in-bounds
// neighbor is returned, including those across a blocked or overridden
// edge, which carry that edge's cost (possibly +Inf) rather than being
// filtered out; the kernels decide reachability from the costs.
func (g *Grid) Successors(v string) []graph.Neighbor {
	x, y, ok := coord(v)
	if !ok || !g.InBounds(x, y) {
		return nil
	}

	out := make([]graph.Neighbor, 0, 8)
	for _, off := range offsets8 {
		nx, ny := x+off[0], y+off[1]
		if !g.InBounds(nx, ny) {
			continue
		}
		to := Cell(nx, ny)
		out = append(out, graph.Neighbor{ID: to, Cost: g.Cost(v, to)})
	}

	return out
}

// Predecessors mirrors Successors: on an undirected grid an edge's
// predecessor set is identical to its successor set except where SetCost
// has overridden only one direction.
func (g *Grid) Predecessors(v string) []graph.Neighbor {
	x, y, ok := coord(v)
	if !ok || !g.InBounds(x, y) {
		return nil
	}

	out := make([]graph.Neighbor, 0, 8)
	for _, off := range offsets8 {
		nx, ny := x+off[0], y+off[1]
		if !g.InBounds(nx, ny) {
			continue
		}
		from := Cell(nx, ny)
		out = append(out, graph.Neighbor{ID: from, Cost: g.Cost(from, v)})
	}

	return out
}

// Cost returns the cost of moving from→to: an override if SetCost was
// called on this directed edge, else +Inf if either endpoint is an
// obstacle or the cells are not adjacent, else the geometric axial/
// diagonal cost.
func (g *Grid) Cost(from, to string) float64 {
	if c, ok := g.overrides[[2]string{from, to}]; ok {
		return c
	}

	fx, fy, ok1 := coord(from)
	tx, ty, ok2 := coord(to)
	if !ok1 || !ok2 || !g.InBounds(fx, fy) || !g.InBounds(tx, ty) {
		return math.Inf(1)
	}

	dx, dy := tx-fx, ty-fy
	if dx < -1 || dx > 1 || dy < -1 || dy > 1 || (dx == 0 && dy == 0) {
		return math.Inf(1)
	}

	if g.blocked[from] || g.blocked[to] {
		return math.Inf(1)
	}

	return baseCost(dx, dy)
}

// Contains reports whether v names an in-bounds cell.
func (g *Grid) Contains(v string) bool {
	x, y, ok := coord(v)

	return ok && g.InBounds(x, y)
}

// SetCost overrides the cost of the single directed edge from→to,
// independent of the obstacle set. Returns ErrOutOfBounds if either
// endpoint is outside the grid.
func (g *Grid) SetCost(from, to string, cost float64) error {
	fx, fy, ok1 := coord(from)
	tx, ty, ok2 := coord(to)
	if !ok1 || !ok2 || !g.InBounds(fx, fy) || !g.InBounds(tx, ty) {
		return ErrOutOfBounds
	}

	g.overrides[[2]string{from, to}] = cost

	return nil
}

// RestoreCost removes a SetCost override on from→to, reverting it to
// the geometric/obstacle-derived cost. Returns false if no override was
// present.
func (g *Grid) RestoreCost(from, to string) bool {
	key := [2]string{from, to}
	if _, ok := g.overrides[key]; !ok {
		return false
	}
	delete(g.overrides, key)

	return true
}

// Nodes returns every cell id in row-major order.
func (g *Grid) Nodes() []string {
	out := make([]string, 0, g.width*g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			out = append(out, Cell(x, y))
		}
	}

	return out
}
