// Package gridenv adapts an 8-connected 2D grid with dynamic obstacles
// to the graph.View contract the search kernels consume, so dstarclassic
// can drive a grid the same way it drives a plain graph.Digraph.
//
// Cells are identified by a packed "x,y" string, keeping Vertex = string
// uniform across dstarclassic regardless of the backing collaborator.
// Axial moves cost 1, diagonal moves cost math.Sqrt2; any move touching
// an obstacle cell costs +Inf. Obstacles are tracked as a toggleable set
// rather than per-edge overrides, so marking or clearing a cell updates
// every edge touching it in O(1) instead of rewriting each edge.
package gridenv
