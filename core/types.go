package core

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrBadNodeCount indicates a negative node count was passed to NewGraph.
	ErrBadNodeCount = errors.New("core: node count must be non-negative")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0, NodeCount).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Arc is a single traversable step out of a vertex: the target vertex
// and the weight of the connecting edge.
type Arc struct {
	// To is the target vertex ID.
	To int

	// Weight is the cost of traversing this arc.
	Weight float64
}

// Edge is a stored edge. Undirected graphs store each edge exactly once;
// algorithms that iterate Edges must relax both directions themselves
// (or use Neighbors, which already mirrors).
type Edge struct {
	// From is the source vertex ID.
	From int

	// To is the destination vertex ID.
	To int

	// Weight is the cost of the edge. Negative weights are representable
	// (Bellman-Ford accepts them); Dijkstra and BMSSP validate and reject.
	Weight float64
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithDirected sets whether edges are one-way (true) or bidirectional (false).
// The default is undirected.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}
