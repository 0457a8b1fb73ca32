package core

import "fmt"

// Graph is the in-memory weighted graph over vertex IDs 0..NodeCount-1.
//
// adjacency holds traversable arcs per vertex: for undirected graphs the
// reverse arc is materialized at AddEdge time so that the algorithms'
// hot loops never branch on directedness. edges holds each stored edge
// once, in insertion order.
type Graph struct {
	directed   bool
	allowLoops bool

	adjacency [][]Arc
	edges     []Edge

	// edgeAt maps an endpoint pair to its position in edges so that a
	// repeated AddEdge(u,v,·) updates the weight in place instead of
	// creating a parallel edge. Undirected pairs are normalized.
	edgeAt map[[2]int]int
}

// NewGraph creates a graph with nodeCount isolated vertices.
// Complexity: O(nodeCount).
func NewGraph(nodeCount int, opts ...GraphOption) (*Graph, error) {
	if nodeCount < 0 {
		return nil, fmt.Errorf("NewGraph(%d): %w", nodeCount, ErrBadNodeCount)
	}

	g := &Graph{
		adjacency: make([][]Arc, nodeCount),
		edgeAt:    make(map[[2]int]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// NodeCount returns the number of vertices.
func (g *Graph) NodeCount() int { return len(g.adjacency) }

// EdgeCount returns the number of stored edges (undirected edges count once).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// key normalizes an endpoint pair for the duplicate-edge index.
func (g *Graph) key(u, v int) [2]int {
	if !g.directed && u > v {
		u, v = v, u
	}

	return [2]int{u, v}
}

// AddEdge inserts edge u→v with the given weight, or updates the weight
// in place when the edge already exists. For undirected graphs the edge
// is stored once and a mirror arc is added to v's adjacency.
// Complexity: O(1) amortized insert; O(deg) weight update.
func (g *Graph) AddEdge(u, v int, weight float64) error {
	n := len(g.adjacency)
	if u < 0 || u >= n {
		return fmt.Errorf("AddEdge(%d→%d): endpoint %d: %w", u, v, u, ErrVertexOutOfRange)
	}
	if v < 0 || v >= n {
		return fmt.Errorf("AddEdge(%d→%d): endpoint %d: %w", u, v, v, ErrVertexOutOfRange)
	}
	if u == v && !g.allowLoops {
		return fmt.Errorf("AddEdge(%d→%d): %w", u, v, ErrLoopNotAllowed)
	}

	k := g.key(u, v)
	if at, ok := g.edgeAt[k]; ok {
		// Existing edge: update stored weight and every materialized arc.
		g.edges[at].Weight = weight
		g.updateArc(g.edges[at].From, g.edges[at].To, weight)
		if !g.directed {
			g.updateArc(g.edges[at].To, g.edges[at].From, weight)
		}

		return nil
	}

	g.edgeAt[k] = len(g.edges)
	g.edges = append(g.edges, Edge{From: u, To: v, Weight: weight})
	g.adjacency[u] = append(g.adjacency[u], Arc{To: v, Weight: weight})
	if !g.directed && u != v {
		g.adjacency[v] = append(g.adjacency[v], Arc{To: u, Weight: weight})
	}

	return nil
}

// updateArc rewrites the weight of the stored arc u→v.
func (g *Graph) updateArc(u, v int, weight float64) {
	arcs := g.adjacency[u]
	for i := range arcs {
		if arcs[i].To == v {
			arcs[i].Weight = weight

			return
		}
	}
}

// HasEdge reports whether edge u→v (or u—v for undirected graphs) exists.
// Out-of-range endpoints report false.
func (g *Graph) HasEdge(u, v int) bool {
	n := len(g.adjacency)
	if u < 0 || u >= n || v < 0 || v >= n {
		return false
	}
	_, ok := g.edgeAt[g.key(u, v)]

	return ok
}

// Neighbors returns the traversable arcs out of u. For undirected graphs
// the slice already contains the mirrored arcs of incident edges.
// The returned slice is the graph's backing storage: callers must treat
// it as read-only.
// Complexity: O(1).
func (g *Graph) Neighbors(u int) ([]Arc, error) {
	if u < 0 || u >= len(g.adjacency) {
		return nil, fmt.Errorf("Neighbors(%d): %w", u, ErrVertexOutOfRange)
	}

	return g.adjacency[u], nil
}

// Edges returns a copy of all stored edges in insertion order.
// Undirected edges appear once; iterating callers relax both directions.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// OutDegree returns the number of arcs leaving u (undirected: incident edges).
func (g *Graph) OutDegree(u int) int {
	if u < 0 || u >= len(g.adjacency) {
		return 0
	}

	return len(g.adjacency[u])
}

// String implements fmt.Stringer for log lines and test failures.
func (g *Graph) String() string {
	return fmt.Sprintf("Graph(nodes=%d, edges=%d, directed=%t)", g.NodeCount(), g.EdgeCount(), g.directed)
}
