package graphio

import "github.com/BakdaurenNarbayev/BMSSP/core"

// LargestComponent extracts the biggest weakly-connected component of g
// as a new graph with compact vertex ids, plus the mapping from new id
// to original id (ascending, so relative order is preserved). Directed
// edges keep their orientation; connectivity ignores it.
func LargestComponent(g *core.Graph) (*core.Graph, []int, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	n := g.NodeCount()
	if n == 0 {
		return nil, nil, ErrEmptyGraph
	}

	// Undirected adjacency over the edge list for weak connectivity.
	adj := make([][]int, n)
	for _, e := range g.Edges() {
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}

	comp := make([]int, n)
	for v := range comp {
		comp[v] = -1
	}
	compSize := []int{}

	// BFS labelling, one sweep per unvisited vertex.
	queue := make([]int, 0, n)
	for start := 0; start < n; start++ {
		if comp[start] != -1 {
			continue
		}
		id := len(compSize)
		comp[start] = id
		size := 1
		queue = append(queue[:0], start)
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, v := range adj[u] {
				if comp[v] == -1 {
					comp[v] = id
					size++
					queue = append(queue, v)
				}
			}
		}
		compSize = append(compSize, size)
	}

	largest := 0
	for id, size := range compSize {
		if size > compSize[largest] {
			largest = id
		}
	}

	oldIDs := make([]int, 0, compSize[largest])
	newID := make([]int, n)
	for v := 0; v < n; v++ {
		if comp[v] == largest {
			newID[v] = len(oldIDs)
			oldIDs = append(oldIDs, v)
		}
	}

	opts := []core.GraphOption{core.WithDirected(g.Directed())}
	if g.Looped() {
		opts = append(opts, core.WithLoops())
	}
	sub, err := core.NewGraph(len(oldIDs), opts...)
	if err != nil {
		return nil, nil, err
	}
	for _, e := range g.Edges() {
		if comp[e.From] != largest || comp[e.To] != largest {
			continue
		}
		if err := sub.AddEdge(newID[e.From], newID[e.To], e.Weight); err != nil {
			return nil, nil, err
		}
	}

	return sub, oldIDs, nil
}
