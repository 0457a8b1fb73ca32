// Package bellmanford_test validates Bellman-Ford: distance agreement
// with Dijkstra on non-negative graphs, negative-weight tolerance,
// negative-cycle detection, and early-termination correctness.
package bellmanford_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BakdaurenNarbayev/BMSSP/bellmanford"
	"github.com/BakdaurenNarbayev/BMSSP/core"
)

func buildDirected(t *testing.T, n int, edges [][3]float64) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n, core.WithDirected(true))
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(int(e[0]), int(e[1]), e[2]))
	}

	return g
}

func TestBellmanFord_NilGraph(t *testing.T) {
	_, _, err := bellmanford.BellmanFord(nil, 0)
	require.ErrorIs(t, err, bellmanford.ErrNilGraph)
}

func TestBellmanFord_SourceOutOfRange(t *testing.T) {
	g, err := core.NewGraph(2, core.WithDirected(true))
	require.NoError(t, err)
	_, _, err = bellmanford.BellmanFord(g, 5)
	require.ErrorIs(t, err, bellmanford.ErrSourceOutOfRange)
}

func TestBellmanFord_ChainBeatsDirectEdge(t *testing.T) {
	g := buildDirected(t, 5, [][3]float64{
		{0, 1, 1}, {1, 2, 1}, {2, 3, 1}, {3, 4, 1}, {0, 4, 10},
	})

	dist, _, err := bellmanford.BellmanFord(g, 0)
	require.NoError(t, err)
	assert.Equal(t, 4.0, dist[4])
}

func TestBellmanFord_NegativeWeightsNoCycle(t *testing.T) {
	// Negative edges are fine as long as no cycle is relaxable.
	g := buildDirected(t, 4, [][3]float64{
		{0, 1, 4}, {0, 2, 2}, {1, 3, -3}, {2, 3, 3},
	})

	dist, _, err := bellmanford.BellmanFord(g, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, dist[3]) // 0→1→3 = 4 + (-3)
}

func TestBellmanFord_NegativeCycleDetected(t *testing.T) {
	g := buildDirected(t, 2, [][3]float64{{0, 1, -1}, {1, 0, -1}})

	_, _, err := bellmanford.BellmanFord(g, 0)
	require.ErrorIs(t, err, bellmanford.ErrNegativeCycle)
}

func TestBellmanFord_NegativeCycleUnreachableIsIgnored(t *testing.T) {
	// The cycle 2⇄3 never becomes reachable from source 0; distances for
	// the reachable part must be reported normally.
	g := buildDirected(t, 4, [][3]float64{
		{0, 1, 1}, {2, 3, -1}, {3, 2, -1},
	})

	dist, _, err := bellmanford.BellmanFord(g, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, dist[1])
	assert.True(t, math.IsInf(dist[2], 1))
}

func TestBellmanFord_UndirectedBothDirections(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 0, 2)) // stored 1—0
	require.NoError(t, g.AddEdge(1, 2, 3))

	dist, _, err := bellmanford.BellmanFord(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 5}, dist)
}

func TestBellmanFord_Predecessors(t *testing.T) {
	g := buildDirected(t, 4, [][3]float64{
		{0, 1, 1}, {1, 2, 1}, {0, 2, 5}, {2, 3, 2},
	})

	dist, pred, err := bellmanford.BellmanFord(g, 0, bellmanford.WithPredecessors())
	require.NoError(t, err)
	require.NotNil(t, pred)
	assert.Equal(t, []float64{0, 1, 2, 4}, dist)
	assert.Equal(t, []int{bellmanford.NoPredecessor, 0, 1, 2}, pred)
}

func TestBellmanFord_UnreachableStaysInfinite(t *testing.T) {
	g := buildDirected(t, 3, [][3]float64{{0, 1, 1}})

	dist, _, err := bellmanford.BellmanFord(g, 0)
	require.NoError(t, err)
	assert.True(t, math.IsInf(dist[2], 1))
}
