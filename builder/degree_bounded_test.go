// SPDX-License-Identifier: MIT
// Package builder_test verifies the degree-bounded generator: parameter
// validation, seed determinism, degree-cap enforcement, graceful
// truncation of infeasible targets, and best-effort connectivity.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BakdaurenNarbayev/BMSSP/builder"
	"github.com/BakdaurenNarbayev/BMSSP/core"
)

const testSeed = int64(42)

func TestGenerateRandom_Validation(t *testing.T) {
	// Missing RNG.
	_, _, err := builder.GenerateRandom(10, 20, 2, 2, true)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	// Too few vertices.
	_, _, err = builder.GenerateRandom(0, 0, 2, 2, true, builder.WithSeed(testSeed))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	// Negative target.
	_, _, err = builder.GenerateRandom(10, -1, 2, 2, true, builder.WithSeed(testSeed))
	require.ErrorIs(t, err, builder.ErrBadEdgeTarget)

	// Zero degree cap (neither positive nor Unbounded).
	_, _, err = builder.GenerateRandom(10, 20, 0, 2, true, builder.WithSeed(testSeed))
	require.ErrorIs(t, err, builder.ErrBadDegreeCap)

	// Non-positive weight lower bound.
	_, _, err = builder.GenerateRandom(10, 20, 2, 2, true,
		builder.WithSeed(testSeed), builder.WithWeightRange(0, 10))
	require.ErrorIs(t, err, builder.ErrBadWeightRange)

	// Inverted weight range.
	_, _, err = builder.GenerateRandom(10, 20, 2, 2, true,
		builder.WithSeed(testSeed), builder.WithWeightRange(5, 1))
	require.ErrorIs(t, err, builder.ErrBadWeightRange)
}

func TestGenerateRandom_DeterministicForEqualSeeds(t *testing.T) {
	g1, s1, err := builder.GenerateRandom(200, 400, 4, 4, true, builder.WithSeed(testSeed))
	require.NoError(t, err)
	g2, s2, err := builder.GenerateRandom(200, 400, 4, 4, true, builder.WithSeed(testSeed))
	require.NoError(t, err)

	// Bit-identical edge sequences, including weights, and identical stats.
	assert.Equal(t, g1.Edges(), g2.Edges())
	assert.Equal(t, s1, s2)

	// A different seed produces a different edge set.
	g3, _, err := builder.GenerateRandom(200, 400, 4, 4, true, builder.WithSeed(testSeed+1))
	require.NoError(t, err)
	assert.NotEqual(t, g1.Edges(), g3.Edges())
}

func TestGenerateRandom_RespectsDegreeCaps_Directed(t *testing.T) {
	const (
		n      = 300
		maxIn  = 2
		maxOut = 3
	)
	g, _, err := builder.GenerateRandom(n, n*2, maxIn, maxOut, true, builder.WithSeed(testSeed))
	require.NoError(t, err)

	outDeg := make([]int, n)
	inDeg := make([]int, n)
	for _, e := range g.Edges() {
		outDeg[e.From]++
		inDeg[e.To]++
	}
	for v := 0; v < n; v++ {
		assert.LessOrEqual(t, outDeg[v], maxOut, "out-degree cap at vertex %d", v)
		assert.LessOrEqual(t, inDeg[v], maxIn, "in-degree cap at vertex %d", v)
	}
}

func TestGenerateRandom_RespectsDegreeCaps_Undirected(t *testing.T) {
	// Undirected edges count against both endpoints in both roles, so
	// the effective per-vertex degree bound is min(maxIn, maxOut).
	const (
		n      = 200
		degCap = 3
	)
	g, _, err := builder.GenerateRandom(n, n, degCap, degCap, false, builder.WithSeed(testSeed))
	require.NoError(t, err)

	deg := make([]int, n)
	for _, e := range g.Edges() {
		deg[e.From]++
		deg[e.To]++
	}
	for v := 0; v < n; v++ {
		assert.LessOrEqual(t, deg[v], degCap, "degree cap at vertex %d", v)
	}
}

func TestGenerateRandom_InfeasibleTargetDegradesGracefully(t *testing.T) {
	// 50 nodes with in/out caps of 1 admit at most 50 directed edges;
	// asking for 500 must not error, just fall short and say so.
	g, stats, err := builder.GenerateRandom(50, 500, 1, 1, true, builder.WithSeed(testSeed))
	require.NoError(t, err)

	assert.True(t, stats.Truncated)
	assert.Equal(t, 500, stats.Requested)
	assert.Equal(t, g.EdgeCount(), stats.Placed)
	assert.LessOrEqual(t, g.EdgeCount(), 50)
}

func TestGenerateRandom_NoSelfLoopsNoDuplicates(t *testing.T) {
	g, _, err := builder.GenerateRandom(100, 300, 5, 5, true, builder.WithSeed(testSeed))
	require.NoError(t, err)

	seen := make(map[[2]int]bool)
	for _, e := range g.Edges() {
		assert.NotEqual(t, e.From, e.To, "self-loop %d→%d", e.From, e.To)
		k := [2]int{e.From, e.To}
		assert.False(t, seen[k], "duplicate edge %d→%d", e.From, e.To)
		seen[k] = true
	}
}

func TestGenerateRandom_WeightsWithinRange(t *testing.T) {
	const (
		lo = 2.5
		hi = 3.5
	)
	g, _, err := builder.GenerateRandom(100, 200, 4, 4, true,
		builder.WithSeed(testSeed), builder.WithWeightRange(lo, hi))
	require.NoError(t, err)
	require.NotZero(t, g.EdgeCount())

	for _, e := range g.Edges() {
		assert.GreaterOrEqual(t, e.Weight, lo)
		assert.Less(t, e.Weight, hi)
	}
}

func TestGenerateRandom_SpanningStructureConnects(t *testing.T) {
	// With unbounded caps every vertex i>0 gets a parent among 0..i-1,
	// so the undirected interpretation of the graph is connected.
	const n = 150
	g, _, err := builder.GenerateRandom(n, n*2, builder.Unbounded, builder.Unbounded, true,
		builder.WithSeed(testSeed))
	require.NoError(t, err)

	adj := make([][]int, n)
	for _, e := range g.Edges() {
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}

	visited := make([]bool, n)
	queue := []int{0}
	visited[0] = true
	reached := 1
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range adj[u] {
			if !visited[v] {
				visited[v] = true
				reached++
				queue = append(queue, v)
			}
		}
	}

	assert.Equal(t, n, reached, "spanning phase should reach every vertex when caps allow")
}

func TestBuildGraph_ComposesConstructors(t *testing.T) {
	g, err := builder.BuildGraph(
		50,
		[]core.GraphOption{core.WithDirected(true)},
		[]builder.BuilderOption{builder.WithSeed(testSeed)},
		builder.DegreeBounded(100, 4, 4),
	)
	require.NoError(t, err)
	assert.Equal(t, 50, g.NodeCount())
	assert.NotZero(t, g.EdgeCount())
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(10, nil, nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}
