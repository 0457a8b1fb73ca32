// Package graphio_test validates the Matrix Market and edge-list
// loaders and the largest-component filter.
package graphio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BakdaurenNarbayev/BMSSP/core"
	"github.com/BakdaurenNarbayev/BMSSP/graphio"
)

func TestLoadMatrixMarket_General(t *testing.T) {
	in := `%%MatrixMarket matrix coordinate real general
% a comment
4 4 3
1 2 2.5
2 3 1.0
4 1
`
	g, err := graphio.LoadMatrixMarket(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 4, g.NodeCount())
	assert.True(t, g.Directed())
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(3, 0), "missing weight defaults to 1")
	assert.False(t, g.HasEdge(1, 0), "general matrices stay directed")
}

func TestLoadMatrixMarket_SymmetricBecomesUndirected(t *testing.T) {
	in := `%%MatrixMarket matrix coordinate real symmetric
3 3 2
1 2 4
2 3 5
`
	g, err := graphio.LoadMatrixMarket(strings.NewReader(in))
	require.NoError(t, err)
	assert.False(t, g.Directed())
	assert.True(t, g.HasEdge(1, 0), "undirected edges answer both directions")
}

func TestLoadMatrixMarket_SelfLoopsDropped(t *testing.T) {
	in := "2 2 2\n1 1 3\n1 2 1\n"
	g, err := graphio.LoadMatrixMarket(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestLoadMatrixMarket_Malformed(t *testing.T) {
	cases := map[string]string{
		"missing dimensions": "%%MatrixMarket matrix coordinate real general\n",
		"bad dimension line": "4 x 3\n",
		"entry out of range": "2 2 1\n1 5 1\n",
		"bad weight":         "2 2 1\n1 2 abc\n",
		"too many fields":    "2 2 1\n1 2 3 4\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := graphio.LoadMatrixMarket(strings.NewReader(in))
			require.ErrorIs(t, err, graphio.ErrMalformedGraph)
		})
	}
}

func TestLoadEdgeList(t *testing.T) {
	in := `# comment
0 1 2.0
1 2
% another comment
3 0 7
`
	g, err := graphio.LoadEdgeList(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 4, g.NodeCount())
	assert.False(t, g.Directed())
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasEdge(2, 1), "weight defaults to 1 and edges are undirected")
}

func TestLoadEdgeList_Empty(t *testing.T) {
	_, err := graphio.LoadEdgeList(strings.NewReader("# only comments\n"))
	require.ErrorIs(t, err, graphio.ErrEmptyGraph)
}

func TestLoadEdgeList_NegativeID(t *testing.T) {
	_, err := graphio.LoadEdgeList(strings.NewReader("-1 2\n"))
	require.ErrorIs(t, err, graphio.ErrMalformedGraph)
}

func TestLargestComponent_NilGraph(t *testing.T) {
	_, _, err := graphio.LargestComponent(nil)
	require.ErrorIs(t, err, graphio.ErrNilGraph)
}

func TestLargestComponent_PicksBiggerSide(t *testing.T) {
	// Component {0,1} vs component {2,3,4}: the triangle wins.
	g, err := core.NewGraph(5)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(3, 4, 1))
	require.NoError(t, g.AddEdge(4, 2, 1))

	sub, oldIDs, err := graphio.LargestComponent(g)
	require.NoError(t, err)
	assert.Equal(t, 3, sub.NodeCount())
	assert.Equal(t, 3, sub.EdgeCount())
	assert.Equal(t, []int{2, 3, 4}, oldIDs)
}

func TestLargestComponent_DirectedUsesWeakConnectivity(t *testing.T) {
	// 0→1 and 2→1: all three vertices connect when orientation is
	// ignored, and the surviving edges keep their direction.
	g, err := core.NewGraph(4, core.WithDirected(true))
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(2, 1, 1))

	sub, oldIDs, err := graphio.LargestComponent(g)
	require.NoError(t, err)
	assert.Equal(t, 3, sub.NodeCount())
	assert.Equal(t, []int{0, 1, 2}, oldIDs)
	assert.True(t, sub.Directed())
	assert.True(t, sub.HasEdge(0, 1))
	assert.False(t, sub.HasEdge(1, 0))
}

func TestLargestComponent_SingletonVertices(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 2, 1))

	sub, oldIDs, err := graphio.LargestComponent(g)
	require.NoError(t, err)
	assert.Equal(t, 2, sub.NodeCount())
	assert.Equal(t, []int{1, 2}, oldIDs)
}
