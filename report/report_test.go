// Package report_test validates JSON serialization stability and the
// chart renderer output.
package report_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BakdaurenNarbayev/BMSSP/bench"
	"github.com/BakdaurenNarbayev/BMSSP/builder"
	"github.com/BakdaurenNarbayev/BMSSP/report"
)

func sampleResults() bench.ResultSet {
	return bench.ResultSet{
		{Algorithm: bench.Dijkstra, EdgeRatio: 2}: {
			{
				NodeCount: 10, TargetEdges: 20,
				MedianTime: 3 * time.Millisecond,
				TrialTimes: []time.Duration{2 * time.Millisecond, 3 * time.Millisecond, 4 * time.Millisecond},
				Stats:      builder.GenStats{Requested: 20, Placed: 20},
			},
			{
				NodeCount: 100, TargetEdges: 200,
				MedianTime:   30 * time.Millisecond,
				Extrapolated: true,
			},
		},
		{Algorithm: bench.BellmanFord, EdgeRatio: 2}: {
			{
				NodeCount: 10, TargetEdges: 20,
				MedianTime: 9 * time.Millisecond,
				TrialTimes: []time.Duration{9 * time.Millisecond},
				Stats:      builder.GenStats{Requested: 20, Placed: 18, Truncated: true},
			},
		},
	}
}

func TestWriteJSON_EmptyResults(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, report.WriteJSON(&buf, bench.ResultSet{}), report.ErrNoResults)
}

func TestWriteJSON_SortedAndComplete(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteJSON(&buf, sampleResults()))

	var series []report.Series
	require.NoError(t, json.Unmarshal(buf.Bytes(), &series))
	require.Len(t, series, 2)

	// Sorted by algorithm name: bellman_ford before dijkstra.
	assert.Equal(t, "bellman_ford", series[0].Algorithm)
	assert.Equal(t, "dijkstra", series[1].Algorithm)

	bf := series[0].Points[0]
	assert.True(t, bf.Truncated)
	assert.Equal(t, 18, bf.EdgesPlaced)
	assert.InDelta(t, 0.009, bf.MedianSeconds, 1e-12)

	dj := series[1]
	require.Len(t, dj.Points, 2)
	assert.False(t, dj.Points[0].Extrapolated)
	assert.Len(t, dj.Points[0].TrialSeconds, 3)
	assert.True(t, dj.Points[1].Extrapolated)
	assert.Empty(t, dj.Points[1].TrialSeconds)
}

func TestWriteJSON_Deterministic(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, report.WriteJSON(&a, sampleResults()))
	require.NoError(t, report.WriteJSON(&b, sampleResults()))
	assert.Equal(t, a.String(), b.String())
}

func TestRenderChart_WritesHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.html")
	require.NoError(t, report.RenderChart(path, sampleResults()))

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(body)
	assert.Contains(t, html, "echarts")
	assert.Contains(t, html, "dijkstra")
	assert.Contains(t, html, "dijkstra (extrapolated)")
	assert.Contains(t, html, "bellman_ford")
	assert.NotContains(t, strings.ToLower(html), "bmssp", "absent series must not appear")
}

func TestRenderChart_EmptyResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.html")
	require.ErrorIs(t, report.RenderChart(path, bench.ResultSet{}), report.ErrNoResults)
}
