// Package report turns sweep results into artifacts: a stable JSON
// document and an HTML page of line charts (one chart per edge ratio,
// extrapolated points as a separate dashed series).
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/BakdaurenNarbayev/BMSSP/bench"
)

// ErrNoResults indicates an empty result set.
var ErrNoResults = errors.New("report: no results to write")

// Series is one serialized curve. Serialization is sorted (algorithm
// name, then edge ratio) so identical sweeps produce identical bytes.
type Series struct {
	Algorithm string  `json:"algorithm"`
	EdgeRatio float64 `json:"edge_ratio"`
	Points    []Entry `json:"points"`
}

// Entry is one serialized point. Times are seconds, matching how the
// medians are read when comparing scaling trends.
type Entry struct {
	NodeCount     int       `json:"node_count"`
	TargetEdges   int       `json:"target_edges"`
	EdgesPlaced   int       `json:"edges_placed"`
	MedianSeconds float64   `json:"median_seconds"`
	TrialSeconds  []float64 `json:"trial_seconds,omitempty"`
	Extrapolated  bool      `json:"extrapolated,omitempty"`
	Truncated     bool      `json:"truncated,omitempty"`
}

// Flatten converts a result set into the sorted series form shared by
// the JSON writer and the chart renderer.
func Flatten(results bench.ResultSet) []Series {
	out := make([]Series, 0, len(results))
	for key, points := range results {
		s := Series{
			Algorithm: key.Algorithm.String(),
			EdgeRatio: key.EdgeRatio,
			Points:    make([]Entry, 0, len(points)),
		}
		for _, p := range points {
			e := Entry{
				NodeCount:     p.NodeCount,
				TargetEdges:   p.TargetEdges,
				EdgesPlaced:   p.Stats.Placed,
				MedianSeconds: p.MedianTime.Seconds(),
				Extrapolated:  p.Extrapolated,
				Truncated:     p.Stats.Truncated,
			}
			for _, tt := range p.TrialTimes {
				e.TrialSeconds = append(e.TrialSeconds, tt.Seconds())
			}
			s.Points = append(s.Points, e)
		}
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Algorithm != out[j].Algorithm {
			return out[i].Algorithm < out[j].Algorithm
		}

		return out[i].EdgeRatio < out[j].EdgeRatio
	})

	return out
}

// WriteJSON writes the result set to w as indented JSON.
func WriteJSON(w io.Writer, results bench.ResultSet) error {
	if len(results) == 0 {
		return ErrNoResults
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Flatten(results)); err != nil {
		return fmt.Errorf("encode results: %w", err)
	}

	return nil
}
