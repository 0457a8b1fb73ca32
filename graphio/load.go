package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BakdaurenNarbayev/BMSSP/core"
)

// LoadMatrixMarket parses a Matrix Market coordinate file: an optional
// %%MatrixMarket banner (a "symmetric" qualifier yields an undirected
// graph), % comment lines, one "rows cols entries" dimension line, then
// 1-based "u v [w]" entries with weight defaulting to 1. Self-loop
// entries are dropped; duplicate entries keep the last weight.
func LoadMatrixMarket(r io.Reader) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		g         *core.Graph
		n         int
		directed  = true
		lineNo    int
		sawBanner bool
	)

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "%") {
			if !sawBanner && strings.HasPrefix(line, "%%MatrixMarket") {
				sawBanner = true
				if strings.Contains(strings.ToLower(line), "symmetric") {
					directed = false
				}
			}
			continue
		}

		fields := strings.Fields(line)
		if g == nil {
			// Dimension line: rows cols entries.
			if len(fields) != 3 {
				return nil, malformed(lineNo, "want dimension line with 3 fields, got %d", len(fields))
			}
			rows, err1 := strconv.Atoi(fields[0])
			cols, err2 := strconv.Atoi(fields[1])
			if err1 != nil || err2 != nil || rows < 1 || cols < 1 {
				return nil, malformed(lineNo, "bad dimensions %q", line)
			}
			n = rows
			if cols > n {
				n = cols
			}
			g, _ = core.NewGraph(n, core.WithDirected(directed))
			continue
		}

		u, v, w, err := parseEntry(fields, lineNo)
		if err != nil {
			return nil, err
		}
		u, v = u-1, v-1 // 1-based on the wire
		if u == v {
			continue
		}
		if err := g.AddEdge(u, v, w); err != nil {
			return nil, malformed(lineNo, "entry %d %d: %v", u+1, v+1, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	if g == nil {
		return nil, fmt.Errorf("missing dimension line: %w", ErrMalformedGraph)
	}

	return g, nil
}

// LoadEdgeList parses whitespace-separated "u v [w]" lines with 0-based
// vertex ids; # and % start comments and the weight defaults to 1. The
// vertex count is the largest id seen plus one and the graph is
// undirected, matching the common dataset convention.
func LoadEdgeList(r io.Reader) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	type rawEdge struct {
		u, v int
		w    float64
	}
	var (
		edges  []rawEdge
		maxID  = -1
		lineNo int
	)

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "%") {
			continue
		}

		u, v, w, err := parseEntry(strings.Fields(line), lineNo)
		if err != nil {
			return nil, err
		}
		if u < 0 || v < 0 {
			return nil, malformed(lineNo, "negative vertex id in %q", line)
		}
		if u > maxID {
			maxID = u
		}
		if v > maxID {
			maxID = v
		}
		if u == v {
			continue
		}
		edges = append(edges, rawEdge{u: u, v: v, w: w})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	if maxID < 0 {
		return nil, ErrEmptyGraph
	}

	g, err := core.NewGraph(maxID + 1)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err := g.AddEdge(e.u, e.v, e.w); err != nil {
			return nil, fmt.Errorf("edge %d %d: %w", e.u, e.v, err)
		}
	}

	return g, nil
}

// parseEntry decodes "u v" or "u v w" fields.
func parseEntry(fields []string, lineNo int) (u, v int, w float64, err error) {
	if len(fields) != 2 && len(fields) != 3 {
		return 0, 0, 0, malformed(lineNo, "want 2 or 3 fields, got %d", len(fields))
	}
	if u, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, 0, malformed(lineNo, "vertex %q", fields[0])
	}
	if v, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, 0, malformed(lineNo, "vertex %q", fields[1])
	}
	w = 1.0
	if len(fields) == 3 {
		if w, err = strconv.ParseFloat(fields[2], 64); err != nil {
			return 0, 0, 0, malformed(lineNo, "weight %q", fields[2])
		}
	}

	return u, v, w, nil
}

func malformed(lineNo int, format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", lineNo, fmt.Sprintf(format, args...), ErrMalformedGraph)
}
