package bench

import (
	"fmt"
	"sort"
	"time"

	"github.com/BakdaurenNarbayev/BMSSP/bellmanford"
	"github.com/BakdaurenNarbayev/BMSSP/bmssp"
	"github.com/BakdaurenNarbayev/BMSSP/core"
	"github.com/BakdaurenNarbayev/BMSSP/dijkstra"
)

// runAlgorithm is the single dispatch point from the enum onto the
// algorithm packages.
func runAlgorithm(algo Algorithm, g *core.Graph, source int) ([]float64, error) {
	switch algo {
	case Dijkstra:
		dist, _, err := dijkstra.Dijkstra(g, source)

		return dist, err
	case BellmanFord:
		dist, _, err := bellmanford.BellmanFord(g, source)

		return dist, err
	case BMSSP:
		return bmssp.BMSSP(g, []int{source})
	default:
		return nil, fmt.Errorf("%v: %w", algo, ErrUnknownAlgorithm)
	}
}

// Run executes algo once from source and reports the elapsed wall-clock
// time of the algorithm call alone.
func Run(algo Algorithm, g *core.Graph, source int) (RunResult, error) {
	start := time.Now()
	dist, err := runAlgorithm(algo, g, source)
	elapsed := time.Since(start)
	if err != nil {
		return RunResult{}, fmt.Errorf("run %v: %w", algo, err)
	}

	return RunResult{Algorithm: algo, Elapsed: elapsed, Dist: dist}, nil
}

// Measure runs algo trials times on the same graph and reports every
// trial time plus the median. Trials share nothing but the read-only
// graph, so no state leaks between repetitions.
func Measure(algo Algorithm, g *core.Graph, source, trials int) (BenchmarkResult, error) {
	if trials < 1 {
		return BenchmarkResult{}, fmt.Errorf("trials=%d: %w", trials, ErrBadTrials)
	}

	times := make([]time.Duration, 0, trials)
	for i := 0; i < trials; i++ {
		res, err := Run(algo, g, source)
		if err != nil {
			return BenchmarkResult{}, fmt.Errorf("trial %d/%d: %w", i+1, trials, err)
		}
		times = append(times, res.Elapsed)
	}

	return BenchmarkResult{
		Algorithm:  algo,
		TrialTimes: times,
		MedianTime: median(times),
	}, nil
}

// median returns the middle trial time, averaging the central pair for
// even counts.
func median(times []time.Duration) time.Duration {
	sorted := append([]time.Duration(nil), times...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}

	return (sorted[mid-1] + sorted[mid]) / 2
}
