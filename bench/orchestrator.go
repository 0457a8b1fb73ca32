package bench

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/BakdaurenNarbayev/BMSSP/builder"
	"github.com/BakdaurenNarbayev/BMSSP/core"
)

// SweepConfig describes one scaling sweep: which algorithms to time on
// which grid of graph sizes and densities.
type SweepConfig struct {
	Algorithms []Algorithm

	// MinNodes..MaxNodes is sampled at NumSteps log-spaced sizes,
	// rounded and deduplicated.
	MinNodes int
	MaxNodes int
	NumSteps int

	// EdgeRatios are edges-per-node densities; the edge target of a
	// point is round(ratio·nodes).
	EdgeRatios []float64

	// Degree caps forwarded to the generator; builder.Unbounded lifts
	// them.
	MaxInDegree  int
	MaxOutDegree int
	Directed     bool

	// Trials per measured point.
	Trials int

	// Seed anchors per-point generator seeds, so a sweep is
	// reproducible point by point regardless of execution order.
	Seed int64

	Exclusions []ExclusionRule
}

// Orchestrator runs scaling sweeps.
type Orchestrator struct {
	cfg     SweepConfig
	log     *slog.Logger
	workers int
}

// OrchestratorOption configures an Orchestrator.
type OrchestratorOption func(*Orchestrator)

// WithLogger routes sweep progress to l instead of slog.Default.
func WithLogger(l *slog.Logger) OrchestratorOption {
	return func(o *Orchestrator) { o.log = l }
}

// WithParallel measures up to workers sweep points concurrently.
// Concurrent timing trades wall-clock comparability between points for
// throughput; results stay deterministic in content because every point
// generates its graph from its own derived seed.
func WithParallel(workers int) OrchestratorOption {
	return func(o *Orchestrator) {
		if workers > 1 {
			o.workers = workers
		}
	}
}

// NewOrchestrator validates cfg and builds a sweep runner.
func NewOrchestrator(cfg SweepConfig, opts ...OrchestratorOption) (*Orchestrator, error) {
	if len(cfg.Algorithms) == 0 {
		return nil, ErrNoAlgorithms
	}
	switch {
	case cfg.MinNodes < 1:
		return nil, fmt.Errorf("min nodes %d: %w", cfg.MinNodes, ErrBadSweep)
	case cfg.MaxNodes < cfg.MinNodes:
		return nil, fmt.Errorf("max nodes %d below min %d: %w", cfg.MaxNodes, cfg.MinNodes, ErrBadSweep)
	case cfg.NumSteps < 1:
		return nil, fmt.Errorf("steps %d: %w", cfg.NumSteps, ErrBadSweep)
	case cfg.Trials < 1:
		return nil, fmt.Errorf("trials %d: %w", cfg.Trials, ErrBadTrials)
	case len(cfg.EdgeRatios) == 0:
		return nil, fmt.Errorf("no edge ratios: %w", ErrBadSweep)
	}
	for _, r := range cfg.EdgeRatios {
		if r <= 0 || math.IsNaN(r) {
			return nil, fmt.Errorf("edge ratio %g: %w", r, ErrBadSweep)
		}
	}

	o := &Orchestrator{cfg: cfg, log: slog.Default(), workers: 1}
	for _, opt := range opts {
		opt(o)
	}

	return o, nil
}

// cell is one (edge ratio, node count) sweep point; idx derives its
// generator seed.
type cell struct {
	idx   int
	ratio float64
	size  int
}

// measurement is one finished (series, point) pair.
type measurement struct {
	key   SeriesKey
	point Point
}

// Run executes the sweep. Cancellation is honored between points;
// whatever was measured before the abort is returned alongside the
// context error. On full completion, excluded points are appended as
// extrapolations and every series comes back ordered by node count.
func (o *Orchestrator) Run(ctx context.Context) (ResultSet, error) {
	sizes := logSpace(o.cfg.MinNodes, o.cfg.MaxNodes, o.cfg.NumSteps)
	cells := make([]cell, 0, len(sizes)*len(o.cfg.EdgeRatios))
	for _, ratio := range o.cfg.EdgeRatios {
		for _, size := range sizes {
			cells = append(cells, cell{idx: len(cells), ratio: ratio, size: size})
		}
	}

	o.log.Info("sweep starting",
		"sizes", len(sizes), "ratios", len(o.cfg.EdgeRatios),
		"algorithms", len(o.cfg.Algorithms), "trials", o.cfg.Trials,
		"parallel", o.workers)

	results := ResultSet{}
	var err error
	if o.workers > 1 {
		err = o.runParallel(ctx, cells, results)
	} else {
		err = o.runSequential(ctx, cells, results)
	}
	for key := range results {
		sortPoints(results[key])
	}
	if err != nil {
		return results, err
	}

	o.extrapolateExcluded(results, sizes)
	o.log.Info("sweep finished", "series", len(results))

	return results, nil
}

func (o *Orchestrator) runSequential(ctx context.Context, cells []cell, results ResultSet) error {
	for _, c := range cells {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, m := range o.runCell(c) {
			results[m.key] = append(results[m.key], m.point)
		}
	}

	return nil
}

func (o *Orchestrator) runParallel(ctx context.Context, cells []cell, results ResultSet) error {
	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		jobs = make(chan cell)
	)
	for w := 0; w < o.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range jobs {
				ms := o.runCell(c)
				mu.Lock()
				for _, m := range ms {
					results[m.key] = append(results[m.key], m.point)
				}
				mu.Unlock()
			}
		}()
	}

	var err error
feed:
	for _, c := range cells {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case jobs <- c:
		}
	}
	close(jobs)
	wg.Wait()

	return err
}

// runCell generates the cell's graph and measures every non-excluded
// algorithm on it. Failures are logged and skipped; the sweep goes on.
func (o *Orchestrator) runCell(c cell) []measurement {
	target := int(math.Round(c.ratio * float64(c.size)))
	g, stats, err := o.generate(c, target)
	if err != nil {
		o.log.Warn("graph generation failed",
			"nodes", c.size, "ratio", c.ratio, "err", err)

		return nil
	}

	out := make([]measurement, 0, len(o.cfg.Algorithms))
	for _, algo := range o.cfg.Algorithms {
		if o.excluded(algo, c.size) {
			o.log.Debug("point excluded", "algorithm", algo.String(),
				"nodes", c.size, "ratio", c.ratio)
			continue
		}

		res, err := Measure(algo, g, 0, o.cfg.Trials)
		if err != nil {
			o.log.Warn("point failed", "algorithm", algo.String(),
				"nodes", c.size, "ratio", c.ratio, "err", err)
			continue
		}

		o.log.Debug("point measured", "algorithm", algo.String(),
			"nodes", c.size, "ratio", c.ratio, "median", res.MedianTime)
		out = append(out, measurement{
			key: SeriesKey{Algorithm: algo, EdgeRatio: c.ratio},
			point: Point{
				NodeCount:   c.size,
				TargetEdges: target,
				MedianTime:  res.MedianTime,
				TrialTimes:  res.TrialTimes,
				Stats:       stats,
			},
		})
	}

	return out
}

func (o *Orchestrator) generate(c cell, target int) (*core.Graph, builder.GenStats, error) {
	return builder.GenerateRandom(c.size, target,
		o.cfg.MaxInDegree, o.cfg.MaxOutDegree, o.cfg.Directed,
		builder.WithSeed(o.cfg.Seed+int64(c.idx)))
}

// excluded reports whether a rule skips algo at this node count.
func (o *Orchestrator) excluded(algo Algorithm, nodes int) bool {
	for _, rule := range o.cfg.Exclusions {
		if rule.Algorithm == algo && nodes > rule.MaxNodes {
			return true
		}
	}

	return false
}

// extrapolateExcluded fills every excluded (series, size) hole with a
// linear fit of the series' last two measured points.
func (o *Orchestrator) extrapolateExcluded(results ResultSet, sizes []int) {
	for _, algo := range o.cfg.Algorithms {
		for _, ratio := range o.cfg.EdgeRatios {
			key := SeriesKey{Algorithm: algo, EdgeRatio: ratio}
			measured := results[key]
			if len(measured) == 0 {
				continue // nothing to fit from
			}
			for _, size := range sizes {
				if !o.excluded(algo, size) {
					continue
				}
				est := extrapolate(measured, size)
				results[key] = append(results[key], Point{
					NodeCount:    size,
					TargetEdges:  int(math.Round(ratio * float64(size))),
					MedianTime:   est,
					Extrapolated: true,
				})
				o.log.Debug("point extrapolated", "algorithm", algo.String(),
					"nodes", size, "ratio", ratio, "median", est)
			}
			sortPoints(results[key])
		}
	}
}

// extrapolate predicts the median time at nodeCount from the last two
// measured points, or flat from a single one. Points must be ordered by
// node count and non-empty.
func extrapolate(measured []Point, nodeCount int) time.Duration {
	last := measured[len(measured)-1]
	if len(measured) == 1 {
		return last.MedianTime
	}

	prev := measured[len(measured)-2]
	if last.NodeCount == prev.NodeCount {
		return last.MedianTime
	}

	slope := float64(last.MedianTime-prev.MedianTime) /
		float64(last.NodeCount-prev.NodeCount)
	est := float64(last.MedianTime) + slope*float64(nodeCount-last.NodeCount)
	if est < 0 {
		est = 0
	}

	return time.Duration(est)
}

// sortPoints orders a series by node count, measured before
// extrapolated on the same size.
func sortPoints(points []Point) {
	sort.SliceStable(points, func(i, j int) bool {
		if points[i].NodeCount != points[j].NodeCount {
			return points[i].NodeCount < points[j].NodeCount
		}

		return !points[i].Extrapolated && points[j].Extrapolated
	})
}

// logSpace samples steps log-spaced integers across [min, max],
// rounding and dropping collisions, so small ranges yield fewer points.
func logSpace(min, max, steps int) []int {
	if steps == 1 || min == max {
		return []int{min}
	}

	lmin, lmax := math.Log10(float64(min)), math.Log10(float64(max))
	out := make([]int, 0, steps)
	for i := 0; i < steps; i++ {
		f := lmin + (lmax-lmin)*float64(i)/float64(steps-1)
		v := int(math.Round(math.Pow(10, f)))
		if v < 1 {
			v = 1
		}
		if len(out) == 0 || v > out[len(out)-1] {
			out = append(out, v)
		}
	}

	return out
}
