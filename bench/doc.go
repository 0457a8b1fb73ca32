// Package bench times shortest-path algorithms on generated graphs.
//
// Three layers build on each other:
//
//   - Run executes one algorithm once and wall-clocks the algorithm
//     call only; graph construction is never inside the timer.
//   - Measure repeats Run for a fixed number of trials on the same
//     graph and reports the per-trial times plus their median, which
//     resists scheduler and allocator noise better than the mean.
//   - Orchestrator sweeps log-spaced graph sizes crossed with edge
//     ratios, generating one seeded graph per point and measuring every
//     configured algorithm on it. Exclusion rules skip algorithms that
//     are known to be impractical above a node count; skipped points
//     are filled in afterwards by a two-point linear extrapolation of
//     the last measured sizes and tagged as such.
//
// A sweep is interruptible between points through its context; results
// measured before the cancellation are kept. A failing point is logged
// and skipped, never fatal to the sweep.
package bench
