// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   - builderConfig is the single source of truth for all builder knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newBuilderConfig applies options in-order (later overrides earlier).
package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness", which the
	// stochastic constructors reject with ErrNeedRandSource.
	rng *rand.Rand

	// Uniform edge-weight range [weightMin, weightMax).
	weightMin float64
	weightMax float64

	// attemptFactor bounds rejection sampling: at most
	// attemptFactor*targetEdges candidate draws before giving up.
	attemptFactor int
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultWeightMin     = 1.0
	defaultWeightMax     = 10.0
	defaultAttemptFactor = 10

	// Unbounded disables a degree cap.
	Unbounded = -1
)

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order; last-wins semantics.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:           nil, // no RNG unless explicitly seeded
		weightMin:     defaultWeightMin,
		weightMax:     defaultWeightMax,
		attemptFactor: defaultAttemptFactor,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws one edge weight uniformly from [weightMin, weightMax).
func (cfg builderConfig) weight() float64 {
	return cfg.weightMin + cfg.rng.Float64()*(cfg.weightMax-cfg.weightMin)
}

// BuilderOption is a functional option for the builder configuration.
type BuilderOption func(*builderConfig)

// WithSeed seeds a fresh process-local RNG. Identical seeds reproduce
// identical graphs regardless of what else the process has generated.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies an externally owned RNG. The caller is responsible
// for its seeding and for not sharing it across concurrent builds.
func WithRand(rng *rand.Rand) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.rng = rng
	}
}

// WithWeightRange overrides the uniform weight range [min, max).
// Validated at construction time by the consuming constructor.
func WithWeightRange(min, max float64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.weightMin = min
		cfg.weightMax = max
	}
}
