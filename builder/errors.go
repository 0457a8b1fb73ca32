// SPDX-License-Identifier: MIT
package builder

import "errors"

// Sentinel errors returned by builder constructors.
var (
	// ErrTooFewVertices indicates a vertex count below the constructor's minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrBadEdgeTarget indicates a negative target edge count.
	ErrBadEdgeTarget = errors.New("builder: target edge count must be non-negative")

	// ErrBadDegreeCap indicates a degree cap that is neither positive nor Unbounded.
	ErrBadDegreeCap = errors.New("builder: degree cap must be positive or Unbounded")

	// ErrBadWeightRange indicates min > max or a non-positive lower bound.
	ErrBadWeightRange = errors.New("builder: invalid weight range")

	// ErrNeedRandSource indicates a stochastic constructor was run without
	// a seeded RNG (WithSeed or WithRand).
	ErrNeedRandSource = errors.New("builder: rand source is required")

	// ErrConstructFailed indicates a nil or otherwise unusable constructor.
	ErrConstructFailed = errors.New("builder: construction failed")
)
