// Package config loads and validates the benchmark configuration from
// built-in defaults, an optional YAML file, and SSPBENCH_-prefixed
// environment variables, in that precedence order.
package config

import (
	"errors"
	"fmt"

	"github.com/BakdaurenNarbayev/BMSSP/bench"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full benchmark configuration surface.
type Config struct {
	// Algorithms lists the algorithms to benchmark, by name.
	Algorithms []string `koanf:"algorithms"`

	// MinNodes..MaxNodes sampled at NumSteps log-spaced graph sizes.
	MinNodes int `koanf:"min_nodes"`
	MaxNodes int `koanf:"max_nodes"`
	NumSteps int `koanf:"num_steps"`

	// EdgeRatios are edges-per-node densities swept per size.
	EdgeRatios []float64 `koanf:"edge_ratios"`

	// Degree caps for the generator; -1 lifts a cap.
	MaxInDegree  int  `koanf:"max_in_degree"`
	MaxOutDegree int  `koanf:"max_out_degree"`
	Directed     bool `koanf:"directed"`

	Trials int   `koanf:"trials"`
	Seed   int64 `koanf:"seed"`

	// Exclusions skip an algorithm above a node count; the orchestrator
	// extrapolates the skipped sizes.
	Exclusions []Exclusion `koanf:"exclusions"`

	Demo   Demo   `koanf:"demo"`
	Output Output `koanf:"output"`
	Log    Log    `koanf:"log"`
}

// Exclusion names an algorithm and the node count above which it is
// skipped.
type Exclusion struct {
	Algorithm string `koanf:"algorithm"`
	MaxNodes  int    `koanf:"max_nodes"`
}

// Demo configures the fixed-size comparison command.
type Demo struct {
	Nodes     int     `koanf:"nodes"`
	EdgeRatio float64 `koanf:"edge_ratio"`
	Trials    int     `koanf:"trials"`
}

// Output names the sweep artifacts; empty fields disable the writer.
type Output struct {
	JSON  string `koanf:"json"`
	Chart string `koanf:"chart"`
}

// Log configures the slog handler.
type Log struct {
	Level  string `koanf:"level"`  // debug | info | warn | error
	Format string `koanf:"format"` // text | json
}

// Validate checks the configuration before anything runs; an empty
// algorithm list or an unknown name is fatal here, not mid-sweep.
func (c *Config) Validate() error {
	if len(c.Algorithms) == 0 {
		return fmt.Errorf("algorithms list is empty: %w", ErrInvalidConfig)
	}
	for _, name := range c.Algorithms {
		if _, err := bench.ParseAlgorithm(name); err != nil {
			return fmt.Errorf("%v: %w", err, ErrInvalidConfig)
		}
	}
	for _, ex := range c.Exclusions {
		if _, err := bench.ParseAlgorithm(ex.Algorithm); err != nil {
			return fmt.Errorf("exclusion %v: %w", err, ErrInvalidConfig)
		}
		if ex.MaxNodes < 1 {
			return fmt.Errorf("exclusion %q max_nodes %d: %w", ex.Algorithm, ex.MaxNodes, ErrInvalidConfig)
		}
	}

	switch {
	case c.MinNodes < 1:
		return fmt.Errorf("min_nodes %d: %w", c.MinNodes, ErrInvalidConfig)
	case c.MaxNodes < c.MinNodes:
		return fmt.Errorf("max_nodes %d below min_nodes %d: %w", c.MaxNodes, c.MinNodes, ErrInvalidConfig)
	case c.NumSteps < 1:
		return fmt.Errorf("num_steps %d: %w", c.NumSteps, ErrInvalidConfig)
	case c.Trials < 1:
		return fmt.Errorf("trials %d: %w", c.Trials, ErrInvalidConfig)
	case len(c.EdgeRatios) == 0:
		return fmt.Errorf("edge_ratios is empty: %w", ErrInvalidConfig)
	}
	for _, r := range c.EdgeRatios {
		if r <= 0 {
			return fmt.Errorf("edge_ratio %g: %w", r, ErrInvalidConfig)
		}
	}
	if c.MaxInDegree == 0 || c.MaxInDegree < -1 {
		return fmt.Errorf("max_in_degree %d: %w", c.MaxInDegree, ErrInvalidConfig)
	}
	if c.MaxOutDegree == 0 || c.MaxOutDegree < -1 {
		return fmt.Errorf("max_out_degree %d: %w", c.MaxOutDegree, ErrInvalidConfig)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level %q: %w", c.Log.Level, ErrInvalidConfig)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log format %q: %w", c.Log.Format, ErrInvalidConfig)
	}

	if c.Demo.Nodes < 1 || c.Demo.EdgeRatio <= 0 || c.Demo.Trials < 1 {
		return fmt.Errorf("demo section %+v: %w", c.Demo, ErrInvalidConfig)
	}

	return nil
}

// SweepConfig converts into the orchestrator's configuration. Call
// Validate first; unknown names fail here too, but without context.
func (c *Config) SweepConfig() (bench.SweepConfig, error) {
	algos := make([]bench.Algorithm, 0, len(c.Algorithms))
	for _, name := range c.Algorithms {
		a, err := bench.ParseAlgorithm(name)
		if err != nil {
			return bench.SweepConfig{}, err
		}
		algos = append(algos, a)
	}

	rules := make([]bench.ExclusionRule, 0, len(c.Exclusions))
	for _, ex := range c.Exclusions {
		a, err := bench.ParseAlgorithm(ex.Algorithm)
		if err != nil {
			return bench.SweepConfig{}, err
		}
		rules = append(rules, bench.ExclusionRule{Algorithm: a, MaxNodes: ex.MaxNodes})
	}

	return bench.SweepConfig{
		Algorithms:   algos,
		MinNodes:     c.MinNodes,
		MaxNodes:     c.MaxNodes,
		NumSteps:     c.NumSteps,
		EdgeRatios:   c.EdgeRatios,
		MaxInDegree:  c.MaxInDegree,
		MaxOutDegree: c.MaxOutDegree,
		Directed:     c.Directed,
		Trials:       c.Trials,
		Seed:         c.Seed,
		Exclusions:   rules,
	}, nil
}
