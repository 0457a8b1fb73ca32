package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "SSPBENCH_"

// Loader assembles configuration from defaults, an optional YAML file,
// and SSPBENCH_-prefixed environment variables, each layer overriding
// the previous one.
type Loader struct {
	k         *koanf.Koanf
	path      string
	envPrefix string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFile points the loader at a YAML configuration file. The file
// must exist when named explicitly.
func WithFile(path string) LoaderOption {
	return func(l *Loader) { l.path = path }
}

// NewLoader builds a loader with the built-in defaults.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{k: koanf.New("."), envPrefix: envPrefix}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load resolves all layers, unmarshals, and validates.
func (l *Loader) Load() (*Config, error) {
	if err := l.k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if l.path != "" {
		if _, err := os.Stat(l.path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", l.path, err)
		}
		if err := l.k.Load(file.Provider(l.path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", l.path, err)
		}
	}

	if err := l.loadEnv(); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Load is the convenience one-shot entry point.
func Load(opts ...LoaderOption) (*Config, error) {
	return NewLoader(opts...).Load()
}

func defaults() map[string]any {
	return map[string]any{
		"algorithms":     []string{"dijkstra", "bellman_ford", "bmssp"},
		"min_nodes":      100,
		"max_nodes":      100000,
		"num_steps":      10,
		"edge_ratios":    []float64{2, 4},
		"max_in_degree":  -1,
		"max_out_degree": -1,
		"directed":       true,
		"trials":         5,
		"seed":           1,

		"demo.nodes":      1000,
		"demo.edge_ratio": 4.0,
		"demo.trials":     3,

		"output.json":  "results.json",
		"output.chart": "results.html",

		"log.level":  "info",
		"log.format": "text",
	}
}

// loadEnv maps SSPBENCH_ variables onto config keys. Names with
// underscores that belong to one field (MIN_NODES and friends) are
// mapped explicitly; everything else swaps underscores for dots.
// Comma-separated values feed the slice fields.
func (l *Loader) loadEnv() error {
	return l.k.Load(env.ProviderWithValue(l.envPrefix, ".", func(envKey, value string) (string, any) {
		key := strings.ToLower(strings.TrimPrefix(envKey, l.envPrefix))
		if mapped, ok := envKeyMappings[key]; ok {
			key = mapped
		} else {
			key = strings.ReplaceAll(key, "_", ".")
		}

		if sliceFields[key] {
			return key, splitAndTrim(value)
		}

		return key, value
	}), nil)
}

var envKeyMappings = map[string]string{
	"algorithms":      "algorithms",
	"min_nodes":       "min_nodes",
	"max_nodes":       "max_nodes",
	"num_steps":       "num_steps",
	"edge_ratios":     "edge_ratios",
	"max_in_degree":   "max_in_degree",
	"max_out_degree":  "max_out_degree",
	"trials":          "trials",
	"seed":            "seed",
	"directed":        "directed",
	"demo_nodes":      "demo.nodes",
	"demo_edge_ratio": "demo.edge_ratio",
	"demo_trials":     "demo.trials",
	"output_json":     "output.json",
	"output_chart":    "output.chart",
	"log_level":       "log.level",
	"log_format":      "log.format",
}

var sliceFields = map[string]bool{
	"algorithms":  true,
	"edge_ratios": true,
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}

	return out
}
