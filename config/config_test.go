// Package config_test validates layering (defaults, file, env) and the
// configuration checks that must fail before a sweep starts.
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BakdaurenNarbayev/BMSSP/bench"
	"github.com/BakdaurenNarbayev/BMSSP/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoad_DefaultsAreValid(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"dijkstra", "bellman_ford", "bmssp"}, cfg.Algorithms)
	assert.Equal(t, 100, cfg.MinNodes)
	assert.Equal(t, 100000, cfg.MaxNodes)
	assert.Equal(t, 5, cfg.Trials)
	assert.Equal(t, -1, cfg.MaxInDegree)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
algorithms: [dijkstra]
min_nodes: 10
max_nodes: 500
num_steps: 4
trials: 7
edge_ratios: [3.5]
exclusions:
  - algorithm: dijkstra
    max_nodes: 100
`)

	cfg, err := config.Load(config.WithFile(path))
	require.NoError(t, err)
	assert.Equal(t, []string{"dijkstra"}, cfg.Algorithms)
	assert.Equal(t, 10, cfg.MinNodes)
	assert.Equal(t, 500, cfg.MaxNodes)
	assert.Equal(t, 7, cfg.Trials)
	assert.Equal(t, []float64{3.5}, cfg.EdgeRatios)
	require.Len(t, cfg.Exclusions, 1)
	assert.Equal(t, 100, cfg.Exclusions[0].MaxNodes)
	// Untouched keys keep their defaults.
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "trials: 7\n")
	t.Setenv("SSPBENCH_TRIALS", "9")
	t.Setenv("SSPBENCH_ALGORITHMS", "bmssp, dijkstra")
	t.Setenv("SSPBENCH_LOG_LEVEL", "debug")

	cfg, err := config.Load(config.WithFile(path))
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Trials)
	assert.Equal(t, []string{"bmssp", "dijkstra"}, cfg.Algorithms)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := config.Load(config.WithFile(filepath.Join(t.TempDir(), "absent.yaml")))
	require.Error(t, err)
}

func TestValidate_Failures(t *testing.T) {
	cases := map[string]string{
		"empty algorithms":  "algorithms: []\n",
		"unknown algorithm": "algorithms: [warshall]\n",
		"bad node range":    "min_nodes: 50\nmax_nodes: 10\n",
		"zero trials":       "trials: 0\n",
		"bad edge ratio":    "edge_ratios: [-2]\n",
		"bad log level":     "log:\n  level: loud\n",
		"zero in degree":    "max_in_degree: 0\n",
		"bad exclusion":     "exclusions:\n  - algorithm: warshall\n    max_nodes: 10\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(config.WithFile(writeConfig(t, body)))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestSweepConfig_Conversion(t *testing.T) {
	path := writeConfig(t, `
algorithms: [bmssp, bellman-ford]
min_nodes: 10
max_nodes: 100
num_steps: 3
edge_ratios: [2]
exclusions:
  - algorithm: bellman_ford
    max_nodes: 50
`)
	cfg, err := config.Load(config.WithFile(path))
	require.NoError(t, err)

	sweep, err := cfg.SweepConfig()
	require.NoError(t, err)
	assert.Equal(t, []bench.Algorithm{bench.BMSSP, bench.BellmanFord}, sweep.Algorithms)
	assert.Equal(t, 10, sweep.MinNodes)
	require.Len(t, sweep.Exclusions, 1)
	assert.Equal(t, bench.BellmanFord, sweep.Exclusions[0].Algorithm)
	assert.Equal(t, 50, sweep.Exclusions[0].MaxNodes)
}
