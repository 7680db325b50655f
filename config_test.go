package searchlight

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
metric: minkowski
metric_options:
  p: 3
spatial_radius: 0.04
temporal_radius: 10
folds: -1
jobs: -1
verbose: true
log_level: debug
`))
	require.NoError(t, err)

	assert.Equal(t, "minkowski", cfg.Metric)
	assert.Equal(t, 0.04, cfg.SpatialRadius)
	assert.Equal(t, 10, cfg.TemporalRadius)
	assert.Equal(t, MaxFolds, cfg.Folds)
	assert.Equal(t, AllCPUs, cfg.Jobs)
	assert.True(t, cfg.Verbose)

	p, err := cfg.MetricOptions.Float("p", 2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, p)
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown field", "radius: 3\n"},
		{"unknown metric", "metric: nope\n"},
		{"unknown metric option", "metric: euclidean\nmetric_options:\n  p: 3\n"},
		{"negative spatial radius", "spatial_radius: -1\n"},
		{"NaN spatial radius", "spatial_radius: .nan\n"},
		{"negative temporal radius", "temporal_radius: -2\n"},
		{"zero folds", "folds: 0\n"},
		{"zero jobs", "jobs: 0\n"},
		{"bad log level", "log_level: loud\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "searchlight.yaml")
	require.NoError(t, os.WriteFile(path, []byte("metric: sqeuclidean\nfolds: 2\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "sqeuclidean", cfg.Metric)
	assert.Equal(t, 2, cfg.Folds)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfigRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Metric = "cityblock"
	cfg.TemporalRadius = 4
	cfg.Jobs = 3

	data, err := cfg.Marshal()
	require.NoError(t, err)

	got, err := ParseConfig(data)
	require.NoError(t, err)
	assert.Equal(t, cfg.Metric, got.Metric)
	assert.Equal(t, cfg.TemporalRadius, got.TemporalRadius)
	assert.Equal(t, cfg.Jobs, got.Jobs)
}

func TestConfigOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Metric = "euclidean"
	cfg.Folds = 3
	cfg.Jobs = 2
	cfg.Prefetch = 7
	cfg.LogLevel = "warn"

	o := applyOptions(cfg.Options())
	assert.Equal(t, "euclidean", o.metric)
	assert.Equal(t, 3, o.nFolds)
	assert.Equal(t, 2, o.jobs)
	assert.Equal(t, 7, o.prefetch)
	assert.False(t, o.verbose)
	assert.IsType(t, NoopProgress{}, o.progress)
	assert.True(t, o.logger.Enabled(t.Context(), slog.LevelWarn))
	assert.False(t, o.logger.Enabled(t.Context(), slog.LevelInfo))
}
