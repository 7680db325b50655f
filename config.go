package searchlight

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/searchlight/distance"
)

// Config is the serializable form of the searchlight options and radii.
//
// Example YAML:
//
//	metric: minkowski
//	metric_options:
//	  p: 3
//	spatial_radius: 0.04
//	temporal_radius: 10
//	folds: -1
//	jobs: -1
//	verbose: true
//	log_level: info
type Config struct {
	Metric         string           `json:"metric" yaml:"metric"`
	MetricOptions  distance.Options `json:"metric_options,omitempty" yaml:"metric_options,omitempty"`
	SpatialRadius  float64          `json:"spatial_radius" yaml:"spatial_radius"`
	TemporalRadius int              `json:"temporal_radius" yaml:"temporal_radius"`
	Folds          int              `json:"folds" yaml:"folds"`
	Jobs           int              `json:"jobs" yaml:"jobs"`
	Prefetch       int              `json:"prefetch,omitempty" yaml:"prefetch,omitempty"`
	Verbose        bool             `json:"verbose" yaml:"verbose"`
	LogLevel       string           `json:"log_level,omitempty" yaml:"log_level,omitempty"`
}

// DefaultConfig returns the defaults used when no options are given.
func DefaultConfig() Config {
	return Config{
		Metric: DefaultMetric,
		Folds:  1,
		Jobs:   1,
	}
}

// ParseConfig decodes YAML into a Config, starting from DefaultConfig.
// Unknown fields are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return ParseConfig(data)
}

// Marshal encodes the config as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks the metric, its options and the numeric fields.
func (c Config) Validate() error {
	m, err := distance.Lookup(c.Metric)
	if err != nil {
		return err
	}
	if err := m.Validate(c.MetricOptions); err != nil {
		return err
	}
	if math.IsNaN(c.SpatialRadius) || c.SpatialRadius < 0 {
		return fmt.Errorf("%w: spatial_radius %v", ErrInvalidArgument, c.SpatialRadius)
	}
	if c.TemporalRadius < 0 {
		return fmt.Errorf("%w: temporal_radius %d", ErrInvalidArgument, c.TemporalRadius)
	}
	if c.Folds == 0 || c.Folds < MaxFolds {
		return fmt.Errorf("%w: folds %d", ErrInvalidArgument, c.Folds)
	}
	if c.Jobs == 0 || c.Jobs < AllCPUs {
		return fmt.Errorf("%w: jobs %d", ErrInvalidArgument, c.Jobs)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Options converts the config into stream options. Labels are data, not
// configuration, and are passed separately with WithLabels.
func (c Config) Options() []Option {
	opts := []Option{
		WithMetric(c.Metric),
		WithMetricOptions(c.MetricOptions),
		WithFolds(c.Folds),
		WithJobs(c.Jobs),
		WithPrefetch(c.Prefetch),
		WithVerbose(c.Verbose),
	}
	if level, err := parseLevel(c.LogLevel); err == nil && c.LogLevel != "" {
		opts = append(opts, WithLogLevel(level))
	}
	return opts
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalidArgument, s)
	}
	return level, nil
}
