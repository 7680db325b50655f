package searchlight

import (
	"log/slog"

	"github.com/hupe1980/searchlight/distance"
	"github.com/hupe1980/searchlight/folds"
)

// DefaultMetric is the distance metric used when none is configured.
const DefaultMetric = "correlation"

// AllCPUs requests one worker per available CPU.
const AllCPUs = -1

// MaxFolds requests the largest fold count the labels allow.
const MaxFolds = folds.Max

type options struct {
	metric     string
	metricOpts distance.Options
	labels     []int
	nFolds     int
	jobs       int
	prefetch   int
	verbose    bool
	progress   ProgressObserver
	logger     *Logger
}

// Option configures a searchlight stream.
type Option func(*options)

// WithMetric sets the distance metric used to compute the DSMs.
// Any name registered in the distance package is accepted.
// Defaults to "correlation".
func WithMetric(name string) Option {
	return func(o *options) {
		o.metric = name
	}
}

// WithMetricOptions sets metric-specific options, e.g. {"p": 3} for
// minkowski. Unknown keys are rejected when the stream is created.
func WithMetricOptions(opts distance.Options) Option {
	return func(o *options) {
		o.metricOpts = opts
	}
}

// WithLabels sets the class of every item. Items sharing a class are
// repeated observations and are averaged (or split into folds).
// Without labels every item is its own class.
func WithLabels(y []int) Option {
	return func(o *options) {
		o.labels = y
	}
}

// WithFolds sets the number of cross-validation folds. 1 disables
// cross-validation; MaxFolds uses as many folds as the labels allow.
//
// Example:
//
//	s, _ := searchlight.Spatial(ctx, x, dist, 0.04,
//	    searchlight.WithLabels(y),
//	    searchlight.WithFolds(5),
//	)
func WithFolds(n int) Option {
	return func(o *options) {
		o.nFolds = n
	}
}

// WithJobs sets the number of parallel workers used by the spatio-temporal
// searchlight and by fold construction. AllCPUs uses every CPU.
// Spatial and temporal streams always compute in the consuming goroutine.
func WithJobs(n int) Option {
	return func(o *options) {
		o.jobs = n
	}
}

// WithPrefetch bounds how many patches may be computed ahead of the consumer
// in a parallel stream. If <= 0, defaults to 4 per worker.
func WithPrefetch(n int) Option {
	return func(o *options) {
		o.prefetch = n
	}
}

// WithVerbose enables progress reporting. Unless an observer was set with
// WithProgress, progress is logged through the configured logger.
func WithVerbose(v bool) Option {
	return func(o *options) {
		o.verbose = v
	}
}

// WithProgress sets the observer notified once per produced DSM.
// Setting an observer enables progress reporting.
func WithProgress(p ProgressObserver) Option {
	return func(o *options) {
		o.progress = p
		o.verbose = p != nil
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := searchlight.NewJSONLogger(slog.LevelInfo)
//	s, _ := searchlight.Temporal(ctx, x, 5, searchlight.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metric: DefaultMetric,
		nFolds: 1,
		jobs:   1,
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.verbose && o.progress == nil {
		o.progress = NewLogProgress(o.logger)
	}
	if o.progress == nil {
		o.progress = NoopProgress{}
	}
	return o
}
