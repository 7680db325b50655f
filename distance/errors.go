package distance

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownMetric is returned when a metric name is not registered.
	ErrUnknownMetric = errors.New("unknown metric")

	// ErrDuplicateMetric is returned when registering a name twice.
	ErrDuplicateMetric = errors.New("metric already registered")
)

// ErrInvalidOption indicates a missing, unknown or malformed metric option.
type ErrInvalidOption struct {
	Metric string
	Option string
	Reason string
}

func (e *ErrInvalidOption) Error() string {
	return fmt.Sprintf("metric %q: option %q: %s", e.Metric, e.Option, e.Reason)
}

// ErrDimensionMismatch indicates vectors with different feature counts.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}
