package dsm

import (
	"errors"
	"fmt"
)

// ErrShape is matched by every ShapeError via errors.Is.
var ErrShape = errors.New("invalid shape")

// ShapeError reports an input whose dimensions are not valid for a DSM or
// for the requested computation. Name identifies the offending argument.
type ShapeError struct {
	Name   string
	Shape  []int
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("invalid dimensions for %q %v: %s", e.Name, e.Shape, e.Reason)
}

func (e *ShapeError) Is(target error) bool { return target == ErrShape }

// MetricArityError reports a metric that is undefined for the number of
// features in the data, such as correlation on a single feature.
type MetricArityError struct {
	Metric      string
	Features    int
	MinFeatures int
}

func (e *MetricArityError) Error() string {
	return fmt.Sprintf("there are only %d feature(s), so %q can not be used as DSM metric (needs at least %d); consider using \"sqeuclidean\" instead",
		e.Features, e.Metric, e.MinFeatures)
}

// DegenerateFoldError reports a cross-validated computation with fewer than
// two folds. Single-fold data must go through Compute.
type DegenerateFoldError struct {
	Folds int
}

func (e *DegenerateFoldError) Error() string {
	return fmt.Sprintf("cross-validation needs at least 2 folds, got %d", e.Folds)
}
