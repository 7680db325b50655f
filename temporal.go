package searchlight

import (
	"context"
	"fmt"

	"github.com/hupe1980/searchlight/internal/parallel"
	"github.com/hupe1980/searchlight/tensor"
)

// Temporal creates a stream of DSMs using a searchlight in time.
//
// Each valid time sample (see PatchCenters) is visited in ascending order.
// For each visited sample a DSM is computed from the samples in
// [center-temporalRadius, center+temporalRadius) of all series.
//
// data has shape [items, ..., times]; the last axis holds consecutive time
// samples and all axes between the first and the last are flattened into
// the feature vector. If the window does not fit in the data the stream is
// empty.
func Temporal(ctx context.Context, data *tensor.Array, temporalRadius int, optFns ...Option) (*Stream, error) {
	o := applyOptions(optFns)
	if err := requireRank(data, 2, "[items, ..., times]"); err != nil {
		return nil, err
	}
	if temporalRadius < 0 {
		return nil, fmt.Errorf("%w: temporal radius %d", ErrInvalidArgument, temporalRadius)
	}
	centers := PatchCenters(data.Dim(-1), temporalRadius)

	logger := o.logger.WithKind("temporal").WithMetric(o.metric)
	p, err := newPatcher(ctx, data, &o, logger)
	if err != nil {
		return nil, err
	}
	logger.LogFolds(ctx, p.folds.Dim(0), p.folds.Dim(1), len(centers))

	compute := func(ctx context.Context, i int) (DSM, error) {
		center := centers[i]
		patch, err := p.folds.Slice(-1, center-temporalRadius, center+temporalRadius)
		if err == nil {
			var values []float64
			values, err = p.dsm(patch)
			logger.WithCenter(center).LogPatch(ctx, features(patch), err)
			if err == nil {
				return DSM{Series: -1, Center: center, Values: values}, nil
			}
		}
		return DSM{}, &PatchError{Series: -1, Center: center, cause: err}
	}
	return newStream("temporal", len(centers), compute, parallel.Config{Workers: 1}, &o, logger), nil
}
