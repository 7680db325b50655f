package searchlight

import (
	"context"
	"fmt"
	"math"

	"github.com/hupe1980/searchlight/dsm"
	"github.com/hupe1980/searchlight/internal/parallel"
	"github.com/hupe1980/searchlight/tensor"
)

// Spatial creates a stream of DSMs using a spatial searchlight pattern.
//
// Each series (channel or source point) is visited in index order. For each
// visited series a DSM is computed from the entire timecourse of all series
// closer than spatialRadius.
//
// data has shape [items, series, ...]; all axes after the series axis are
// flattened into the feature vector. dist holds the distances between all
// series, in the same unit as spatialRadius.
//
// Labels, folds and metric are set with options. The fold tensor is built
// before Spatial returns; DSMs are computed as the stream is consumed, one
// at a time in the consuming goroutine.
func Spatial(ctx context.Context, data *tensor.Array, dist [][]float64, spatialRadius float64, optFns ...Option) (*Stream, error) {
	o := applyOptions(optFns)
	if err := requireRank(data, 2, "[items, series, ...]"); err != nil {
		return nil, err
	}
	if math.IsNaN(spatialRadius) || spatialRadius < 0 {
		return nil, fmt.Errorf("%w: spatial radius %v", ErrInvalidArgument, spatialRadius)
	}
	nSeries := data.Dim(1)
	if len(dist) != nSeries {
		return nil, &dsm.ShapeError{Name: "dist", Shape: []int{len(dist)}, Reason: fmt.Sprintf("expected %d x %d distances", nSeries, nSeries)}
	}
	neighbors, err := Neighborhoods(dist, spatialRadius)
	if err != nil {
		return nil, err
	}

	logger := o.logger.WithKind("spatial").WithMetric(o.metric)
	p, err := newPatcher(ctx, data, &o, logger)
	if err != nil {
		return nil, err
	}
	logger.LogFolds(ctx, p.folds.Dim(0), p.folds.Dim(1), nSeries)

	compute := func(ctx context.Context, series int) (DSM, error) {
		patch, err := p.folds.Take(2, members(neighbors[series]))
		if err == nil {
			var values []float64
			values, err = p.dsm(patch)
			logger.WithSeries(series).LogPatch(ctx, features(patch), err)
			if err == nil {
				return DSM{Series: series, Center: -1, Values: values}, nil
			}
		}
		return DSM{}, &PatchError{Series: series, Center: -1, cause: err}
	}
	return newStream("spatial", nSeries, compute, parallel.Config{Workers: 1}, &o, logger), nil
}
