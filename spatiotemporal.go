package searchlight

import (
	"context"
	"fmt"
	"math"

	"github.com/hupe1980/searchlight/dsm"
	"github.com/hupe1980/searchlight/internal/parallel"
	"github.com/hupe1980/searchlight/tensor"
)

// SpatioTemporal creates a stream of DSMs using a spatio-temporal searchlight
// pattern.
//
// For each series, each valid time sample is visited. For each visited
// sample a DSM is computed from the samples within temporalRadius on all
// series within spatialRadius. DSMs are yielded series-major, time-minor:
//
//	(s0,c0) (s0,c1) ... (s0,cK) (s1,c0) ...
//
// data has shape [items, series, ..., times]. With WithJobs patches are
// computed on a worker pool, at most WithPrefetch ahead of the consumer, and
// resequenced so the order above holds for any number of workers.
func SpatioTemporal(ctx context.Context, data *tensor.Array, dist [][]float64, spatialRadius float64, temporalRadius int, optFns ...Option) (*Stream, error) {
	o := applyOptions(optFns)
	if err := requireRank(data, 3, "[items, series, ..., times]"); err != nil {
		return nil, err
	}
	if math.IsNaN(spatialRadius) || spatialRadius < 0 {
		return nil, fmt.Errorf("%w: spatial radius %v", ErrInvalidArgument, spatialRadius)
	}
	if temporalRadius < 0 {
		return nil, fmt.Errorf("%w: temporal radius %d", ErrInvalidArgument, temporalRadius)
	}
	nSeries := data.Dim(1)
	if len(dist) != nSeries {
		return nil, &dsm.ShapeError{Name: "dist", Shape: []int{len(dist)}, Reason: fmt.Sprintf("expected %d x %d distances", nSeries, nSeries)}
	}
	neighbors, err := Neighborhoods(dist, spatialRadius)
	if err != nil {
		return nil, err
	}
	centers := PatchCenters(data.Dim(-1), temporalRadius)

	logger := o.logger.WithKind("spatio-temporal").WithMetric(o.metric)
	p, err := newPatcher(ctx, data, &o, logger)
	if err != nil {
		return nil, err
	}
	total := nSeries * len(centers)
	logger.LogFolds(ctx, p.folds.Dim(0), p.folds.Dim(1), total)

	compute := func(ctx context.Context, i int) (DSM, error) {
		series, center := i/len(centers), centers[i%len(centers)]
		patch, err := p.folds.Take(2, members(neighbors[series]))
		if err == nil {
			patch, err = patch.Slice(-1, center-temporalRadius, center+temporalRadius)
		}
		if err == nil {
			var values []float64
			values, err = p.dsm(patch)
			logger.WithSeries(series).WithCenter(center).LogPatch(ctx, features(patch), err)
			if err == nil {
				return DSM{Series: series, Center: center, Values: values}, nil
			}
		}
		return DSM{}, &PatchError{Series: series, Center: center, cause: err}
	}
	par := parallel.Config{Workers: parallel.Workers(o.jobs), Window: o.prefetch}
	return newStream("spatio-temporal", total, compute, par, &o, logger), nil
}
