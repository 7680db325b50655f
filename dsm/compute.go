package dsm

import (
	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/searchlight/distance"
	"github.com/hupe1980/searchlight/tensor"
)

// Compute returns the condensed DSM over the items of data.
//
// data has shape [items, ...]; every axis after the first is flattened into a
// single feature vector per item. metric names a registered distance metric
// and opts carries its options.
func Compute(data *tensor.Array, metric string, opts distance.Options) ([]float64, error) {
	items, features, err := flatShape(data, 1, "data")
	if err != nil {
		return nil, err
	}
	if err := checkArity(metric, features); err != nil {
		return nil, err
	}
	x, err := data.Reshape(items, features)
	if err != nil {
		return nil, err
	}
	return distance.Pdist(x.Rows(), metric, opts)
}

// ComputeCV returns a cross-validated condensed DSM.
//
// folds has shape [folds, items, ...]. Each fold k is held out once as the
// test set, with the training estimate
//
//	train = mean - (mean - test_k) / (F - 1)
//
// where mean is the grand mean over all F folds. Distances from training to
// test estimates are accumulated over the strict upper triangle and averaged
// over folds. On fold-identical data the result equals Compute on the mean.
func ComputeCV(folds *tensor.Array, metric string, opts distance.Options) ([]float64, error) {
	if folds.Rank() < 2 {
		return nil, &ShapeError{Name: "folds", Shape: folds.Shape(), Reason: "expected [folds, items, ...]"}
	}
	nFolds := folds.Dim(0)
	if nFolds < 2 {
		return nil, &DegenerateFoldError{Folds: nFolds}
	}
	items, features, err := flatShape(folds, 2, "folds")
	if err != nil {
		return nil, err
	}
	if err := checkArity(metric, features); err != nil {
		return nil, err
	}
	x, err := folds.Reshape(nFolds, items*features)
	if err != nil {
		return nil, err
	}

	mean := make([]float64, items*features)
	for k := 0; k < nFolds; k++ {
		floats.Add(mean, x.Row(k))
	}
	floats.Scale(1/float64(nFolds), mean)

	out := make([]float64, CondensedLen(items))
	train := make([]float64, items*features)
	delta := make([]float64, items*features)
	scale := 1 / float64(nFolds-1)
	for k := 0; k < nFolds; k++ {
		test := x.Row(k)
		floats.SubTo(delta, mean, test)
		floats.AddScaledTo(train, mean, -scale, delta)
		dist, err := distance.Cdist(rows(train, items, features), rows(test, items, features), metric, opts)
		if err != nil {
			return nil, err
		}
		p := 0
		for i := 0; i < items; i++ {
			for j := i + 1; j < items; j++ {
				out[p] += dist[i][j]
				p++
			}
		}
	}
	floats.Scale(1/float64(nFolds), out)
	return out, nil
}

// flatShape returns the item count at axis lead-1 and the flattened feature
// count of all axes after it. An array without feature axes has one feature.
func flatShape(a *tensor.Array, lead int, name string) (items, features int, err error) {
	shape := a.Shape()
	if len(shape) < lead {
		return 0, 0, &ShapeError{Name: name, Shape: shape, Reason: "missing item dimension"}
	}
	items = shape[lead-1]
	features = 1
	for _, d := range shape[lead:] {
		features *= d
	}
	if features == 0 {
		return 0, 0, &ShapeError{Name: name, Shape: shape, Reason: "no features"}
	}
	return items, features, nil
}

func checkArity(metric string, features int) error {
	m, err := distance.Lookup(metric)
	if err != nil {
		return err
	}
	if features < m.MinFeatures {
		return &MetricArityError{Metric: metric, Features: features, MinFeatures: m.MinFeatures}
	}
	return nil
}

func rows(flat []float64, n, f int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = flat[i*f : (i+1)*f : (i+1)*f]
	}
	return out
}
