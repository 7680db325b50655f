// Package searchlight computes dissimilarity matrices (DSMs) over
// searchlight patches of multichannel timeseries, for representational
// similarity analysis (RSA).
//
// A searchlight moves over the data and, at every location, computes a DSM
// from a local patch: the series within a spatial radius, the samples within
// a temporal radius, or both. The result is a lazy, ordered stream with one
// DSM per patch, so large analyses never hold every DSM in memory.
//
// # Quick Start
//
//	ctx := context.Background()
//
//	// data: [items, series, times]; dist: [series][series] in meters.
//	s, err := searchlight.SpatioTemporal(ctx, data, dist, 0.04, 10,
//	    searchlight.WithMetric("correlation"),
//	    searchlight.WithLabels(y),
//	    searchlight.WithFolds(5),
//	    searchlight.WithJobs(searchlight.AllCPUs),
//	)
//	if err != nil {
//	    return err
//	}
//	for d, err := range s.All(ctx) {
//	    if err != nil {
//	        return err
//	    }
//	    use(d.Series, d.Center, d.Values)
//	}
//
// # Searchlight Kinds
//
//   - Spatial: one DSM per series, from the whole timecourse of its spatial
//     neighborhood. Data is [items, series, ...].
//   - Temporal: one DSM per valid time sample, from a window of all series.
//     Data is [items, ..., times].
//   - SpatioTemporal: one DSM per (series, time sample) pair, series-major.
//     Data is [items, series, ..., times].
//
// Neighborhoods are strict: a series belongs to a spatial patch when its
// distance to the center is less than the radius. Temporal windows cover
// [center-radius, center+radius); PatchCenters lists the valid centers.
//
// # Cross-Validation
//
// With labels, repeated observations of an item are averaged before the
// DSM is computed. With WithFolds(n) for n > 1 they are split into n folds
// and the DSM is cross-validated: each fold is compared against the mean of
// the others, which removes the positive bias noise adds to distances.
//
// # Parallelism
//
// The spatio-temporal searchlight computes patches on a worker pool
// (WithJobs) at most WithPrefetch ahead of the consumer. The yielded order
// does not depend on the number of workers. Breaking out of the loop stops
// all pending work.
//
// # Configuration
//
// Options can be loaded from YAML with LoadConfig and passed on with
// Config.Options.
//
// # Subpackages
//
//   - tensor: dense row-major float64 arrays.
//   - distance: the metric registry and pairwise distances.
//   - dsm: DSM computation, cross-validated DSMs and condensed-form helpers.
//   - folds: averaging and fold construction from labels.
package searchlight
