package searchlight

import (
	"context"
	"iter"
	"sync/atomic"

	"github.com/hupe1980/searchlight/distance"
	"github.com/hupe1980/searchlight/dsm"
	"github.com/hupe1980/searchlight/folds"
	"github.com/hupe1980/searchlight/internal/parallel"
	"github.com/hupe1980/searchlight/tensor"
)

// DSM is the condensed dissimilarity matrix of one searchlight patch.
type DSM struct {
	// Series is the center series of the spatial neighborhood, or -1 for
	// temporal searchlights.
	Series int

	// Center is the center sample of the temporal window, or -1 for
	// spatial searchlights.
	Center int

	// Values holds the pairwise dissimilarities in condensed form.
	Values []float64
}

type patchFunc func(ctx context.Context, i int) (DSM, error)

// Stream is a lazy, finite, single-pass sequence of DSMs, one per
// searchlight patch in a fixed order.
type Stream struct {
	kind     string
	total    int
	compute  patchFunc
	par      parallel.Config
	progress ProgressObserver
	logger   *Logger
	consumed atomic.Bool
}

func newStream(kind string, total int, compute patchFunc, par parallel.Config, o *options, logger *Logger) *Stream {
	return &Stream{
		kind:     kind,
		total:    total,
		compute:  compute,
		par:      par,
		progress: o.progress,
		logger:   logger,
	}
}

// Kind returns "spatial", "temporal" or "spatio-temporal".
func (s *Stream) Kind() string { return s.kind }

// Len returns the number of patches, i.e. the number of DSMs a complete
// iteration yields.
func (s *Stream) Len() int { return s.total }

// All returns an iterator over the DSMs. Patches are computed on demand;
// breaking out of the loop stops the computation.
//
// The stream can be iterated once. A second iteration yields
// ErrStreamConsumed. Iteration ends at the first error, which is yielded
// once; DSMs yielded before it remain valid.
//
// Example:
//
//	for d, err := range s.All(ctx) {
//	    if err != nil { return err }
//	    fmt.Println(d.Series, d.Center, d.Values)
//	}
func (s *Stream) All(ctx context.Context) iter.Seq2[DSM, error] {
	return func(yield func(DSM, error) bool) {
		if !s.consumed.CompareAndSwap(false, true) {
			yield(DSM{}, ErrStreamConsumed)
			return
		}

		produced := 0
		var streamErr error
		s.progress.Start(s.total)
		defer func() {
			s.progress.Finish()
			s.logger.LogStreamDone(ctx, produced, s.total, streamErr)
		}()

		for d, err := range parallel.Ordered(ctx, s.total, s.par, s.compute) {
			if err != nil {
				streamErr = err
				yield(DSM{}, err)
				return
			}
			produced++
			s.progress.Advance(1)
			if !yield(d, nil) {
				return
			}
		}
	}
}

// Collect consumes the stream and returns all DSM values in order.
func (s *Stream) Collect(ctx context.Context) ([][]float64, error) {
	out := make([][]float64, 0, s.total)
	for d, err := range s.All(ctx) {
		if err != nil {
			return out, err
		}
		out = append(out, d.Values)
	}
	return out, nil
}

// patcher computes DSMs from patches of a fold tensor.
type patcher struct {
	folds      *tensor.Array
	metric     string
	metricOpts distance.Options
}

// newPatcher validates the metric and builds the fold tensor once for the
// whole stream.
func newPatcher(ctx context.Context, data *tensor.Array, o *options, logger *Logger) (*patcher, error) {
	m, err := distance.Lookup(o.metric)
	if err != nil {
		return nil, err
	}
	if err := m.Validate(o.metricOpts); err != nil {
		return nil, err
	}
	if o.labels == nil && o.nFolds != 1 {
		logger.WarnContext(ctx, "cross-validation requested without labels; every item is its own class, folds disabled",
			"folds", o.nFolds,
		)
	}
	f, err := folds.Create(ctx, data, o.labels, o.nFolds, o.jobs)
	if err != nil {
		return nil, err
	}
	return &patcher{folds: f, metric: o.metric, metricOpts: o.metricOpts}, nil
}

// crossValidated reports whether patches go through dsm.ComputeCV.
func (p *patcher) crossValidated() bool { return p.folds.Dim(0) > 1 }

// dsm computes the DSM of a [folds, items, ...] patch.
func (p *patcher) dsm(patch *tensor.Array) ([]float64, error) {
	if p.crossValidated() {
		return dsm.ComputeCV(patch, p.metric, p.metricOpts)
	}
	items, err := patch.Reshape(patch.Shape()[1:]...)
	if err != nil {
		return nil, err
	}
	return dsm.Compute(items, p.metric, p.metricOpts)
}

func features(patch *tensor.Array) int {
	if patch.Rank() < 2 || patch.Dim(0)*patch.Dim(1) == 0 {
		return 0
	}
	return patch.Len() / (patch.Dim(0) * patch.Dim(1))
}

func requireRank(data *tensor.Array, rank int, layout string) error {
	if data.Rank() < rank {
		return &dsm.ShapeError{Name: "data", Shape: data.Shape(), Reason: "expected " + layout}
	}
	return nil
}
