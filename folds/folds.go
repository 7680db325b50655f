package folds

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/searchlight/internal/parallel"
	"github.com/hupe1980/searchlight/tensor"
)

// Max requests the largest fold count the data allows: the smallest number
// of repetitions of any class.
const Max = -1

// Create builds the fold tensor for data ([items, ...]) and per-item class
// labels y. nFolds is a positive fold count or Max. jobs bounds how many
// folds are averaged concurrently; -1 uses GOMAXPROCS.
//
// When y is nil the result is data viewed as [1, items, ...].
func Create(ctx context.Context, data *tensor.Array, y []int, nFolds, jobs int) (*tensor.Array, error) {
	if nFolds == 0 || nFolds < Max {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFoldCount, nFolds)
	}
	if data.Rank() < 1 {
		return nil, fmt.Errorf("%w: data has no item dimension", tensor.ErrBadShape)
	}
	if y == nil {
		return data.ExpandDims(0)
	}
	if len(y) != data.Dim(0) {
		return nil, fmt.Errorf("%w: %d labels for %d items", ErrLabelMismatch, len(y), data.Dim(0))
	}

	classes, members := group(y)
	minCount := len(y)
	for _, c := range classes {
		minCount = min(minCount, len(members[c]))
	}
	if nFolds == Max {
		nFolds = minCount
	}
	for _, c := range classes {
		if n := len(members[c]); n < nFolds {
			return nil, &InsufficientRepetitionsError{Class: c, Count: n, Folds: nFolds}
		}
	}

	_, cells := data.RowCellSize()
	shape := append([]int{nFolds, len(classes)}, data.Shape()[1:]...)
	out, err := tensor.Zeros(shape...)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel.Workers(jobs))
	for k := 0; k < nFolds; k++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			slab := out.Data()[k*len(classes)*cells : (k+1)*len(classes)*cells]
			for ci, c := range classes {
				dst := slab[ci*cells : (ci+1)*cells]
				n := 0
				for r := k; r < len(members[c]); r += nFolds {
					floats.Add(dst, data.Row(members[c][r]))
					n++
				}
				floats.Scale(1/float64(n), dst)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// group returns the sorted distinct labels and, per label, the row indices
// carrying it in input order.
func group(y []int) ([]int, map[int][]int) {
	members := make(map[int][]int)
	for i, c := range y {
		members[c] = append(members[c], i)
	}
	classes := make([]int, 0, len(members))
	for c := range members {
		classes = append(classes, c)
	}
	slices.Sort(classes)
	return classes, members
}
