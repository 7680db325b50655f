package folds

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/searchlight/tensor"
	"github.com/hupe1980/searchlight/testutil"
)

func TestCreateWithoutLabels(t *testing.T) {
	rng := testutil.NewRNG(4711)
	x := rng.UniformArray(4, 3, 5)

	f, err := Create(context.Background(), x, nil, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 3, 5}, f.Shape())
	// Wraps the data without copying.
	assert.Same(t, &x.Data()[0], &f.Data()[0])
}

func TestCreateAveragesDuplicates(t *testing.T) {
	// Two classes, labels out of order; class 7 appears at rows 0 and 2.
	x, err := tensor.FromRows([][]float64{
		{1, 1},
		{10, 10},
		{3, 5},
		{20, 30},
	})
	require.NoError(t, err)
	y := []int{7, 2, 7, 2}

	f, err := Create(context.Background(), x, y, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 2}, f.Shape())
	// Classes are sorted: 2 first, then 7.
	assert.Equal(t, []float64{15, 20, 2, 3}, f.Data())
}

func TestCreateFolds(t *testing.T) {
	// Class 0 observed at rows 0, 2, 4, 6; class 1 at rows 1, 3, 5, 7.
	x, err := tensor.New([]int{8, 1}, []float64{0, 100, 1, 101, 2, 102, 3, 103})
	require.NoError(t, err)
	y := []int{0, 1, 0, 1, 0, 1, 0, 1}

	f, err := Create(context.Background(), x, y, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 1}, f.Shape())
	// Fold 0 gets observations 0 and 2 of each class, fold 1 gets 1 and 3.
	assert.Equal(t, []float64{1, 101, 2, 102}, f.Data())
}

func TestCreateMaxFolds(t *testing.T) {
	rng := testutil.NewRNG(4711)
	y := append(rng.Labels(3, 4), 0) // class 0 has 5 observations
	x := rng.UniformArray(len(y), 2)

	f, err := Create(context.Background(), x, y, Max, -1)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3, 2}, f.Shape())
}

func TestCreatePreservesMean(t *testing.T) {
	rng := testutil.NewRNG(4711)
	y := rng.Labels(5, 6)
	x := rng.GaussianArray(len(y), 3, 2)

	all, err := Create(context.Background(), x, y, 1, 1)
	require.NoError(t, err)
	f, err := Create(context.Background(), x, y, 3, 3)
	require.NoError(t, err)

	// Equal-sized folds average back to the overall class means.
	rows := all.Dim(1) * 6
	for i := 0; i < rows; i++ {
		var m float64
		for k := 0; k < 3; k++ {
			m += f.Data()[k*rows+i] / 3
		}
		assert.InDelta(t, all.Data()[i], m, 1e-12)
	}
}

func TestCreateErrors(t *testing.T) {
	x, err := tensor.Zeros(4, 2)
	require.NoError(t, err)

	t.Run("LabelMismatch", func(t *testing.T) {
		_, err := Create(context.Background(), x, []int{0, 1}, 1, 1)
		assert.ErrorIs(t, err, ErrLabelMismatch)
	})

	t.Run("InvalidFoldCount", func(t *testing.T) {
		_, err := Create(context.Background(), x, nil, 0, 1)
		assert.ErrorIs(t, err, ErrInvalidFoldCount)
		_, err = Create(context.Background(), x, nil, -2, 1)
		assert.ErrorIs(t, err, ErrInvalidFoldCount)
	})

	t.Run("InsufficientRepetitions", func(t *testing.T) {
		_, err := Create(context.Background(), x, []int{0, 0, 0, 1}, 2, 1)
		var ire *InsufficientRepetitionsError
		require.ErrorAs(t, err, &ire)
		assert.Equal(t, 1, ire.Class)
		assert.Equal(t, 1, ire.Count)
		assert.Equal(t, 2, ire.Folds)
	})

	t.Run("Cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := Create(ctx, x, []int{0, 0, 1, 1}, 2, 1)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
