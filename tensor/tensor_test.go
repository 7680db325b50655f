package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

func TestNew(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		a, err := New([]int{2, 3}, seq(6))
		require.NoError(t, err)
		assert.Equal(t, []int{2, 3}, a.Shape())
		assert.Equal(t, 2, a.Rank())
		assert.Equal(t, 6, a.Len())
		assert.Equal(t, 3, a.Dim(-1))
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		_, err := New([]int{2, 3}, seq(5))
		assert.ErrorIs(t, err, ErrBadShape)
	})

	t.Run("NegativeDim", func(t *testing.T) {
		_, err := New([]int{-1, 3}, nil)
		assert.ErrorIs(t, err, ErrBadShape)
	})
}

func TestFromRows(t *testing.T) {
	a, err := FromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, a.Shape())
	v, err := a.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	_, err = FromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrBadShape)
}

func TestReshape(t *testing.T) {
	a, err := New([]int{2, 3, 4}, seq(24))
	require.NoError(t, err)

	t.Run("Infer", func(t *testing.T) {
		b, err := a.Reshape(2, -1)
		require.NoError(t, err)
		assert.Equal(t, []int{2, 12}, b.Shape())
		// Views share data.
		assert.Same(t, &a.Data()[0], &b.Data()[0])
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := a.Reshape(5, -1)
		assert.ErrorIs(t, err, ErrBadShape)
		_, err = a.Reshape(-1, -1)
		assert.ErrorIs(t, err, ErrBadShape)
		_, err = a.Reshape(2, 3)
		assert.ErrorIs(t, err, ErrBadShape)
	})
}

func TestExpandDims(t *testing.T) {
	a, err := New([]int{2, 3}, seq(6))
	require.NoError(t, err)
	b, err := a.ExpandDims(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, b.Shape())

	c, err := a.ExpandDims(-1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 1}, c.Shape())

	_, err = a.ExpandDims(4)
	assert.ErrorIs(t, err, ErrAxisOutOfRange)
}

func TestTake(t *testing.T) {
	// 2 x 3 x 2
	a, err := New([]int{2, 3, 2}, seq(12))
	require.NoError(t, err)

	b, err := a.Take(1, []int{2, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 2}, b.Shape())
	assert.Equal(t, []float64{4, 5, 0, 1, 10, 11, 6, 7}, b.Data())

	// Copies never alias the source.
	b.Data()[0] = 100
	assert.Equal(t, 4.0, a.Data()[4])

	_, err = a.Take(1, []int{3})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = a.Take(3, []int{0})
	assert.ErrorIs(t, err, ErrAxisOutOfRange)
}

func TestSlice(t *testing.T) {
	a, err := New([]int{2, 5}, seq(10))
	require.NoError(t, err)

	b, err := a.Slice(-1, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, b.Shape())
	assert.Equal(t, []float64{1, 2, 6, 7}, b.Data())

	empty, err := a.Slice(1, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())

	_, err = a.Slice(1, 3, 6)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = a.Slice(1, 3, 2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestRows(t *testing.T) {
	a, err := New([]int{3, 2, 2}, seq(12))
	require.NoError(t, err)
	rows, cells := a.RowCellSize()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 4, cells)
	assert.Equal(t, []float64{4, 5, 6, 7}, a.Row(1))
	assert.Len(t, a.Rows(), 3)
}

func TestAt(t *testing.T) {
	a, err := New([]int{2, 3}, seq(6))
	require.NoError(t, err)
	v, err := a.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)

	_, err = a.At(2, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = a.At(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}
