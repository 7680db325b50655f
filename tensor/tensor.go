package tensor

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrBadShape is returned when a shape is invalid or does not match the data length.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrAxisOutOfRange is returned when an axis does not exist.
	ErrAxisOutOfRange = errors.New("tensor: axis out of range")

	// ErrIndexOutOfRange is returned when an index or range exceeds an axis.
	ErrIndexOutOfRange = errors.New("tensor: index out of range")
)

// Array is a row-major n-dimensional array of float64 values.
//
// The zero value is not usable; construct arrays with New, Zeros or FromRows.
type Array struct {
	shape []int
	data  []float64
}

// New wraps data in an Array of the given shape. The data slice is not copied.
func New(shape []int, data []float64) (*Array, error) {
	n, err := size(shape)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, fmt.Errorf("%w: shape %v needs %d values, got %d", ErrBadShape, shape, n, len(data))
	}
	return &Array{shape: slices.Clone(shape), data: data}, nil
}

// Zeros allocates a zero-filled Array of the given shape.
func Zeros(shape ...int) (*Array, error) {
	n, err := size(shape)
	if err != nil {
		return nil, err
	}
	return &Array{shape: slices.Clone(shape), data: make([]float64, n)}, nil
}

// FromRows builds a 2-D Array from equally sized rows.
func FromRows(rows [][]float64) (*Array, error) {
	if len(rows) == 0 {
		return Zeros(0, 0)
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrBadShape, i, len(r), cols)
		}
		data = append(data, r...)
	}
	return &Array{shape: []int{len(rows), cols}, data: data}, nil
}

func size(shape []int) (int, error) {
	n := 1
	for _, d := range shape {
		if d < 0 {
			return 0, fmt.Errorf("%w: negative dimension in %v", ErrBadShape, shape)
		}
		n *= d
	}
	return n, nil
}

// Shape returns a copy of the array's shape.
func (a *Array) Shape() []int { return slices.Clone(a.shape) }

// Rank returns the number of dimensions.
func (a *Array) Rank() int { return len(a.shape) }

// Dim returns the size of the given axis. Negative axes count from the end.
func (a *Array) Dim(axis int) int {
	ax, err := a.axis(axis)
	if err != nil {
		return 0
	}
	return a.shape[ax]
}

// Len returns the total number of values.
func (a *Array) Len() int { return len(a.data) }

// Data returns the backing slice. Callers must treat it as read-only unless
// they own the array.
func (a *Array) Data() []float64 { return a.data }

// At returns the value at the given multi-index.
func (a *Array) At(idx ...int) (float64, error) {
	if len(idx) != len(a.shape) {
		return 0, fmt.Errorf("%w: %d indices for rank %d", ErrIndexOutOfRange, len(idx), len(a.shape))
	}
	off := 0
	for i, v := range idx {
		if v < 0 || v >= a.shape[i] {
			return 0, fmt.Errorf("%w: index %d on axis %d of size %d", ErrIndexOutOfRange, v, i, a.shape[i])
		}
		off = off*a.shape[i] + v
	}
	return a.data[off], nil
}

// RowCellSize splits the array into its outermost dimension and the size of
// everything below it.
func (a *Array) RowCellSize() (rows, cells int) {
	if len(a.shape) == 0 {
		return 1, len(a.data)
	}
	rows = a.shape[0]
	if rows == 0 {
		return 0, 0
	}
	return rows, len(a.data) / rows
}

// Row returns a view of the values of row i along the outermost dimension.
func (a *Array) Row(i int) []float64 {
	_, cells := a.RowCellSize()
	return a.data[i*cells : (i+1)*cells : (i+1)*cells]
}

// Rows returns views of every row along the outermost dimension.
func (a *Array) Rows() [][]float64 {
	n, _ := a.RowCellSize()
	out := make([][]float64, n)
	for i := range out {
		out[i] = a.Row(i)
	}
	return out
}

// Reshape returns a view with a new shape sharing the same data. At most one
// dimension may be -1, in which case it is inferred.
func (a *Array) Reshape(shape ...int) (*Array, error) {
	infer := -1
	known := 1
	for i, d := range shape {
		switch {
		case d == -1:
			if infer >= 0 {
				return nil, fmt.Errorf("%w: more than one inferred dimension in %v", ErrBadShape, shape)
			}
			infer = i
		case d < 0:
			return nil, fmt.Errorf("%w: negative dimension in %v", ErrBadShape, shape)
		default:
			known *= d
		}
	}
	out := slices.Clone(shape)
	if infer >= 0 {
		if known == 0 || len(a.data)%known != 0 {
			return nil, fmt.Errorf("%w: cannot reshape %v into %v", ErrBadShape, a.shape, shape)
		}
		out[infer] = len(a.data) / known
	} else if known != len(a.data) {
		return nil, fmt.Errorf("%w: cannot reshape %v into %v", ErrBadShape, a.shape, shape)
	}
	return &Array{shape: out, data: a.data}, nil
}

// ExpandDims returns a view with a new axis of size 1 inserted at position axis.
func (a *Array) ExpandDims(axis int) (*Array, error) {
	if axis < 0 {
		axis += len(a.shape) + 1
	}
	if axis < 0 || axis > len(a.shape) {
		return nil, fmt.Errorf("%w: %d for rank %d", ErrAxisOutOfRange, axis, len(a.shape))
	}
	shape := slices.Insert(slices.Clone(a.shape), axis, 1)
	return &Array{shape: shape, data: a.data}, nil
}

// Take copies the entries at the given indices along axis, in the order given.
func (a *Array) Take(axis int, indices []int) (*Array, error) {
	ax, err := a.axis(axis)
	if err != nil {
		return nil, err
	}
	outer, dim, inner := a.split(ax)
	for _, i := range indices {
		if i < 0 || i >= dim {
			return nil, fmt.Errorf("%w: index %d on axis %d of size %d", ErrIndexOutOfRange, i, ax, dim)
		}
	}

	shape := slices.Clone(a.shape)
	shape[ax] = len(indices)
	data := make([]float64, 0, outer*len(indices)*inner)
	for o := 0; o < outer; o++ {
		base := o * dim
		for _, i := range indices {
			off := (base + i) * inner
			data = append(data, a.data[off:off+inner]...)
		}
	}
	return &Array{shape: shape, data: data}, nil
}

// Slice copies the half-open range [lo, hi) along axis.
func (a *Array) Slice(axis, lo, hi int) (*Array, error) {
	ax, err := a.axis(axis)
	if err != nil {
		return nil, err
	}
	outer, dim, inner := a.split(ax)
	if lo < 0 || hi > dim || lo > hi {
		return nil, fmt.Errorf("%w: range [%d, %d) on axis %d of size %d", ErrIndexOutOfRange, lo, hi, ax, dim)
	}

	shape := slices.Clone(a.shape)
	shape[ax] = hi - lo
	data := make([]float64, 0, outer*(hi-lo)*inner)
	for o := 0; o < outer; o++ {
		start := (o*dim + lo) * inner
		end := (o*dim + hi) * inner
		data = append(data, a.data[start:end]...)
	}
	return &Array{shape: shape, data: data}, nil
}

// Clone returns a deep copy.
func (a *Array) Clone() *Array {
	return &Array{shape: slices.Clone(a.shape), data: slices.Clone(a.data)}
}

func (a *Array) axis(axis int) (int, error) {
	if axis < 0 {
		axis += len(a.shape)
	}
	if axis < 0 || axis >= len(a.shape) {
		return 0, fmt.Errorf("%w: %d for rank %d", ErrAxisOutOfRange, axis, len(a.shape))
	}
	return axis, nil
}

// split returns the product of dimensions before ax, the size of ax and the
// product of dimensions after it.
func (a *Array) split(ax int) (outer, dim, inner int) {
	outer, inner = 1, 1
	for _, d := range a.shape[:ax] {
		outer *= d
	}
	for _, d := range a.shape[ax+1:] {
		inner *= d
	}
	return outer, a.shape[ax], inner
}

// String implements fmt.Stringer.
func (a *Array) String() string {
	return fmt.Sprintf("Array%v", a.shape)
}
