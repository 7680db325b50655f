package dsm

import (
	"math"

	"github.com/hupe1980/searchlight/tensor"
)

// CondensedLen returns the length of a condensed DSM over n items.
func CondensedLen(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// itemsFromLen solves n(n-1)/2 = l for n.
func itemsFromLen(l int) (int, bool) {
	n := int(math.Round((1 + math.Sqrt(1+8*float64(l))) / 2))
	return n, n*(n-1)/2 == l
}

// Condensed converts a square, symmetric, zero-diagonal matrix into its
// condensed form.
func Condensed(square *tensor.Array, name string) ([]float64, error) {
	shape := square.Shape()
	if len(shape) != 2 || shape[0] != shape[1] {
		return nil, &ShapeError{Name: name, Shape: shape, Reason: "the DSM should either be a square matrix, or a one dimensional array when in condensed form"}
	}
	n := shape[0]
	data := square.Data()
	out := make([]float64, 0, CondensedLen(n))
	for i := 0; i < n; i++ {
		if data[i*n+i] != 0 {
			return nil, &ShapeError{Name: name, Shape: shape, Reason: "the DSM must have a zero diagonal"}
		}
		for j := i + 1; j < n; j++ {
			v := data[i*n+j]
			if v != data[j*n+i] && !(math.IsNaN(v) && math.IsNaN(data[j*n+i])) {
				return nil, &ShapeError{Name: name, Shape: shape, Reason: "the DSM must be symmetric"}
			}
			out = append(out, v)
		}
	}
	return out, nil
}

// SquareForm expands a condensed DSM into a symmetric n x n matrix with a
// zero diagonal.
func SquareForm(condensed []float64) (*tensor.Array, error) {
	n, ok := itemsFromLen(len(condensed))
	if !ok {
		return nil, &ShapeError{Name: "dsm", Shape: []int{len(condensed)}, Reason: "length is not n(n-1)/2 for any n"}
	}
	out, err := tensor.Zeros(n, n)
	if err != nil {
		return nil, err
	}
	data := out.Data()
	k := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			data[i*n+j] = condensed[k]
			data[j*n+i] = condensed[k]
			k++
		}
	}
	return out, nil
}

// EnsureCondensed returns dsm in condensed form. Square matrices are
// converted; one-dimensional arrays pass through unchanged. Any other rank,
// or a non-square matrix, fails with a ShapeError naming name.
func EnsureCondensed(dsm *tensor.Array, name string) ([]float64, error) {
	switch dsm.Rank() {
	case 2:
		return Condensed(dsm, name)
	case 1:
		return dsm.Data(), nil
	default:
		return nil, &ShapeError{Name: name, Shape: dsm.Shape(), Reason: "invalid number of dimensions; the DSM should either be a square matrix, or a one dimensional array when in condensed form"}
	}
}

// EnsureCondensedAll applies EnsureCondensed to every element of dsms.
func EnsureCondensedAll(dsms []*tensor.Array, name string) ([][]float64, error) {
	out := make([][]float64, len(dsms))
	for i, d := range dsms {
		c, err := EnsureCondensed(d, name)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// NItems returns the number of items a DSM describes, from either encoding.
func NItems(dsm *tensor.Array) (int, error) {
	switch dsm.Rank() {
	case 2:
		return dsm.Dim(0), nil
	case 1:
		n, ok := itemsFromLen(dsm.Len())
		if !ok {
			return 0, &ShapeError{Name: "dsm", Shape: dsm.Shape(), Reason: "length is not n(n-1)/2 for any n"}
		}
		return n, nil
	default:
		return 0, &ShapeError{Name: "dsm", Shape: dsm.Shape(), Reason: "the DSM should either be a square matrix, or a one dimensional array when in condensed form"}
	}
}
