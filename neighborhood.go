package searchlight

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/searchlight/dsm"
)

// Neighborhoods returns, for every series, the set of series whose distance
// to it is strictly less than radius. dist must be a square matrix.
//
// A series is always its own neighbor when radius > 0, since its distance
// to itself is zero.
func Neighborhoods(dist [][]float64, radius float64) ([]*roaring.Bitmap, error) {
	n := len(dist)
	for _, row := range dist {
		if len(row) != n {
			return nil, &dsm.ShapeError{Name: "dist", Shape: []int{n, len(row)}, Reason: "the distance matrix must be square"}
		}
	}
	out := make([]*roaring.Bitmap, n)
	for s, row := range dist {
		b := roaring.New()
		for t, d := range row {
			if d < radius {
				b.Add(uint32(t))
			}
		}
		out[s] = b
	}
	return out, nil
}

// members returns the series in b in ascending order.
func members(b *roaring.Bitmap) []int {
	ids := b.ToArray()
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = int(id)
	}
	return out
}
