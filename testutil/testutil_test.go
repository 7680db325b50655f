package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniformArray(t *testing.T) {
	rng := NewRNG(4711)

	a := rng.UniformArray(8, 4, 3)

	assert.Equal(t, []int{8, 4, 3}, a.Shape())
	for _, v := range a.Data() {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestGaussianArray(t *testing.T) {
	rng := NewRNG(4711)

	a := rng.GaussianArray(100, 10)

	var sum float64
	for _, v := range a.Data() {
		sum += v
	}
	assert.InDelta(t, 0.0, sum/float64(a.Len()), 0.2)
}

func TestSymmetricDSM(t *testing.T) {
	rng := NewRNG(4711)

	a := rng.SymmetricDSM(5)
	d := a.Data()
	for i := 0; i < 5; i++ {
		assert.Equal(t, 0.0, d[i*5+i])
		for j := 0; j < 5; j++ {
			assert.Equal(t, d[i*5+j], d[j*5+i])
		}
	}
}

func TestLabels(t *testing.T) {
	rng := NewRNG(4711)

	y := rng.Labels(3, 4)
	counts := map[int]int{}
	for _, c := range y {
		counts[c]++
	}
	assert.Equal(t, map[int]int{0: 4, 1: 4, 2: 4}, counts)
}

func TestLineDistances(t *testing.T) {
	d := LineDistances(3)
	assert.Equal(t, [][]float64{{0, 1, 2}, {1, 0, 1}, {2, 1, 0}}, d)
}

func TestTile(t *testing.T) {
	rng := NewRNG(4711)
	a := rng.UniformArray(2, 3)

	b := Tile(a, 3)
	assert.Equal(t, []int{3, 2, 3}, b.Shape())
	assert.Equal(t, a.Data(), b.Data()[6:12])
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := rng.UniformArray(10).Data()
	rng.Reset()
	v2 := rng.UniformArray(10).Data()
	assert.Equal(t, v1, v2)
	assert.Equal(t, int64(4711), rng.Seed())
}
