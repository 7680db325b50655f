package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/searchlight/tensor"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// FillUniform fills dst with random values in range [0, 1).
func (r *RNG) FillUniform(dst []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Float64()
	}
}

// FillGaussian fills dst with values from a standard normal distribution.
func (r *RNG) FillGaussian(dst []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.NormFloat64()
	}
}

// UniformArray returns an array of the given shape with values in [0, 1).
func (r *RNG) UniformArray(shape ...int) *tensor.Array {
	a := mustZeros(shape)
	r.FillUniform(a.Data())
	return a
}

// GaussianArray returns an array of the given shape with standard normal values.
func (r *RNG) GaussianArray(shape ...int) *tensor.Array {
	a := mustZeros(shape)
	r.FillGaussian(a.Data())
	return a
}

// SymmetricDSM returns a random n x n symmetric matrix with a zero diagonal.
func (r *RNG) SymmetricDSM(n int) *tensor.Array {
	a := mustZeros([]int{n, n})
	d := a.Data()
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := r.rand.Float64()
			d[i*n+j] = v
			d[j*n+i] = v
		}
	}
	return a
}

// Labels returns classes*repeats labels where every class occurs repeats
// times, shuffled.
func (r *RNG) Labels(classes, repeats int) []int {
	y := make([]int, 0, classes*repeats)
	for rep := 0; rep < repeats; rep++ {
		for c := 0; c < classes; c++ {
			y = append(y, c)
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(len(y), func(i, j int) { y[i], y[j] = y[j], y[i] })
	return y
}

// LineDistances returns the distance matrix of n series placed one meter
// apart on a line.
func LineDistances(n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		for j := range out[i] {
			out[i][j] = math.Abs(float64(i - j))
		}
	}
	return out
}

// Tile stacks n copies of a along a new leading axis.
func Tile(a *tensor.Array, n int) *tensor.Array {
	shape := append([]int{n}, a.Shape()...)
	out := mustZeros(shape)
	d := out.Data()
	for k := 0; k < n; k++ {
		copy(d[k*a.Len():], a.Data())
	}
	return out
}

func mustZeros(shape []int) *tensor.Array {
	a, err := tensor.Zeros(shape...)
	if err != nil {
		panic(err)
	}
	return a
}
