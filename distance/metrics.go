package distance

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

func init() {
	mustRegister(Metric{Name: "braycurtis", Prepare: fixed(BrayCurtis)})
	mustRegister(Metric{Name: "canberra", Prepare: fixed(Canberra)})
	mustRegister(Metric{Name: "chebyshev", Prepare: fixed(Chebyshev)})
	mustRegister(Metric{Name: "correlation", MinFeatures: 2, Options: []string{"w"}, Prepare: prepareCorrelation})
	mustRegister(Metric{Name: "cosine", MinFeatures: 2, Options: []string{"w"}, Prepare: prepareCosine})
	mustRegister(Metric{Name: "cityblock", Options: []string{"w"}, Prepare: prepareCityBlock})
	mustRegister(Metric{Name: "euclidean", Options: []string{"w"}, Prepare: prepareEuclidean})
	mustRegister(Metric{Name: "sqeuclidean", Options: []string{"w"}, Prepare: prepareSqEuclidean})
	mustRegister(Metric{Name: "minkowski", Options: []string{"p", "w"}, Prepare: prepareMinkowski})
	mustRegister(Metric{Name: "hamming", Options: []string{"w"}, Prepare: prepareHamming})
	mustRegister(Metric{Name: "jensenshannon", Options: []string{"base"}, Prepare: prepareJensenShannon})
	mustRegister(Metric{Name: "seuclidean", Options: []string{"V"}, Prepare: prepareSEuclidean})
	mustRegister(Metric{Name: "mahalanobis", Options: []string{"VI"}, Prepare: prepareMahalanobis})
}

func fixed(f Func) PrepareFunc {
	return func(Options, ...[][]float64) (Func, error) { return f, nil }
}

// featureDim returns the vector length of the first row in samples, or -1.
func featureDim(samples [][][]float64) int {
	for _, s := range samples {
		if len(s) > 0 {
			return len(s[0])
		}
	}
	return -1
}

func weights(metric string, opts Options, samples [][][]float64) ([]float64, error) {
	w, err := opts.Floats("w")
	if err != nil {
		return nil, &ErrInvalidOption{Metric: metric, Option: "w", Reason: err.Error()}
	}
	if w == nil {
		return nil, nil
	}
	if dim := featureDim(samples); dim >= 0 && len(w) != dim {
		return nil, &ErrInvalidOption{Metric: metric, Option: "w", Reason: "length must match the number of features"}
	}
	for _, x := range w {
		if x < 0 {
			return nil, &ErrInvalidOption{Metric: metric, Option: "w", Reason: "weights must be non-negative"}
		}
	}
	return w, nil
}

// scaled returns the element-wise product of s and x in a new slice.
func scaled(s, x []float64) []float64 {
	return floats.MulTo(make([]float64, len(x)), s, x)
}

func diff(u, v []float64) []float64 {
	return floats.SubTo(make([]float64, len(u)), u, v)
}

// SqEuclidean returns the squared Euclidean distance.
func SqEuclidean(u, v []float64) float64 {
	d := diff(u, v)
	return floats.Dot(d, d)
}

// Euclidean returns the Euclidean (L2) distance.
func Euclidean(u, v []float64) float64 {
	return floats.Distance(u, v, 2)
}

// CityBlock returns the Manhattan (L1) distance.
func CityBlock(u, v []float64) float64 {
	return floats.Distance(u, v, 1)
}

// Chebyshev returns the L-infinity distance.
func Chebyshev(u, v []float64) float64 {
	return floats.Distance(u, v, math.Inf(1))
}

// Cosine returns one minus the cosine similarity. Zero vectors yield NaN.
func Cosine(u, v []float64) float64 {
	return 1 - floats.Dot(u, v)/(floats.Norm(u, 2)*floats.Norm(v, 2))
}

// Correlation returns one minus the Pearson correlation. Constant vectors
// yield NaN.
func Correlation(u, v []float64) float64 {
	return 1 - stat.Correlation(u, v, nil)
}

// BrayCurtis returns sum|u-v| / sum|u+v|.
func BrayCurtis(u, v []float64) float64 {
	neg := floats.ScaleTo(make([]float64, len(v)), -1, v)
	return floats.Distance(u, v, 1) / floats.Distance(u, neg, 1)
}

// Canberra returns sum |u-v| / (|u|+|v|), skipping terms where both are zero.
func Canberra(u, v []float64) float64 {
	var sum float64
	for i := range u {
		den := math.Abs(u[i]) + math.Abs(v[i])
		if den == 0 {
			continue
		}
		sum += math.Abs(u[i]-v[i]) / den
	}
	return sum
}

func prepareCorrelation(opts Options, samples ...[][]float64) (Func, error) {
	w, err := weights("correlation", opts, samples)
	if err != nil || w == nil {
		return Correlation, err
	}
	return func(u, v []float64) float64 {
		return 1 - stat.Correlation(u, v, w)
	}, nil
}

func prepareCosine(opts Options, samples ...[][]float64) (Func, error) {
	w, err := weights("cosine", opts, samples)
	if err != nil || w == nil {
		return Cosine, err
	}
	sw := make([]float64, len(w))
	for i, x := range w {
		sw[i] = math.Sqrt(x)
	}
	return func(u, v []float64) float64 {
		return Cosine(scaled(sw, u), scaled(sw, v))
	}, nil
}

func prepareSqEuclidean(opts Options, samples ...[][]float64) (Func, error) {
	w, err := weights("sqeuclidean", opts, samples)
	if err != nil || w == nil {
		return SqEuclidean, err
	}
	return func(u, v []float64) float64 {
		d := diff(u, v)
		floats.Mul(d, d)
		return floats.Dot(w, d)
	}, nil
}

func prepareEuclidean(opts Options, samples ...[][]float64) (Func, error) {
	w, err := weights("euclidean", opts, samples)
	if err != nil || w == nil {
		return Euclidean, err
	}
	return func(u, v []float64) float64 {
		d := diff(u, v)
		floats.Mul(d, d)
		return math.Sqrt(floats.Dot(w, d))
	}, nil
}

func prepareCityBlock(opts Options, samples ...[][]float64) (Func, error) {
	w, err := weights("cityblock", opts, samples)
	if err != nil || w == nil {
		return CityBlock, err
	}
	return func(u, v []float64) float64 {
		return floats.Distance(scaled(w, u), scaled(w, v), 1)
	}, nil
}

func prepareMinkowski(opts Options, samples ...[][]float64) (Func, error) {
	p, err := opts.Float("p", 2)
	if err != nil {
		return nil, &ErrInvalidOption{Metric: "minkowski", Option: "p", Reason: err.Error()}
	}
	if p <= 0 || math.IsNaN(p) {
		return nil, &ErrInvalidOption{Metric: "minkowski", Option: "p", Reason: "must be positive"}
	}
	w, err := weights("minkowski", opts, samples)
	if err != nil {
		return nil, err
	}
	if math.IsInf(p, 1) {
		return Chebyshev, nil
	}
	if w == nil {
		return func(u, v []float64) float64 {
			return floats.Distance(u, v, p)
		}, nil
	}
	// sum w|u-v|^p == sum |w^(1/p)u - w^(1/p)v|^p
	s := make([]float64, len(w))
	for i, x := range w {
		s[i] = math.Pow(x, 1/p)
	}
	return func(u, v []float64) float64 {
		return floats.Distance(scaled(s, u), scaled(s, v), p)
	}, nil
}

func prepareHamming(opts Options, samples ...[][]float64) (Func, error) {
	w, err := weights("hamming", opts, samples)
	if err != nil {
		return nil, err
	}
	return func(u, v []float64) float64 {
		var mismatch, total float64
		for i := range u {
			wi := 1.0
			if w != nil {
				wi = w[i]
			}
			if u[i] != v[i] {
				mismatch += wi
			}
			total += wi
		}
		return mismatch / total
	}, nil
}

func prepareJensenShannon(opts Options, _ ...[][]float64) (Func, error) {
	base, err := opts.Float("base", 0)
	if err != nil {
		return nil, &ErrInvalidOption{Metric: "jensenshannon", Option: "base", Reason: err.Error()}
	}
	if base < 0 || base == 1 {
		return nil, &ErrInvalidOption{Metric: "jensenshannon", Option: "base", Reason: "must be positive and not 1"}
	}
	return func(u, v []float64) float64 {
		p := floats.ScaleTo(make([]float64, len(u)), 1/floats.Sum(u), u)
		q := floats.ScaleTo(make([]float64, len(v)), 1/floats.Sum(v), v)
		var js float64
		for i := range p {
			m := (p[i] + q[i]) / 2
			js += relEntr(p[i], m) + relEntr(q[i], m)
		}
		js /= 2
		if base > 0 {
			js /= math.Log(base)
		}
		return math.Sqrt(js)
	}, nil
}

func relEntr(x, y float64) float64 {
	switch {
	case x > 0 && y > 0:
		return x * math.Log(x/y)
	case x == 0 && y >= 0:
		return 0
	default:
		return math.Inf(1)
	}
}

func prepareSEuclidean(opts Options, samples ...[][]float64) (Func, error) {
	variances, err := opts.Floats("V")
	if err != nil {
		return nil, &ErrInvalidOption{Metric: "seuclidean", Option: "V", Reason: err.Error()}
	}
	dim := featureDim(samples)
	if variances == nil {
		x, ok := stack(samples, dim, 2)
		if !ok {
			return nil, &ErrInvalidOption{Metric: "seuclidean", Option: "V", Reason: "at least two rows are needed to estimate variances"}
		}
		variances = make([]float64, dim)
		col := make([]float64, x.RawMatrix().Rows)
		for j := range variances {
			mat.Col(col, j, x)
			variances[j] = stat.Variance(col, nil)
		}
	} else if dim >= 0 && len(variances) != dim {
		return nil, &ErrInvalidOption{Metric: "seuclidean", Option: "V", Reason: "length must match the number of features"}
	}
	return func(u, v []float64) float64 {
		d := diff(u, v)
		floats.Mul(d, d)
		floats.Div(d, variances)
		return math.Sqrt(floats.Sum(d))
	}, nil
}

// stack copies all rows of all samples into one dense matrix. It reports
// false when there are fewer than minRows rows.
func stack(samples [][][]float64, dim, minRows int) (*mat.Dense, bool) {
	n := 0
	for _, s := range samples {
		n += len(s)
	}
	if dim < 1 || n < minRows {
		return nil, false
	}
	data := make([]float64, 0, n*dim)
	for _, s := range samples {
		for _, row := range s {
			data = append(data, row...)
		}
	}
	return mat.NewDense(n, dim, data), true
}

func prepareMahalanobis(opts Options, samples ...[][]float64) (Func, error) {
	rows, err := opts.Matrix("VI")
	if err != nil {
		return nil, &ErrInvalidOption{Metric: "mahalanobis", Option: "VI", Reason: err.Error()}
	}
	dim := featureDim(samples)

	var vi mat.Matrix
	if rows == nil {
		if vi, err = inverseCovariance(samples, dim); err != nil {
			return nil, err
		}
	} else {
		n := len(rows)
		data := make([]float64, 0, n*n)
		for _, row := range rows {
			if len(row) != n {
				return nil, &ErrInvalidOption{Metric: "mahalanobis", Option: "VI", Reason: "must be square"}
			}
			data = append(data, row...)
		}
		if dim >= 0 && dim != n {
			return nil, &ErrInvalidOption{Metric: "mahalanobis", Option: "VI", Reason: "size must match the number of features"}
		}
		vi = mat.NewDense(n, n, data)
	}
	return func(u, v []float64) float64 {
		d := mat.NewVecDense(len(u), diff(u, v))
		return math.Sqrt(mat.Inner(d, vi, d))
	}, nil
}

// inverseCovariance estimates VI as the inverse sample covariance of all
// rows in samples. The covariance of n rows has rank at most n-1, so at
// least dim+1 rows are required.
func inverseCovariance(samples [][][]float64, dim int) (*mat.SymDense, error) {
	x, ok := stack(samples, dim, dim+1)
	if !ok {
		return nil, &ErrInvalidOption{Metric: "mahalanobis", Option: "VI", Reason: "more rows than features are needed to estimate the covariance"}
	}
	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, x, nil)

	var chol mat.Cholesky
	if !chol.Factorize(&cov) || chol.Cond() > mat.ConditionTolerance {
		return nil, &ErrInvalidOption{Metric: "mahalanobis", Option: "VI", Reason: "covariance matrix is singular"}
	}
	var vi mat.SymDense
	if err := chol.InverseTo(&vi); err != nil {
		return nil, &ErrInvalidOption{Metric: "mahalanobis", Option: "VI", Reason: err.Error()}
	}
	return &vi, nil
}
