package distance

// Pdist computes the distances between all pairs of rows in x and returns
// them in condensed form: the strict upper triangle of the square distance
// matrix, read row-major.
func Pdist(x [][]float64, metric string, opts Options) ([]float64, error) {
	if err := checkRows(x, -1); err != nil {
		return nil, err
	}
	f, err := Prepare(metric, opts, x)
	if err != nil {
		return nil, err
	}

	n := len(x)
	out := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, f(x[i], x[j]))
		}
	}
	return out, nil
}

// Cdist computes the distance from every row of xa to every row of xb.
// The result has len(xa) rows of len(xb) values.
func Cdist(xa, xb [][]float64, metric string, opts Options) ([][]float64, error) {
	if err := checkRows(xa, -1); err != nil {
		return nil, err
	}
	dim := -1
	if len(xa) > 0 {
		dim = len(xa[0])
	}
	if err := checkRows(xb, dim); err != nil {
		return nil, err
	}
	f, err := Prepare(metric, opts, xa, xb)
	if err != nil {
		return nil, err
	}

	out := make([][]float64, len(xa))
	backing := make([]float64, len(xa)*len(xb))
	for i, u := range xa {
		row := backing[i*len(xb) : (i+1)*len(xb)]
		for j, v := range xb {
			row[j] = f(u, v)
		}
		out[i] = row
	}
	return out, nil
}

// checkRows verifies all rows have the same length, or length dim if dim >= 0.
func checkRows(x [][]float64, dim int) error {
	for _, r := range x {
		if dim < 0 {
			dim = len(r)
			continue
		}
		if len(r) != dim {
			return &ErrDimensionMismatch{Expected: dim, Actual: len(r)}
		}
	}
	return nil
}
