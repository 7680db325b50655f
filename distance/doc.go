// Package distance provides the pairwise distance primitives used to build DSMs.
//
// Metrics are registered by name in a function table. Each entry validates its
// own option schema and returns a prepared Func, so callers can pass an
// open-ended option map without the core knowing every metric's parameters.
//
// # Supported Metrics
//
//   - braycurtis, canberra, chebyshev
//   - cityblock, euclidean, sqeuclidean, minkowski (weights "w", order "p")
//   - correlation, cosine (require at least two features)
//   - hamming (weights "w"), jensenshannon ("base")
//   - seuclidean ("V", defaults to the per-feature sample variance)
//   - mahalanobis ("VI", inverse covariance, required)
//
// # Usage
//
//	d, err := distance.Pdist(rows, "correlation", nil)          // condensed
//	m, err := distance.Cdist(train, test, "minkowski", distance.Options{"p": 3})
//
// Custom metrics can be added with Register.
package distance
