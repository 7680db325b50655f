// Package dsm computes dissimilarity matrices (DSMs) and converts between
// their square and condensed encodings.
//
// A condensed DSM over n items is the strict upper triangle of the n x n
// distance matrix read row-major, of length n(n-1)/2:
//
//	    0  1  2  3
//	0   .  a  b  c
//	1      .  d  e      ->  [a b c d e f]
//	2         .  f
//	3            .
//
// Compute builds a DSM directly from an item array. ComputeCV builds a
// cross-validated DSM from a fold tensor, comparing the leave-one-fold-out
// mean of every item against the held-out fold and averaging over folds.
package dsm
