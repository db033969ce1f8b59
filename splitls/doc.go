// Package splitls estimates non-negative circular split weights from a
// distance matrix and a cycle, by solving a constrained least-squares
// problem against the implicit circular-split incidence matrix A, without
// ever materializing A or AᵀA.
//
// The row space is pairs of cycle positions (i, j), 1 <= i < j <= n,
// flattened lexicographically; the column space is circular splits
// (p, q), 2 <= p <= q <= n. ApplyA/ApplyAT implement the two O(N)
// recurrences that replace the dense n(n-1)/2 x n(n-1)/2 matrix-vector
// product with a linear pass, exploiting the fact that adjacent circular
// splits differ by exactly one boundary taxon.
//
// Ported line-for-line in arithmetic from
// SplitsPy's nnet_splits.py. Compute ties the pieces
// together: it flattens a distance matrix into row space via a cycle,
// solves for non-negative circular split weights (ActiveSetSolve, or
// UnconstrainedLeastSquares when unconstrained), and emits the resulting
// split.Family, dropping any split whose weight does not exceed cutoff.
//
// Errors:
//
//	ErrInvalidTaxonCount - n is not positive.
//	ErrDimensionMismatch - the distance matrix dimension does not match n.
package splitls
