package splitls

import "github.com/husonlab/splitnet/split"

// Compute estimates non-negative circular split weights for the given
// distance matrix and cycle. When constrained is true it solves the
// non-negativity-constrained least-squares problem; when false it uses
// the closed-form unconstrained solution directly, which may yield negative
// weights. Splits whose estimated weight does not exceed cutoff are
// dropped. Ported from nnet_splits.py's compute.
func Compute(n int, d split.Matrix, cycle split.Cycle, cutoff float64, constrained bool) (split.Family, error) {
	if n <= 0 {
		return nil, lsErrorf("Compute", ErrInvalidTaxonCount)
	}
	if d.Dim() != n {
		return nil, lsErrorf("Compute", ErrDimensionMismatch)
	}
	if err := cycle.Validate(n); err != nil {
		return nil, lsErrorf("Compute", err)
	}

	if n == 1 {
		return split.Family{}, nil
	}
	if n == 2 {
		dist := d.At(int(cycle[1])-1, int(cycle[2])-1)
		if dist <= cutoff {
			return split.Family{}, nil
		}
		sp, err := split.CycSplit(cycle, 2, 2, dist)
		if err != nil {
			return nil, lsErrorf("Compute", err)
		}
		return split.Family{sp}, nil
	}

	dVec := setupD(n, d, cycle)
	x := make([]float64, len(dVec))

	if !constrained {
		UnconstrainedLeastSquares(n, dVec, x)
	} else {
		ActiveSetSolve(n, dVec, x)
	}

	splits := make(split.Family, 0, len(x))
	index := 0
	var i, j int
	for i = 1; i <= n; i++ {
		for j = i + 1; j <= n; j++ {
			if x[index] > cutoff {
				sp, err := split.CycSplit(cycle, i+1, j, x[index])
				if err != nil {
					return nil, lsErrorf("Compute", err)
				}
				splits = append(splits, sp)
			}
			index++
		}
	}

	return splits, nil
}

// setupD flattens the taxon-space distance matrix into cycle-position-pair
// row space, d[index] = dist(cycle[i], cycle[j]) for 1 <= i < j <= n in
// lexicographic order. Ported from nnet_splits.py's __setup_d.
func setupD(n int, mat split.Matrix, cycle split.Cycle) []float64 {
	d := make([]float64, n*(n-1)/2)
	index := 0
	var i, j int
	for i = 1; i <= n; i++ {
		for j = i + 1; j <= n; j++ {
			d[index] = mat.At(int(cycle[i])-1, int(cycle[j])-1)
			index++
		}
	}
	return d
}
