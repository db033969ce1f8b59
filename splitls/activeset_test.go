package splitls_test

import (
	"testing"

	"github.com/husonlab/splitnet/splitls"
	"github.com/stretchr/testify/require"
)

func TestActiveSetSolve_NonNegative(t *testing.T) {
	// A distance matrix (flattened row space) chosen so the unconstrained
	// solution goes negative on at least one coordinate, forcing the
	// active-set loop to engage.
	n := 6
	// Flattened row-space distances d[index] for (i,j), 1<=i<j<=n, in
	// lexicographic order; chosen so some unconstrained split weights go
	// negative, forcing the active-set loop to engage.
	d := []float64{
		2, 9, 9, 9, 9,
		9, 9, 9, 9,
		2, 9, 9,
		9, 9,
		2,
	}
	require.Len(t, d, n*(n-1)/2)

	x := make([]float64, len(d))
	splitls.ActiveSetSolve(n, d, x)

	for k, v := range x {
		require.GreaterOrEqualf(t, v, -1e-9, "index %d went negative: %v", k, v)
	}
}

func TestActiveSetSolve_AgreesWithUnconstrainedWhenAlreadyNonNegative(t *testing.T) {
	n := 5
	nPairs := n * (n - 1) / 2

	wantX := make([]float64, nPairs)
	for i := range wantX {
		wantX[i] = float64(i + 1)
	}
	d := splitls.ApplyA(n, wantX)

	unconstrained := make([]float64, nPairs)
	splitls.UnconstrainedLeastSquares(n, d, unconstrained)

	constrained := make([]float64, nPairs)
	splitls.ActiveSetSolve(n, d, constrained)

	for k := range wantX {
		require.InDeltaf(t, unconstrained[k], constrained[k], 1e-6, "index %d", k)
	}
}
