package splitls_test

import (
	"testing"

	"github.com/husonlab/splitnet/split"
	"github.com/husonlab/splitnet/splitls"
	"github.com/stretchr/testify/require"
)

func TestCompute_SingleTaxon(t *testing.T) {
	cycle := split.Cycle{0, 1}
	got, err := splitls.Compute(1, split.Matrix{{0}}, cycle, 1e-5, true)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestCompute_TwoTaxaAboveCutoff(t *testing.T) {
	cycle := split.Cycle{0, 1, 2}
	d := split.Matrix{{0, 3}, {3, 0}}
	got, err := splitls.Compute(2, d, cycle, 1e-5, true)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.InDelta(t, 3.0, got[0].Weight(), 1e-9)
}

func TestCompute_TwoTaxaBelowCutoff(t *testing.T) {
	cycle := split.Cycle{0, 1, 2}
	d := split.Matrix{{0, 0.000001}, {0.000001, 0}}
	got, err := splitls.Compute(2, d, cycle, 1e-5, true)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestCompute_DimensionMismatch(t *testing.T) {
	cycle := split.Cycle{0, 1, 2, 3}
	_, err := splitls.Compute(3, split.Matrix{{0, 1}, {1, 0}}, cycle, 1e-5, true)
	require.ErrorIs(t, err, splitls.ErrDimensionMismatch)
}

func TestCompute_RecoversExactAdditiveSplitsUnconstrained(t *testing.T) {
	n := 5
	cycle := split.Cycle{0, 1, 2, 3, 4, 5}

	// Build a split family over the identity cycle with known positive
	// weights, derive its induced distance matrix, then check Compute
	// recovers the same weights (unconstrained — exact for additive data).
	var want split.Family
	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			sp, err := split.CycSplit(cycle, i+1, j, float64(i+j))
			require.NoError(t, err)
			want = append(want, sp)
		}
	}
	d := split.SplitDistance(n, want)

	got, err := splitls.Compute(n, d, cycle, 1e-5, false)
	require.NoError(t, err)
	require.Len(t, got, len(want))

	gotByWeight := make(map[float64]bool)
	for _, sp := range got {
		gotByWeight[sp.Weight()] = true
	}
	for _, sp := range want {
		require.Truef(t, gotByWeight[sp.Weight()] || sp.Weight() <= 1e-5,
			"expected weight %v to be recovered", sp.Weight())
	}
}

func TestCompute_ConstrainedProducesNonNegativeWeights(t *testing.T) {
	n := 6
	cycle := split.Cycle{0, 1, 2, 3, 4, 5, 6}
	d := split.Matrix{
		{0, 1, 5, 5, 5, 5},
		{1, 0, 5, 5, 5, 5},
		{5, 5, 0, 1, 5, 5},
		{5, 5, 1, 0, 5, 5},
		{5, 5, 5, 5, 0, 1},
		{5, 5, 5, 5, 1, 0},
	}

	got, err := splitls.Compute(n, d, cycle, 1e-5, true)
	require.NoError(t, err)
	for _, sp := range got {
		require.GreaterOrEqual(t, sp.Weight(), 0.0)
	}
}

// TestCompute_ThreeTaxaHalfPerimeter checks the classic three-point formula:
// for n = 3 the three trivial split weights are (d12+d13-d23)/2 and its two
// rotations, and weights at zero fall below the cutoff.
func TestCompute_ThreeTaxaHalfPerimeter(t *testing.T) {
	cycle := split.Cycle{0, 1, 2, 3}
	d := split.Matrix{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
	}

	got, err := splitls.Compute(3, d, cycle, 1e-5, true)
	require.NoError(t, err)

	// (1+2-3)/2 = 0 for taxon 1 (dropped by cutoff), (1+3-2)/2 = 1 for
	// taxon 2, (2+3-1)/2 = 2 for taxon 3.
	require.Len(t, got, 2)
	weightOf := make(map[split.Taxon]float64)
	for _, sp := range got {
		require.True(t, sp.IsTrivial())
		weightOf[sp.PartNotContaining(1)[0]] = sp.Weight()
	}
	require.InDelta(t, 1.0, weightOf[2], 1e-12)
	require.InDelta(t, 2.0, weightOf[3], 1e-12)

	dHat := split.SplitDistance(3, got)
	require.InDelta(t, d[1][2], dHat[1][2], 1e-12)
}

// TestCompute_BalancedStar checks that the all-ones quartet matrix yields
// exactly the four trivial splits at weight 0.5 and no internal splits.
func TestCompute_BalancedStar(t *testing.T) {
	cycle := split.Cycle{0, 1, 2, 3, 4}
	d := split.Matrix{
		{0, 1, 1, 1},
		{1, 0, 1, 1},
		{1, 1, 0, 1},
		{1, 1, 1, 0},
	}

	got, err := splitls.Compute(4, d, cycle, 1e-4, true)
	require.NoError(t, err)

	require.Len(t, got, 4)
	for _, sp := range got {
		require.True(t, sp.IsTrivial())
		require.InDelta(t, 0.5, sp.Weight(), 1e-12)
	}
}
