// Package split_test exercises Family-level operations: CycSplit, Compatible,
// SplitDistance, and the PairIndex/IndexPair bijection.
package split_test

import (
	"testing"

	"github.com/husonlab/splitnet/split"
	"github.com/stretchr/testify/require"
)

func TestCycSplit(t *testing.T) {
	cycle := split.Cycle{0, 1, 2, 3, 4, 5}

	s, err := split.CycSplit(cycle, 2, 3, 0.75)
	require.NoError(t, err)
	require.Equal(t, []split.Taxon{2, 3}, s.PartNotContaining(1))
	require.Equal(t, 0.75, s.Weight())

	_, err = split.CycSplit(cycle, 1, 5, 1.0)
	require.ErrorIs(t, err, split.ErrEmptyPart)

	_, err = split.CycSplit(cycle, 0, 3, 1.0)
	require.ErrorIs(t, err, split.ErrInvalidInterval)
}

// TestCompatible_FullCircularFamilyIsNotCompatible checks that the family
// of all six circular splits on a 4-cycle is reported as not compatible:
// it contains {2,3}|{1,4} and {3,4}|{1,2}, whose four part-intersections
// are all non-empty.
func TestCompatible_FullCircularFamilyIsNotCompatible(t *testing.T) {
	cycle := split.Cycle{0, 1, 2, 3, 4}

	var fam split.Family
	for p := 2; p <= 4; p++ {
		for q := p; q <= 4; q++ {
			s, err := split.CycSplit(cycle, p, q, 1.0)
			require.NoError(t, err)
			fam = append(fam, s)
		}
	}

	require.False(t, split.Compatible(fam))
}

func TestCompatible_CrossingSplitsAreIncompatible(t *testing.T) {
	// {1,2} vs {3,4} and {2,3} vs {1,4} cross on a 4-cycle.
	a, err := split.NewSplit([]split.Taxon{1, 2}, 4, 1.0)
	require.NoError(t, err)
	b, err := split.NewSplit([]split.Taxon{2, 3}, 4, 1.0)
	require.NoError(t, err)

	require.False(t, split.Compatible(split.Family{a, b}))
}

func TestSplitDistance_MatchesWeightedSeparation(t *testing.T) {
	a, err := split.NewSplit([]split.Taxon{1}, 3, 1.0)
	require.NoError(t, err)
	b, err := split.NewSplit([]split.Taxon{2}, 3, 2.0)
	require.NoError(t, err)

	d := split.SplitDistance(3, split.Family{a, b})

	// taxon 1 vs 2: separated by both a and b -> 1.0+2.0 = 3.0
	require.Equal(t, 3.0, d[0][1])
	// taxon 1 vs 3: separated only by a -> 1.0
	require.Equal(t, 1.0, d[0][2])
	// taxon 2 vs 3: separated only by b -> 2.0
	require.Equal(t, 2.0, d[1][2])
	// diagonal is always zero
	require.Equal(t, 0.0, d[0][0])
}

func TestPairIndex_IsBijectiveWithIndexPair(t *testing.T) {
	const n = 6
	idx := 0
	for p := 2; p <= n; p++ {
		for q := p; q <= n; q++ {
			require.Equal(t, idx, split.PairIndex(p, q, n))
			gotP, gotQ := split.IndexPair(idx, n)
			require.Equal(t, p, gotP)
			require.Equal(t, q, gotQ)
			idx++
		}
	}
	require.Equal(t, n*(n-1)/2, idx)
}
