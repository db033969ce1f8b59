// Package netio_test exercises Nexus/TGF output and the percentage fit
// statistic.
package netio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/husonlab/splitnet/netio"
	"github.com/husonlab/splitnet/outline"
	"github.com/husonlab/splitnet/split"
	"github.com/stretchr/testify/require"
)

func buildQuartetFamily(t *testing.T) (split.Cycle, split.Family) {
	t.Helper()
	cycle := split.Cycle{0, 1, 2, 3, 4}
	var splits split.Family
	for p := 2; p <= 4; p++ {
		for q := p; q <= 4; q++ {
			sp, err := split.CycSplit(cycle, p, q, 1.0)
			require.NoError(t, err)
			splits = append(splits, sp)
		}
	}
	return cycle, splits
}

func TestWriteNexus_ProducesTaxaAndSplitsBlocks(t *testing.T) {
	cycle, splits := buildQuartetFamily(t)
	labels := []string{"A", "B", "C", "D"}

	var buf bytes.Buffer
	err := netio.WriteNexus(&buf, labels, splits, cycle, 97.5)
	require.NoError(t, err)

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "#nexus\n"))
	require.Contains(t, out, "BEGIN taxa;")
	require.Contains(t, out, "DIMENSIONS nTax=4;")
	require.Contains(t, out, "'A'")
	require.Contains(t, out, "BEGIN SPLITS;")
	require.Contains(t, out, "DIMENSIONS nTax=4 nSplits=6;")
	require.Contains(t, out, "FORMAT labels=no weights=yes confidences=no;")
	require.Contains(t, out, "fit=97.5")
	require.Contains(t, out, "CYCLE 1 2 3 4;")
	require.Contains(t, out, "MATRIX")
}

func TestWriteNexus_OmitsFitWhenNegative(t *testing.T) {
	cycle, splits := buildQuartetFamily(t)
	labels := []string{"A", "B", "C", "D"}

	var buf bytes.Buffer
	err := netio.WriteNexus(&buf, labels, splits, cycle, -1.0)
	require.NoError(t, err)
	require.NotContains(t, buf.String(), "fit=")
}

func TestWriteTGF_WritesNodesSeparatorAndEdges(t *testing.T) {
	g := outline.NewGraph()
	a := g.NewNode([2]float64{0, 0})
	a.Label = "A"
	b := g.NewNode([2]float64{1, 1})
	b.Label = "B"
	g.NewEdge(a, b, 2.5, 0)

	var buf bytes.Buffer
	err := netio.WriteTGF(&buf, g)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	require.Contains(t, lines[0], "A")
	require.Contains(t, lines[1], "B")
	require.Equal(t, "#", lines[2])
	require.Contains(t, lines[3], "1 2")
	require.Contains(t, lines[3], "2.500000")
}

func TestWriteTGF_EmitsInfoWhenSet(t *testing.T) {
	g := outline.NewGraph()
	a := g.NewNode([2]float64{0, 0})
	a.SetInfo("width=1000,height=1000")
	b := g.NewNode([2]float64{1, 1})
	e := g.NewEdge(a, b, 2.5, 0)
	e.SetInfo("note")

	var buf bytes.Buffer
	err := netio.WriteTGF(&buf, g)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Contains(t, lines[0], "{width=1000,height=1000}")
	require.Contains(t, lines[len(lines)-1], "{note}")
}

func TestFit_PerfectMatchGivesHundred(t *testing.T) {
	d := split.Matrix{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}}
	got := netio.Fit(d, d)
	require.InDelta(t, 100.0, got, 1e-9)
}

func TestFit_AccumulatesAdditivelyAcrossMismatches(t *testing.T) {
	d := split.Matrix{{0, 2, 2}, {2, 0, 2}, {2, 2, 0}}
	dHat := split.Matrix{{0, 1, 2}, {1, 0, 2}, {2, 2, 0}}

	got := netio.Fit(d, dHat)
	require.Less(t, got, 100.0)
	require.Greater(t, got, 0.0)
}

func TestFit_ZeroMatrixDoesNotDivideByZero(t *testing.T) {
	d := split.Matrix{{0, 0}, {0, 0}}
	require.NotPanics(t, func() {
		got := netio.Fit(d, d)
		require.Equal(t, 0.0, got)
	})
}

func TestWriteSplitsFasta_OneRecordPerTaxonOneColumnPerSplit(t *testing.T) {
	cycle, splits := buildQuartetFamily(t)
	_ = cycle
	labels := []string{"A", "B", "C", "D"}

	var buf bytes.Buffer
	err := netio.WriteSplitsFasta(&buf, labels, splits)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2*len(labels))
	require.Equal(t, ">A", lines[0])
	require.Len(t, lines[1], len(splits))
	for i := 1; i < len(lines); i += 2 {
		for _, c := range lines[i] {
			require.Contains(t, "01", string(c))
		}
	}
}

// TestFit_UnchangedByZeroWeightSplits checks that padding a family with
// zero-weight trivial splits leaves the reported fit untouched: zero-weight
// splits contribute nothing to the induced distances.
func TestFit_UnchangedByZeroWeightSplits(t *testing.T) {
	cycle, splits := buildQuartetFamily(t)
	d := split.SplitDistance(4, splits)

	padded := make(split.Family, len(splits), len(splits)+4)
	copy(padded, splits)
	for i := 1; i <= 4; i++ {
		sp, err := split.CycSplit(cycle, i, i, 0)
		if err == nil {
			padded = append(padded, sp)
		}
	}
	require.Greater(t, len(padded), len(splits))

	base := netio.Fit(d, split.SplitDistance(4, splits))
	got := netio.Fit(d, split.SplitDistance(4, padded))
	require.Equal(t, base, got)
}
