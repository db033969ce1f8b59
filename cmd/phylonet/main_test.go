package main

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"

	"github.com/husonlab/splitnet/neighbornet"
	"github.com/husonlab/splitnet/netio"
	"github.com/husonlab/splitnet/split"
	"github.com/husonlab/splitnet/splitls"
)

// newTestApp builds a *cli.Context carrying the out/tgf-out flags parsed
// from args, mirroring the Flags slice main wires onto app.Flags.
func newTestApp(t *testing.T, args ...string) *cli.Context {
	t.Helper()
	app := cli.NewApp()
	flags := []cli.Flag{
		cli.StringFlag{Name: "out, o", Value: "-"},
		cli.StringFlag{Name: "tgf-out"},
	}
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	var f cli.Flag
	for _, f = range flags {
		f.Apply(set)
	}
	require.NoError(t, set.Parse(args))
	return cli.NewContext(app, set, nil)
}

func TestParseOutGroup_Empty(t *testing.T) {
	taxa, err := parseOutGroup("  ", []string{"A", "B", "C"})
	require.NoError(t, err)
	assert.Nil(t, taxa)
}

func TestParseOutGroup_ResolvesLabels(t *testing.T) {
	taxa, err := parseOutGroup("B, C", []string{"A", "B", "C"})
	require.NoError(t, err)
	require.Len(t, taxa, 2)
	assert.EqualValues(t, 2, taxa[0])
	assert.EqualValues(t, 3, taxa[1])
}

func TestParseOutGroup_UnknownLabel(t *testing.T) {
	_, err := parseOutGroup("Z", []string{"A", "B"})
	require.Error(t, err)
	var domErr *DomainError
	require.ErrorAs(t, err, &domErr)
}

func TestTGFPath_DerivesFromOutExtension(t *testing.T) {
	app := newTestApp(t, "--out", "result.nex")
	assert.Equal(t, "result.tgf", tgfPath(app))
}

func TestTGFPath_ExplicitFlagWins(t *testing.T) {
	app := newTestApp(t, "--out", "result.nex", "--tgf-out", "other.tgf")
	assert.Equal(t, "other.tgf", tgfPath(app))
}

func TestTGFPath_StdoutOut(t *testing.T) {
	app := newTestApp(t, "--out", "-")
	assert.Equal(t, "-", tgfPath(app))
}

func TestCanvasMetadata_StringFormatsAllFields(t *testing.T) {
	m := canvasMetadata{
		Width: 800, Height: 600,
		MarginLeft: 10, MarginRight: 20, MarginTop: 30, MarginBottom: 40,
		FontSize: 14,
	}
	assert.Equal(t,
		"width=800,height=600,marginLeft=10,marginRight=20,marginTop=30,marginBottom=40,fontSize=14",
		m.String())
}

// TestPipeline_Honeybees runs the full cycle -> weights -> fit pipeline on
// the six-species honeybee matrix from the original documentation. The two
// nearly identical taxa (A.andrenof and A.florea, distance 0.004431) must
// end up adjacent on the cycle, and the circular splits must explain almost
// all of the distance signal.
func TestPipeline_Honeybees(t *testing.T) {
	labels := []string{"A.andrenof", "A.mellifer", "A.dorsata", "A.cerana", "A.florea", "A.koschev"}
	d := split.Matrix{
		{0, 0.090103, 0.103397, 0.096012, 0.004431, 0.075332},
		{0.090103, 0, 0.093058, 0.090103, 0.093058, 0.100443},
		{0.103397, 0.093058, 0, 0.116691, 0.106352, 0.103397},
		{0.096012, 0.090103, 0.116691, 0, 0.098966, 0.09896},
		{0.004431, 0.093058, 0.106352, 0.098966, 0, 0.078287},
		{0.075332, 0.100443, 0.103397, 0.098966, 0.078287, 0},
	}

	cycle, err := neighbornet.Cycle(labels, d)
	require.NoError(t, err)
	require.NoError(t, cycle.Validate(6))
	require.True(t, cycle.IsCanonical())

	// Taxon 1 holds position 1; taxon 5 must be one of its two neighbors.
	require.True(t, cycle[2] == split.Taxon(5) || cycle[6] == split.Taxon(5),
		"taxa 1 and 5 not adjacent in cycle %v", cycle)

	splits, err := splitls.Compute(6, d, cycle, 1e-4, true)
	require.NoError(t, err)
	require.NotEmpty(t, splits)
	for _, sp := range splits {
		require.GreaterOrEqual(t, sp.Weight(), 0.0)
	}

	fit := netio.Fit(d, split.SplitDistance(6, splits))
	require.GreaterOrEqual(t, fit, 99.0)
}
