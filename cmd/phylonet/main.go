// Command phylonet runs the phylogenetic outline pipeline end to end:
// distance matrix in, circular cycle, circular split weights, an optional
// rooting step, and a planar outline layout out. It wires the four core
// packages (split, neighbornet, splitls, outline) to the two external
// writers (netio's Nexus and TGF formats) behind a single urfave/cli
// entry point, logging through fortio.org/log.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fortio.org/log"
	"github.com/urfave/cli"

	"github.com/husonlab/splitnet/distmat"
	"github.com/husonlab/splitnet/neighbornet"
	"github.com/husonlab/splitnet/netio"
	"github.com/husonlab/splitnet/outline"
	"github.com/husonlab/splitnet/split"
	"github.com/husonlab/splitnet/splitls"
)

// Version is the phylonet build version, overridden by the release
// tooling via -ldflags.
var Version = "dev"

// DomainError reports a domain-level failure (a wrong infile argument
// count, an unknown out-group label) detected before the cycle solve runs.
// A non-positive taxon count is reported by distmat.Read as a
// *distmat.FormatError instead.
type DomainError struct {
	Detail string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("phylonet: %s", e.Detail)
}

func main() {
	app := cli.NewApp()
	app.Compiled = time.Now()
	app.Name = "phylonet"
	app.Usage = "compute a phylogenetic outline split network from a distance matrix"
	app.Version = Version
	app.ArgsUsage = "infile"

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "out, o",
			Usage: "Nexus splits output path ('-' for standard output)",
			Value: "-",
		},
		cli.StringFlag{
			Name:  "tgf-out",
			Usage: "TGF outline output path (default: <out> with a .tgf extension, or '-' when <out> is '-')",
		},
		cli.BoolFlag{
			Name:  "no-draw",
			Usage: "skip the outline sweep and TGF output, emitting only the Nexus splits",
		},
		cli.BoolFlag{
			Name:  "rooted",
			Usage: "root the outline by midpoint, or by --outgroup when given",
		},
		cli.BoolFlag{
			Name:  "alt",
			Usage: "use the alternate root-insertion interval direction",
		},
		cli.StringFlag{
			Name:  "outgroup",
			Usage: "comma-separated out-group taxon labels",
		},
		cli.IntFlag{
			Name:  "width",
			Usage: "canvas width in pixels, round-tripped into the TGF output for a downstream renderer",
			Value: 1000,
		},
		cli.IntFlag{
			Name:  "height",
			Usage: "canvas height in pixels, round-tripped into the TGF output for a downstream renderer",
			Value: 1000,
		},
		cli.IntFlag{
			Name:  "margin-left",
			Value: 50,
		},
		cli.IntFlag{
			Name:  "margin-right",
			Value: 50,
		},
		cli.IntFlag{
			Name:  "margin-top",
			Value: 50,
		},
		cli.IntFlag{
			Name:  "margin-bottom",
			Value: 50,
		},
		cli.IntFlag{
			Name:  "font-size",
			Value: 12,
		},
	}

	app.Action = run

	if err := app.Run(os.Args); err != nil {
		log.Errf("%v", err)
		switch err.(type) {
		case *distmat.FormatError:
			os.Exit(1)
		case *DomainError:
			os.Exit(2)
		default:
			os.Exit(1)
		}
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		cli.ShowAppHelp(c)
		return &DomainError{Detail: "exactly one infile argument is required"}
	}
	infile := c.Args().Get(0)

	r, closeIn, err := openInput(infile)
	if err != nil {
		return err
	}
	defer closeIn()

	labels, d, err := distmat.Read(r)
	if err != nil {
		return err
	}
	n := len(labels)
	log.Infof("read %d taxa from %s", n, infile)

	// Out-group labels are resolved up front so an unknown label fails
	// before any solve runs.
	outGrp, err := parseOutGroup(c.String("outgroup"), labels)
	if err != nil {
		return err
	}

	cycle, err := neighbornet.Cycle(labels, d)
	if err != nil {
		return fmt.Errorf("phylonet: neighbor-net cycle: %w", err)
	}
	log.Infof("neighbor-net cycle computed for %d taxa", n)

	splits, err := splitls.Compute(n, d, cycle, 1e-4, true)
	if err != nil {
		return fmt.Errorf("phylonet: split weight estimation: %w", err)
	}
	log.Infof("estimated %d circular splits", len(splits))

	dHat := split.SplitDistance(n, splits)
	fit := netio.Fit(d, dHat)

	// The Nexus splits document always carries the unrooted family; rooting
	// rewrites taxa/cycle/splits for the outline only.
	if err := writeNexus(c.String("out"), labels, splits, cycle, fit); err != nil {
		return err
	}

	if c.Bool("no-draw") {
		return nil
	}

	var sweepOpts []outline.SweepOption
	if c.Bool("rooted") {
		opts := outline.RootOptions{Alt: c.Bool("alt"), UseWeights: true}
		n, labels, splits, cycle, err = outline.Root(n, labels, cycle, splits, outGrp, opts)
		if err != nil {
			return fmt.Errorf("phylonet: rooting: %w", err)
		}
		log.Infof("rooted outline: %d taxa after Root insertion", n)
		sweepOpts = append(sweepOpts, outline.WithRooted())
	}
	graph, _, err := outline.Sweep(labels, cycle, splits, sweepOpts...)
	if err != nil {
		return fmt.Errorf("phylonet: outline sweep: %w", err)
	}
	log.Infof("outline graph: %d nodes, %d edges", graph.NNodes(), graph.NEdges())

	if nodes := graph.Nodes(); len(nodes) > 0 {
		nodes[0].SetInfo(canvasFromFlags(c).String())
	}

	return writeTGF(tgfPath(c), graph)
}

// openInput opens infile for reading, treating "-" as standard input.
// The returned closer is a no-op for standard input.
func openInput(infile string) (io.Reader, func(), error) {
	if infile == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(infile)
	if err != nil {
		return nil, nil, fmt.Errorf("phylonet: opening %s: %w", infile, err)
	}
	return f, func() { f.Close() }, nil
}

// parseOutGroup resolves a comma-separated out-group label list against
// labels, returning the matching 1-based split.Taxon identifiers. An empty
// list is a valid "no out-group" selector (midpoint rooting applies).
func parseOutGroup(raw string, labels []string) ([]split.Taxon, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	byLabel := make(map[string]split.Taxon, len(labels))
	var i int
	for i = 0; i < len(labels); i++ {
		byLabel[labels[i]] = split.Taxon(i + 1)
	}

	names := strings.Split(raw, ",")
	taxa := make([]split.Taxon, 0, len(names))
	var name string
	for _, name = range names {
		name = strings.TrimSpace(name)
		t, ok := byLabel[name]
		if !ok {
			return nil, &DomainError{Detail: fmt.Sprintf("unknown out-group label %q", name)}
		}
		taxa = append(taxa, t)
	}
	return taxa, nil
}

func writeNexus(path string, labels []string, splits split.Family, cycle split.Cycle, fit float64) error {
	if path == "-" {
		return netio.WriteNexus(os.Stdout, labels, splits, cycle, fit)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("phylonet: creating %s: %w", path, err)
	}
	defer f.Close()
	return netio.WriteNexus(f, labels, splits, cycle, fit)
}

func writeTGF(path string, g *outline.Graph) error {
	if path == "-" {
		return netio.WriteTGF(os.Stdout, g)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("phylonet: creating %s: %w", path, err)
	}
	defer f.Close()
	return netio.WriteTGF(f, g)
}

// tgfPath resolves the TGF output path: the explicit --tgf-out flag when
// given, else <out> with its extension swapped for .tgf, or "-" when <out>
// itself is standard output.
func tgfPath(c *cli.Context) string {
	if tgf := c.String("tgf-out"); tgf != "" {
		return tgf
	}
	out := c.String("out")
	if out == "-" {
		return "-"
	}
	return strings.TrimSuffix(out, filepath.Ext(out)) + ".tgf"
}

// canvasMetadata carries the --width/--height/--margin-*/--font-size flags.
// This module draws no raster image itself, but String() formats these
// into the TGF origin node's Info payload
// (outline.Node.Info, emitted by netio.WriteTGF's "{info}" field) so a
// downstream renderer reads its canvas parameters from the same TGF file
// rather than a second side channel, the way graph.py's generic per-node
// info capability is meant to be used.
type canvasMetadata struct {
	Width, Height                                    int
	MarginLeft, MarginRight, MarginTop, MarginBottom int
	FontSize                                         int
}

// String formats m as a comma-separated key=value list, e.g.
// "width=1000,height=1000,marginLeft=50,marginRight=50,marginTop=50,
// marginBottom=50,fontSize=12".
func (m canvasMetadata) String() string {
	return fmt.Sprintf("width=%d,height=%d,marginLeft=%d,marginRight=%d,marginTop=%d,marginBottom=%d,fontSize=%d",
		m.Width, m.Height, m.MarginLeft, m.MarginRight, m.MarginTop, m.MarginBottom, m.FontSize)
}

func canvasFromFlags(c *cli.Context) canvasMetadata {
	return canvasMetadata{
		Width:        c.Int("width"),
		Height:       c.Int("height"),
		MarginLeft:   c.Int("margin-left"),
		MarginRight:  c.Int("margin-right"),
		MarginTop:    c.Int("margin-top"),
		MarginBottom: c.Int("margin-bottom"),
		FontSize:     c.Int("font-size"),
	}
}
