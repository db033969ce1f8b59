package netio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/husonlab/splitnet/outline"
	"github.com/husonlab/splitnet/split"
)

// WriteNexus writes a #nexus TAXA + SPLITS block for splits arranged around
// cycle. Pass fit < 0 to omit the PROPERTIES fit= field (no fit computed).
// Ported from splits_io.py's print_splits_nexus.
func WriteNexus(w io.Writer, labels []string, splits split.Family, cycle split.Cycle, fit float64) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "#nexus")

	fmt.Fprintln(bw, "BEGIN taxa;")
	fmt.Fprintf(bw, "DIMENSIONS nTax=%d;\n", len(labels))
	fmt.Fprintln(bw, "TAXLABELS")
	var label string
	for _, label = range labels {
		fmt.Fprintf(bw, "'%s'\n", label)
	}
	fmt.Fprintln(bw, ";")
	fmt.Fprintln(bw, "END;")

	fmt.Fprintln(bw, "BEGIN SPLITS;")
	fmt.Fprintf(bw, "DIMENSIONS nTax=%d nSplits=%d;\n", len(labels), len(splits))
	fmt.Fprintln(bw, "FORMAT labels=no weights=yes confidences=no;")
	fmt.Fprint(bw, "PROPERTIES ")
	if fit >= 0 {
		fmt.Fprintf(bw, "fit=%g ", fit)
	}
	if split.Compatible(splits) {
		fmt.Fprint(bw, "compatible,\n")
	} else {
		fmt.Fprint(bw, "cyclic,\n")
	}
	fmt.Fprint(bw, "CYCLE")
	var i int
	for i = 1; i <= cycle.N(); i++ {
		fmt.Fprintf(bw, " %d", cycle[i])
	}
	fmt.Fprintln(bw, ";")
	fmt.Fprintln(bw, "MATRIX")
	var sp *split.Split
	for _, sp = range splits {
		fmt.Fprintf(bw, "%.8f\t", sp.Weight())
		part1 := sp.Part1()
		first := true
		var t split.Taxon
		for _, t = range part1 {
			if !first {
				fmt.Fprint(bw, " ")
			}
			first = false
			fmt.Fprintf(bw, "%d", t)
		}
		fmt.Fprintln(bw, ",")
	}
	fmt.Fprintln(bw, ";")
	fmt.Fprintln(bw, "END;")

	if err := bw.Flush(); err != nil {
		return netioErrorf("WriteNexus", err)
	}
	return nil
}

// WriteTGF writes g in Trivial Graph Format: one line per node (id, label,
// position, optional info), a "#" separator, then one line per edge (src,
// tar, weight, optional info). Ported from graph.py's write_tgf, plus the
// "#" node/edge separator the canonical TGF format requires (graph.py
// itself omits it, relying on the node/edge object types to tell the two
// sections apart — not an option for a flat text stream read back by a
// third party, so this is a deliberate addition, not a literal port).
func WriteTGF(w io.Writer, g *outline.Graph) error {
	bw := bufio.NewWriter(w)

	var v *outline.Node
	for _, v = range g.Nodes() {
		fmt.Fprintf(bw, "%d", v.ID)
		if v.Label != "" {
			fmt.Fprintf(bw, " %s", v.Label)
		}
		fmt.Fprintf(bw, " [%.6f,%.6f]", v.Pos[0], v.Pos[1])
		if v.Info != "" {
			fmt.Fprintf(bw, " {%s}", v.Info)
		}
		fmt.Fprintln(bw)
	}

	fmt.Fprintln(bw, "#")

	var e *outline.Edge
	for _, e = range g.Edges() {
		fmt.Fprintf(bw, "%d %d [%.6f]", e.Src, e.Tar, e.Weight)
		if e.Info != "" {
			fmt.Fprintf(bw, " {%s}", e.Info)
		}
		fmt.Fprintln(bw)
	}

	if err := bw.Flush(); err != nil {
		return netioErrorf("WriteTGF", err)
	}
	return nil
}
