package netio

import (
	"bufio"
	"io"

	"github.com/husonlab/splitnet/split"
)

// WriteSplitsFasta writes the split family as a binary FASTA alignment: one
// record per taxon, one character per split, '1' when the taxon lies in the
// split's part1 and '0' otherwise. Ported from splits_io.py's
// print_splits_fasta.
func WriteSplitsFasta(w io.Writer, labels []string, splits split.Family) error {
	bw := bufio.NewWriter(w)

	var i int
	for i = 0; i < len(labels); i++ {
		if _, err := bw.WriteString(">" + labels[i] + "\n"); err != nil {
			return netioErrorf("WriteSplitsFasta", err)
		}
		var sp *split.Split
		for _, sp = range splits {
			c := byte('0')
			if sp.InPart1(split.Taxon(i + 1)) {
				c = '1'
			}
			if err := bw.WriteByte(c); err != nil {
				return netioErrorf("WriteSplitsFasta", err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return netioErrorf("WriteSplitsFasta", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return netioErrorf("WriteSplitsFasta", err)
	}
	return nil
}
