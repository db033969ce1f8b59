// Package netio writes the output formats of the phylogenetic outline
// pipeline: Nexus SPLITS blocks (WriteNexus, ported from SplitsPy's
// print_splits_nexus in splits_io.py) and Trivial Graph Format outline
// diagrams (WriteTGF, ported from graph.py's write_tgf). WriteSplitsFasta
// additionally renders the family as a binary FASTA alignment
// (print_splits_fasta), one '0'/'1' column per split.
//
// Fit computes the percentage least-squares fit between an observed
// distance matrix and a split-induced one, using the additive Σ|D−D̂|
// accumulation — SplitsPy's ls_fit in distances.py multiplies into its
// accumulator (s_sum2 *=) instead of summing, which collapses the fit
// statistic to zero after the first non-matching distance; see DESIGN.md
// for the full Design Note.
package netio
