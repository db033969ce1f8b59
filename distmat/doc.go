// Package distmat reads and writes the phylogenetic distance matrix text
// format: a first line giving the taxon count n, followed by n lines each
// holding a label and n whitespace-separated distances. Ported from
// SplitsPy's read/write in distances.py.
//
// Errors:
//
//	*FormatError - malformed input, reported with the offending line number.
package distmat
