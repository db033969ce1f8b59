// Package split defines the fundamental bipartition and circular-ordering
// primitives shared by every stage of the phylogenetic outline pipeline:
// Taxon identifiers, the Cycle permutation, the Split bipartition, and the
// Family of circular splits a cycle admits.
//
// A Taxon is a 1-based integer in 1..=n; 0 is reserved as the sentinel used
// throughout the 1-based arrays (Cycle in particular), mirroring the source
// algorithm's own array layout so the index arithmetic in neighbornet and
// splitls needs no translation.
//
// A Split represents a bipartition {part1, part2} of 1..=n as a *big.Int
// membership bitset for part1 (part2 is always the derived complement, so
// part1 ∪ part2 == {1..n} and part1 ∩ part2 == ∅ hold by construction, never
// by validation) plus a non-negative weight.
//
// Errors:
//
//	ErrInvalidTaxonCount  - n is not positive.
//	ErrTaxonOutOfRange    - a taxon identifier falls outside 1..=n.
//	ErrEmptyPart          - a split part would be empty.
//	ErrNotPermutation     - a Cycle is not a permutation of 1..=n.
//	ErrInvalidInterval    - an interval (p, q) is outside its valid range.
package split
