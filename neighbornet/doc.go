// Package neighbornet computes the Neighbor-Net circular ordering of a set
// of taxa from an all-pairs distance matrix (Bryant & Moulton 2004; Huson &
// Bryant 2006).
//
// The algorithm maintains a doubly linked active list of agglomeration
// nodes, repeatedly selecting and joining the pair of clusters minimizing a
// Q-criterion derived from cluster-averaged distances, until three active
// nodes remain; it then expands the sequence of joins back into a full
// cyclic ordering of the original n taxa.
//
// Ported from SplitsPy's nnet_cycle.py and
// nnet_node.py. The node pool uses stable integer indices rather than
// pointers (DESIGN.md's stable-index convention), so the pool's backing
// array is preallocated once to its documented maximum size,
// max(3, 3n-5)+1, and never reallocated mid-computation — pointers handed
// out by nodePool.at remain valid for the lifetime of one Cycle call.
//
// Errors:
//
//	ErrDimensionMismatch - len(labels) does not match the distance matrix's dimension.
//	ErrInvalidTaxonCount - n is not positive.
package neighbornet
