// Package outline lays out a phylogenetic outline (a planar split network
// sweep diagram) from a circular split family: an ordered boundary-event
// walk around the cycle, a sweep that emits nodes/edges whenever the set of
// currently-open splits changes, and optional rooting.
//
// Event and RadixSort order the 2*len(splits) boundary events (one open,
// one close, per split) around the cycle in O(n + len(splits)) via counting
// sort, ported from SplitsPy's event.py.
//
// Sweep walks those events, translating a running (x, y) position by each
// split's weight along its bisecting angle, and records a Graph node for
// every distinct set of currently-open splits encountered, ported from
// SplitsPy's compute in outline_algo.py.
//
// RootMidpoint and RootOutGroup locate a root split interval and weight
// split per outline_algo.py's __root_location_mid_point/__root_location_out_group;
// applyRoot rewrites the taxon set, cycle, and split family to insert a Root
// taxon at that location, per __setup_rooted.
//
// Graph is a small single-owner, single-threaded node/edge structure (see
// DESIGN.md for why it carries no locks).
//
// Errors:
//
//	ErrEmptyLabels     - labels is empty.
//	ErrLabelCountMismatch - len(labels) does not match the cycle's taxon count.
//	ErrEmptyOutGroup   - RootOutGroup called with no out-group taxa.
package outline
