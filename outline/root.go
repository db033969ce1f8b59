package outline

import (
	"sort"

	"github.com/husonlab/splitnet/split"
)

// RootOptions configures the two rooting strategies.
type RootOptions struct {
	// Alt selects the alternate interval-walk direction used when locating
	// the midpoint split (outline_algo.py's __interval alt=True branch).
	Alt bool
	// UseWeights controls whether split weights (true) or a uniform 1.0
	// drives the root-weight split.
	UseWeights bool
}

// rootPlan describes where and how to insert the root taxon, produced by
// RootMidpoint or RootOutGroup and consumed by applyRoot.
type rootPlan struct {
	splitIdx int
	w1, w2   float64
}

// RootMidpoint locates the root split by the midpoint method: find the taxa
// pair (a, b) realizing the maximum split-induced distance, then among the
// splits separating a and b, walk them in order of increasing overlap with
// the (a, b) arc and smaller-side size, accumulating weight until half the
// maximum distance is crossed. Ported from outline_algo.py's
// __root_location_mid_point.
func RootMidpoint(nTax int, cycle split.Cycle, splits split.Family, opts RootOptions) (*rootPlan, error) {
	dist := split.SplitDistance(nTax, splits)

	maxDist := 0.0
	a, b := 0, 0
	var i, j int
	for i = 1; i <= nTax; i++ {
		for j = i + 1; j <= nTax; j++ {
			d := dist[i-1][j-1]
			if d > maxDist {
				maxDist = d
				a, b = i, j
			}
		}
	}
	if a == 0 {
		a, b = 1, 2
	}

	arc := intervalTaxa(a, b, cycle, opts.Alt)

	type triple struct {
		overlap, sideLen, idx int
	}
	var triples []triple
	var s int
	var sp *split.Split
	for s, sp = range splits {
		if !sp.Separates(split.Taxon(a), split.Taxon(b)) {
			continue
		}
		p := sp.PartContaining(split.Taxon(a))
		overlap := 0
		var t split.Taxon
		for _, t = range p {
			if arc[int(t)] {
				overlap++
			}
		}
		triples = append(triples, triple{overlap: overlap, sideLen: sp.Size(), idx: s})
	}
	sort.Slice(triples, func(x, y int) bool {
		if triples[x].overlap != triples[y].overlap {
			return triples[x].overlap < triples[y].overlap
		}
		if triples[x].sideLen != triples[y].sideLen {
			return triples[x].sideLen < triples[y].sideLen
		}
		return triples[x].idx < triples[y].idx
	})

	total := 0.0
	for _, trp := range triples {
		sp = splits[trp.idx]
		wgt := 1.0
		if opts.UseWeights {
			wgt = sp.Weight()
		}
		delta := total + wgt - 0.5*maxDist
		if delta > 0 {
			return &rootPlan{splitIdx: trp.idx, w1: delta, w2: wgt - delta}, nil
		}
		total += wgt
	}

	w0 := 1.0
	if len(splits) > 0 && opts.UseWeights {
		w0 = splits[0].Weight()
	}
	return &rootPlan{splitIdx: 0, w1: 0.0, w2: w0}, nil
}

// intervalTaxa returns the set of taxa encountered walking the cycle from a
// to b (inclusive of both endpoints), in the direction opts.Alt selects:
// forward (increasing cycle position, wrapping) when alt is false, backward
// when alt is true. Ported, with a correctness fix, from outline_algo.py's
// __interval: the Python source only ever records the starting taxon a
// (interval.add(a) is called on every qualifying iteration instead of
// interval.add(cycle[i])), which collapses the "overlap with arc" signal
// RootMidpoint's sort key relies on to a constant. That key only makes
// sense when arc(a,b) is the full interval of taxa walked, so we add
// cycle[i] each step here.
func intervalTaxa(a, b int, cycle split.Cycle, alt bool) map[int]bool {
	out := make(map[int]bool)
	n := cycle.N()
	if n == 0 {
		return out
	}

	entered := false
	if alt {
		i := n
		for {
			if int(cycle[i]) == a {
				out[a] = true
				entered = true
			} else if entered {
				out[int(cycle[i])] = true
			}
			if entered && int(cycle[i]) == b {
				break
			}
			if i == 1 {
				i = n
			} else {
				i--
			}
		}
	} else {
		i := 1
		for {
			if int(cycle[i]) == a {
				out[a] = true
				entered = true
			} else if entered {
				out[int(cycle[i])] = true
			}
			if entered && int(cycle[i]) == b {
				break
			}
			if i >= n {
				i = 1
			} else {
				i++
			}
		}
	}
	return out
}

// RootOutGroup locates the root split as the smallest split whose
// "contains the out-group taxon" side is a superset of outGrp and is
// minimal among such splits (no other qualifying split's side is a proper
// subset of it). Ported from outline_algo.py's __root_location_out_group.
func RootOutGroup(splits split.Family, outGrp []split.Taxon, useWeights bool) (*rootPlan, error) {
	if len(outGrp) == 0 {
		return nil, outlineErrorf("RootOutGroup", ErrEmptyOutGroup)
	}

	outSet := make(map[split.Taxon]bool, len(outGrp))
	var t split.Taxon
	for _, t = range outGrp {
		outSet[t] = true
	}
	outTaxon := outGrp[0]
	for _, t = range outGrp {
		if t < outTaxon {
			outTaxon = t
		}
	}

	isSubset := func(small, big map[split.Taxon]bool) bool {
		for k := range small {
			if !big[k] {
				return false
			}
		}
		return true
	}
	toSet := func(ts []split.Taxon) map[split.Taxon]bool {
		m := make(map[split.Taxon]bool, len(ts))
		var x split.Taxon
		for _, x = range ts {
			m[x] = true
		}
		return m
	}

	var candidates []int
	var p int
	var sp *split.Split
	for p, sp = range splits {
		pa := toSet(sp.PartContaining(outTaxon))
		if !isSubset(outSet, pa) {
			continue
		}
		ok := true
		var toDelete []int
		var q int
		for _, q = range candidates {
			qa := toSet(splits[q].PartContaining(outTaxon))
			if isSubset(qa, pa) {
				ok = false
				break
			} else if isSubset(pa, qa) {
				toDelete = append(toDelete, q)
			}
		}
		if !ok {
			continue
		}
		if len(toDelete) > 0 {
			del := make(map[int]bool, len(toDelete))
			var d int
			for _, d = range toDelete {
				del[d] = true
			}
			kept := candidates[:0:0]
			for _, q = range candidates {
				if !del[q] {
					kept = append(kept, q)
				}
			}
			candidates = kept
		}
		candidates = append(candidates, p)
	}

	if len(candidates) > 0 {
		s := candidates[0]
		var idx int
		for _, idx = range candidates {
			if idx < s {
				s = idx
			}
		}
		return &rootPlan{splitIdx: s, w1: 0.9 * splits[s].Weight(), w2: 0.1 * splits[s].Weight()}, nil
	}

	w0 := 1.0
	if len(splits) > 0 && useWeights {
		w0 = splits[0].Weight()
	}
	return &rootPlan{splitIdx: 0, w1: 0.0, w2: w0}, nil
}

// applyRoot inserts a "Root" taxon at plan's split interval, returning the
// rooted taxon count, labels, splits, and cycle. Ported from
// outline_algo.py's __setup_rooted and rotate.
func applyRoot(alt bool, labels0 []string, splits0 split.Family, cycle0 split.Cycle, plan *rootPlan) (int, []string, split.Family, split.Cycle, error) {
	labels := append(append([]string(nil), labels0...), "Root")
	nTax := len(labels)
	rootID := split.Taxon(nTax)

	n0 := cycle0.N()
	partSet := make(map[split.Taxon]bool)
	part := splits0[plan.splitIdx].PartNotContaining(1)
	var t split.Taxon
	for _, t = range part {
		partSet[t] = true
	}

	cycle := make(split.Cycle, n0+2)
	first := split.Taxon(0)

	if !alt {
		tIdx := 1
		var v split.Taxon
		for _, v = range cycle0[1:] {
			if first == 0 && partSet[v] {
				first = v
				cycle[tIdx] = rootID
				tIdx++
			}
			cycle[tIdx] = v
			tIdx++
		}
	} else {
		seen := 0
		tIdx := 1
		var v split.Taxon
		for _, v = range cycle0[1:] {
			cycle[tIdx] = v
			tIdx++
			if partSet[v] {
				seen++
				if seen == len(part) {
					first = v
					cycle[tIdx] = rootID
					tIdx++
				}
			}
		}
	}

	cycle = rotateCycle(cycle, rootID)

	mid := splits0[plan.splitIdx]
	mid1 := mid.ExpandWithTaxon(mid.InPart1(1))
	mid1.SetWeight(plan.w1)

	mid2 := mid.ExpandWithTaxon(!mid.InPart1(1))
	mid2.SetWeight(plan.w2)

	mid1NotRootSet := make(map[split.Taxon]bool)
	var m split.Taxon
	for _, m = range mid1.PartNotContaining(rootID) {
		mid1NotRootSet[m] = true
	}

	isSubsetOfNotRoot := func(taxa []split.Taxon) bool {
		var x split.Taxon
		for _, x = range taxa {
			if !mid1NotRootSet[x] {
				return false
			}
		}
		return true
	}

	splits := make(split.Family, 0, len(splits0)+1)
	totalWgt := 0.0
	var s int
	var sp *split.Split
	for s, sp = range splits0 {
		if s == plan.splitIdx {
			totalWgt += mid1.Weight()
			splits = append(splits, mid1)
			continue
		}
		var clone *split.Split
		if isSubsetOfNotRoot(sp.Part1()) {
			clone = sp.ExpandWithTaxon(false)
		} else if isSubsetOfNotRoot(sp.Part2()) {
			clone = sp.ExpandWithTaxon(true)
		} else if len(sp.PartContaining(first)) > 1 {
			clone = sp.ExpandWithTaxon(sp.InPart1(first))
		} else {
			clone = sp.ExpandWithTaxon(!sp.InPart1(first))
		}
		splits = append(splits, clone)
		totalWgt += clone.Weight()
	}

	totalWgt += mid2.Weight()
	splits = append(splits, mid2)

	avgWgt := 1.0
	if totalWgt > 0 {
		avgWgt = totalWgt / float64(len(splits))
	}
	closing, err := split.CycSplit(cycle, 2, nTax, avgWgt)
	if err != nil {
		return 0, nil, nil, nil, outlineErrorf("applyRoot", err)
	}
	splits = append(splits, closing)

	return nTax, labels, splits, cycle, nil
}

// Root rewrites labels, splits, and cycle to insert a synthetic root taxon,
// using the out-group method when outGrp is non-empty, else the midpoint
// method. It is the single entry point cmd/phylonet calls before Sweep when
// --rooted is set.
func Root(nTax int, labels []string, cycle split.Cycle, splits split.Family, outGrp []split.Taxon, opts RootOptions) (int, []string, split.Family, split.Cycle, error) {
	var plan *rootPlan
	var err error
	if len(outGrp) > 0 {
		plan, err = RootOutGroup(splits, outGrp, opts.UseWeights)
	} else {
		plan, err = RootMidpoint(nTax, cycle, splits, opts)
	}
	if err != nil {
		return 0, nil, nil, nil, outlineErrorf("Root", err)
	}
	return applyRoot(opts.Alt, labels, splits, cycle, plan)
}

// rotateCycle rotates cycle so that taxon first occupies position 1,
// preserving cyclic order. Ported from outline_algo.py's rotate.
func rotateCycle(cycle split.Cycle, first split.Taxon) split.Cycle {
	n := cycle.N()
	result := make(split.Cycle, 1, n+1)
	result[0] = 0
	var i int
	for i = 1; i <= n; i++ {
		if cycle[i] == first {
			for len(result) < n+1 {
				result = append(result, cycle[i])
				i++
				if i == n+1 {
					i = 1
				}
			}
			break
		}
	}
	return result
}
