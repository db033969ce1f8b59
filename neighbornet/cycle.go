package neighbornet

import "github.com/husonlab/splitnet/split"

const headID = 0

// Cycle computes the Neighbor-Net circular ordering of the taxa in labels
// from the distance matrix d, returning a canonical split.Cycle (see
// split.Canonicalize). Ported from
// SplitsPy's compute in nnet_cycle.py.
//
// Complexity: O(n^3) time, O(n^2) space.
func Cycle(labels []string, d split.Matrix) (split.Cycle, error) {
	n := len(labels)
	if n != d.Dim() {
		return nil, nnErrorf("Cycle", ErrDimensionMismatch)
	}
	if n <= 0 {
		return nil, nnErrorf("Cycle", ErrInvalidTaxonCount)
	}

	if n <= 3 {
		c := make(split.Cycle, n+1)
		var i int
		for i = 0; i <= n; i++ {
			c[i] = split.Taxon(i)
		}
		return c, nil
	}

	maxNodes := 3*n - 5
	if maxNodes < 3 {
		maxNodes = 3
	}

	pool := newNodePool(maxNodes)
	setupNodes(pool, n)
	mat := setupMatrix(n, maxNodes, d)

	joins := joinNodes(pool, mat, n)
	rawCycle := expandNodes(pool, joins, n)
	normalized := normalizeCycle(rawCycle)

	out := make(split.Cycle, len(normalized))
	var i int
	for i = range normalized {
		out[i] = split.Taxon(normalized[i])
	}
	return split.Canonicalize(out), nil
}

// setupNodes allocates n taxon nodes and links them 1 -> 2 -> ... -> n off
// the pool's head sentinel.
func setupNodes(pool *nodePool, n int) {
	prev := headID
	var i int
	for i = 1; i <= n; i++ {
		id := pool.new()
		pool.at(prev).next = id
		pool.at(id).prev = prev
		prev = id
	}
	pool.at(prev).next = none
}

// setupMatrix copies the 0-based n x n distance matrix d into the 1-based
// top-left block of a fresh work matrix sized for maxNodes taxa/clusters.
func setupMatrix(n, maxNodes int, d split.Matrix) *workMatrix {
	mat := newWorkMatrix(maxNodes)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			mat.set(i+1, j+1, d.At(i, j))
		}
	}
	return mat
}

// joinNodes runs the agglomeration loop until three active nodes remain,
// returning the stack (in push order) of composite nodes created, each
// paired with its partner via nbr.
func joinNodes(pool *nodePool, mat *workMatrix, n int) []int {
	numActive := n
	numClusters := n

	var joins []int

	for numActive > 3 {
		if numActive == 4 && numClusters == 2 {
			p := pool.at(headID).next
			pn := pool.at(p)
			var q int
			if pn.next != pn.nbr {
				q = pn.next
			} else {
				q = pool.at(pn.next).next
			}
			qn := pool.at(q)
			if mat.at(p, q)+mat.at(pn.nbr, qn.nbr) < mat.at(p, qn.nbr)+mat.at(pn.nbr, q) {
				u := join3way(pool, mat, p, q, qn.nbr)
				joins = append(joins, u)
			} else {
				u := join3way(pool, mat, p, qn.nbr, q)
				joins = append(joins, u)
			}
			break
		}

		resetSx(pool)
		accumulateSx(pool, mat)

		cx, cy, haveBest := selectClusterPair(pool, mat, numClusters)
		x, y := refineAndSelectJoinPair(pool, mat, cx, cy, numClusters, haveBest)

		xn := pool.at(x)
		yn := pool.at(y)
		xNbr, yNbr := xn.nbr, yn.nbr

		switch {
		case xNbr == none && yNbr == none:
			join2way(pool, x, y)
			numClusters--
		case xNbr == none:
			u := join3way(pool, mat, x, y, yNbr)
			joins = append(joins, u)
			numActive--
			numClusters--
		case yNbr == none || numActive == 4:
			u := join3way(pool, mat, y, x, xNbr)
			joins = append(joins, u)
			numActive--
			numClusters--
		default:
			u1 := join3way(pool, mat, xNbr, x, y)
			joins = append(joins, u1)
			u1Nbr := pool.at(u1).nbr
			u2 := join3way(pool, mat, u1, u1Nbr, yNbr)
			joins = append(joins, u2)
			numActive -= 2
			numClusters--
		}
	}

	return joins
}

// resetSx zeroes every active node's S-sum accumulator.
func resetSx(pool *nodePool) {
	p := pool.at(headID).next
	for p != none {
		pn := pool.at(p)
		pn.Sx = 0.0
		p = pn.next
	}
}

// accumulateSx computes, for every active node p, the S-sum of
// cluster-averaged distances to every other active cluster.
func accumulateSx(pool *nodePool, mat *workMatrix) {
	p := pool.at(headID).next
	for p != none {
		pn := pool.at(p)
		if pn.nbr == none || pool.at(pn.nbr).id > pn.id {
			q := pn.next
			for q != none {
				qn := pool.at(q)
				qNbrQualifies := qn.nbr == none || (pool.at(qn.nbr).id > qn.id && qn.nbr != p)
				if qNbrQualifies {
					dpq := clusterAveragedDistance(mat, pn, qn, p, q)
					pn.Sx += dpq
					if pn.nbr != none {
						pool.at(pn.nbr).Sx += dpq
					}
					qn.Sx += dpq
					if qn.nbr != none {
						pool.at(qn.nbr).Sx += dpq
					}
				}
				q = qn.next
			}
		}
		p = pn.next
	}
}

// clusterAveragedDistance computes d(p,q) averaged over the members of
// each size-2 cluster.
func clusterAveragedDistance(mat *workMatrix, pn, qn *netNode, p, q int) float64 {
	switch {
	case pn.nbr == none && qn.nbr == none:
		return mat.at(p, q)
	case pn.nbr != none && qn.nbr == none:
		return (mat.at(p, q) + mat.at(pn.nbr, q)) / 2.0
	case pn.nbr == none && qn.nbr != none:
		return (mat.at(p, q) + mat.at(p, qn.nbr)) / 2.0
	default:
		return (mat.at(p, q) + mat.at(p, qn.nbr) + mat.at(pn.nbr, q) + mat.at(pn.nbr, qn.nbr)) / 4.0
	}
}

// selectClusterPair scans unordered pairs of clusters and returns the pair
// minimizing the Q-criterion. Ties keep the first pair discovered.
func selectClusterPair(pool *nodePool, mat *workMatrix, numClusters int) (cx, cy int, haveBest bool) {
	best := 0.0
	p := pool.at(headID).next
	for p != none {
		pn := pool.at(p)
		if pn.nbr != none && pool.at(pn.nbr).id < pn.id {
			p = pn.next
			continue
		}
		q := pool.at(headID).next
		for q != none {
			if q == p {
				break
			}
			qn := pool.at(q)
			if qn.nbr != none && pool.at(qn.nbr).id < qn.id {
				q = qn.next
				continue
			}
			if qn.nbr == p {
				q = qn.next
				continue
			}
			dpq := clusterAveragedDistance(mat, pn, qn, p, q)
			qpq := (float64(numClusters)-2.0)*dpq - pn.Sx - qn.Sx
			if (!haveBest || qpq < best) && pn.nbr != q {
				cx, cy = p, q
				best = qpq
				haveBest = true
			}
			q = qn.next
		}
		p = pn.next
	}
	return cx, cy, haveBest
}

// refineAndSelectJoinPair performs the Rx node-refinement over the
// selected clusters' constituents and returns the pair (x, y) actually
// joined.
func refineAndSelectJoinPair(pool *nodePool, mat *workMatrix, cx, cy, numClusters int, haveBest bool) (x, y int) {
	if !haveBest {
		panic("neighbornet: no cluster pair found with more than three active nodes")
	}

	cxn := pool.at(cx)
	cyn := pool.at(cy)

	if cxn.nbr != none || cyn.nbr != none {
		cxn.Rx = computeRx(pool, mat, cx, cx, cy)
		if cxn.nbr != none {
			pool.at(cxn.nbr).Rx = computeRx(pool, mat, cxn.nbr, cx, cy)
		}
		cyn.Rx = computeRx(pool, mat, cy, cx, cy)
		if cyn.nbr != none {
			pool.at(cyn.nbr).Rx = computeRx(pool, mat, cyn.nbr, cx, cy)
		}
	}

	m := numClusters
	if cxn.nbr != none {
		m++
	}
	if cyn.nbr != none {
		m++
	}

	x, y = cx, cy
	best := (float64(m)-2.0)*mat.at(cx, cy) - cxn.Rx - cyn.Rx

	if cxn.nbr != none {
		qpq := (float64(m)-2.0)*mat.at(cxn.nbr, cy) - pool.at(cxn.nbr).Rx - cyn.Rx
		if qpq < best {
			x, y = cxn.nbr, cy
			best = qpq
		}
	}
	if cyn.nbr != none {
		qpq := (float64(m)-2.0)*mat.at(cx, cyn.nbr) - cxn.Rx - pool.at(cyn.nbr).Rx
		if qpq < best {
			x, y = cx, cyn.nbr
			best = qpq
		}
	}
	if cxn.nbr != none && cyn.nbr != none {
		qpq := (float64(m)-2.0)*mat.at(cxn.nbr, cyn.nbr) - pool.at(cxn.nbr).Rx - pool.at(cyn.nbr).Rx
		if qpq < best {
			x, y = cxn.nbr, cyn.nbr
		}
	}

	return x, y
}

// computeRx sums distances from z to every active cluster, halving the
// contribution of clusters unrelated to the candidate join (cx, cy).
func computeRx(pool *nodePool, mat *workMatrix, z, cx, cy int) float64 {
	cxNbr := pool.at(cx).nbr
	cyNbr := pool.at(cy).nbr

	var rx float64
	p := pool.at(headID).next
	for p != none {
		pn := pool.at(p)
		if p == cx || p == cxNbr || p == cy || p == cyNbr || pn.nbr == none {
			rx += mat.at(z, p)
		} else {
			rx += mat.at(z, p) / 2.0
		}
		p = pn.next
	}
	return rx
}

// join2way pairs two unpaired active nodes into a size-2 cluster.
func join2way(pool *nodePool, x, y int) {
	pool.at(x).nbr = y
	pool.at(y).nbr = x
}

// join3way replaces (x, y, z) in the active list with a fresh paired (u, v),
// splicing u in place of x, v in place of z, and removing y. Returns u; v
// is reachable via u.nbr.
func join3way(pool *nodePool, mat *workMatrix, x, y, z int) int {
	u := pool.new()
	v := pool.new()

	un := pool.at(u)
	vn := pool.at(v)
	xn := pool.at(x)
	yn := pool.at(y)
	zn := pool.at(z)

	un.ch1, un.ch2 = x, y
	vn.ch1, vn.ch2 = y, z

	// A prev of none is the list head itself, so prev links are always
	// followed; a next of none marks the end of the list.
	un.next = xn.next
	un.prev = xn.prev
	if un.next != none {
		pool.at(un.next).prev = u
	}
	pool.at(un.prev).next = u

	vn.next = zn.next
	vn.prev = zn.prev
	if vn.next != none {
		pool.at(vn.next).prev = v
	}
	pool.at(vn.prev).next = v

	if yn.next != none {
		pool.at(yn.next).prev = yn.prev
	}
	pool.at(yn.prev).next = yn.next

	un.nbr = v
	vn.nbr = u

	p := pool.at(headID).next
	for p != none {
		pn := pool.at(p)
		newU := (2.0/3.0)*mat.at(x, pn.id) + mat.at(y, pn.id)/3.0
		newV := (2.0/3.0)*mat.at(z, pn.id) + mat.at(y, pn.id)/3.0
		mat.set(u, pn.id, newU)
		mat.set(pn.id, u, newU)
		mat.set(v, pn.id, newV)
		mat.set(pn.id, v, newV)
		p = pn.next
	}
	mat.set(u, u, 0.0)
	mat.set(v, v, 0.0)

	return u
}

// expandNodes drains the joins stack in reverse (LIFO) order, splicing each
// composite pair's children back into the cyclic list, then walks the
// resulting ring starting from taxon 1 to produce the 1-based cycle.
func expandNodes(pool *nodePool, joins []int, n int) []int {
	x := pool.at(headID).next
	y := pool.at(x).next
	z := pool.at(y).next
	pool.at(z).next = x
	pool.at(x).prev = z

	var i int
	for i = len(joins) - 1; i >= 0; i-- {
		u := joins[i]
		un := pool.at(u)
		v := un.nbr
		vn := pool.at(v)
		xx := un.ch1
		yy := un.ch2
		zz := vn.ch2

		if v != un.next {
			u, v = v, u
			xx, zz = zz, xx
			un = pool.at(u)
			vn = pool.at(v)
		}

		prevOfU := un.prev
		pool.at(xx).prev = prevOfU
		pool.at(prevOfU).next = xx
		pool.at(xx).next = yy
		pool.at(yy).prev = xx
		pool.at(yy).next = zz
		pool.at(zz).prev = yy
		nextOfV := vn.next
		pool.at(zz).next = nextOfV
		pool.at(nextOfV).prev = zz
	}

	for pool.at(x).id != 1 {
		x = pool.at(x).next
	}

	cycle := make([]int, 1, n+1)
	cycle[0] = 0
	a := x
	for {
		cycle = append(cycle, pool.at(a).id)
		a = pool.at(a).next
		if a == x {
			break
		}
	}
	return cycle
}

// normalizeCycle rotates cycle so that taxon 1 occupies position 1 and
// orients it so that the smaller of taxon 1's two cyclic neighbors occupies
// position 2: the direction is kept when the old predecessor is larger than
// the old successor, and reversed otherwise. Ported from SplitsPy's
// __normalize_cycle; Cycle applies split.Canonicalize to the result as well.
func normalizeCycle(cycle []int) []int {
	posOf1 := 1
	var i int
	for i = 1; i < len(cycle); i++ {
		if cycle[i] == 1 {
			posOf1 = i
			break
		}
	}

	last := len(cycle) - 1
	var posPrev, posNext int
	if posOf1 == 1 {
		posPrev = last
	} else {
		posPrev = posOf1 - 1
	}
	if posOf1 == last {
		posNext = 1
	} else {
		posNext = posOf1 + 1
	}

	result := make([]int, 1, len(cycle))
	result[0] = 0

	if cycle[posPrev] > cycle[posNext] {
		if posOf1 == 1 {
			return cycle
		}
		i = posOf1
		for len(result) < len(cycle) {
			result = append(result, cycle[i])
			if i < last {
				i++
			} else {
				i = 1
			}
		}
		return result
	}

	i = posOf1
	for len(result) < len(cycle) {
		result = append(result, cycle[i])
		if i > 1 {
			i--
		} else {
			i = last
		}
	}
	return result
}
