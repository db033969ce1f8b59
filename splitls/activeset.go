package splitls

import "math"

// cgEpsilon bounds the conjugate-gradient convergence tolerance.
const cgEpsilon = 0.0001

// ActiveSetSolve solves the non-negativity-constrained least-squares
// problem min ||Ax - d||^2 s.t. x >= 0 via the active-set outer loop with
// conjugate-gradient inner solves, writing the result
// into the caller-provided buffer x (length n(n-1)/2). Ported from
// nnet_splits.py's __active_conjugate.
func ActiveSetSolve(n int, d, x []float64) {
	UnconstrainedLeastSquares(n, d, x)

	allNonNegative := true
	var v float64
	for _, v = range x {
		if v < 0 {
			allNonNegative = false
			break
		}
	}
	if allNonNegative {
		return
	}

	nPairs := len(d)
	active := make([]bool, nPairs)

	w := make([]float64, nPairs)
	y := make([]float64, nPairs)
	var k int
	for k = 0; k < nPairs; k++ {
		w[k] = 1.0
		y[k] = w[k] * d[k]
	}

	atWD := make([]float64, nPairs)
	calculateAtx(n, y, atWD)

	oldX := make([]float64, nPairs)
	for k = 0; k < nPairs; k++ {
		oldX[k] = 1.0
	}

	// cg is the preallocated scratch space shared by every conjugate-gradient
	// call below; the conjugate-gradient iterations themselves allocate
	// nothing (worstIndices still builds its result slices on each call).
	cg := newCGScratch(nPairs)

	firstPass := true

	for {
		for {
			if firstPass {
				firstPass = false
			} else {
				circularConjugateGrads(n, nPairs, w, atWD, active, x, cg)
			}

			toContract := worstIndices(x, 0.6)
			if len(toContract) > 0 {
				var idx int
				for _, idx = range toContract {
					x[idx] = 0.0
					active[idx] = true
				}
				circularConjugateGrads(n, nPairs, w, atWD, active, x, cg)
			}

			minI := -1
			minXi := -1.0
			var i int
			for i = 0; i < nPairs; i++ {
				if x[i] < 0.0 {
					xi := oldX[i] / (oldX[i] - x[i])
					if minI == -1 || xi < minXi {
						minI = i
						minXi = xi
					}
				}
			}
			if minI == -1 {
				break
			}
			for i = 0; i < nPairs; i++ {
				if !active[i] {
					oldX[i] += minXi * (x[i] - oldX[i])
				}
			}
			active[minI] = true
			x[minI] = 0.0
		}

		calculateAB(n, x, cg.y)
		var i int
		for i = 0; i < nPairs; i++ {
			cg.y[i] *= w[i]
		}
		calculateAtx(n, cg.y, cg.r)

		minI := -1
		minGrad := 1.0
		for i = 0; i < nPairs; i++ {
			cg.r[i] -= atWD[i]
			cg.r[i] *= 2.0
			if active[i] {
				if minI == -1 || cg.r[i] < minGrad {
					minI = i
					minGrad = cg.r[i]
				}
			}
		}

		if minI == -1 || minGrad > -0.0001 {
			break
		}
		active[minI] = false
	}
}

// worstIndices returns the indices of the worst (most negative) fraction of
// x's negative entries. propKept is accepted for interface parity with the
// source but, matching nnet_splits.py's __worst_indices, is hardcoded to
// 0.1 whenever it is not exactly 0 — see DESIGN.md.
func worstIndices(x []float64, propKept float64) []int {
	if propKept == 0.0 {
		return nil
	}
	propKept = 0.1

	var xCopy []float64
	var v float64
	for _, v = range x {
		if v < 0 {
			xCopy = append(xCopy, v)
		}
	}
	nNeg := len(xCopy)
	if nNeg == 0 {
		return nil
	}

	sortFloat64s(xCopy)

	nKept := int(math.Ceil(propKept * float64(nNeg)))
	cutoff := xCopy[nKept-1]

	front := 0
	back := nKept - 1
	worst := make([]int, nKept)

	var i int
	for i = 0; i < len(x); i++ {
		if x[i] < cutoff {
			worst[front] = i
			front++
		} else if x[i] == cutoff {
			if back >= front {
				worst[back] = i
				back--
			}
		}
	}

	return worst
}

// sortFloat64s sorts xs ascending in place (insertion sort: xCopy is always
// small, bounded by the count of currently-negative coordinates).
func sortFloat64s(xs []float64) {
	var i, j int
	for i = 1; i < len(xs); i++ {
		key := xs[i]
		j = i - 1
		for j >= 0 && xs[j] > key {
			xs[j+1] = xs[j]
			j--
		}
		xs[j+1] = key
	}
}

// cgScratch holds the preallocated vectors conjugate gradients reuses across
// both outer-loop calls and inner iterations, so the conjugate-gradient
// iterations allocate nothing.
type cgScratch struct {
	r, y, p, u []float64
}

func newCGScratch(nPairs int) *cgScratch {
	return &cgScratch{
		r: make([]float64, nPairs),
		y: make([]float64, nPairs),
		p: make([]float64, nPairs),
		u: make([]float64, nPairs),
	}
}

// circularConjugateGrads runs conjugate gradients on the reduced system
// AᵀWA|active^c x = b|active^c, with active coordinates clamped to zero,
// writing the solution into x. Ported from nnet_splits.py's
// __circular_conjugate_grads.
func circularConjugateGrads(n, nPairs int, w, b []float64, active []bool, x []float64, cg *cgScratch) {
	kMax := n * (n - 1) / 2

	calculateAB(n, x, cg.y)
	var k int
	for k = 0; k < nPairs; k++ {
		cg.y[k] = w[k] * cg.y[k]
	}
	calculateAtx(n, cg.y, cg.r)

	for k = 0; k < nPairs; k++ {
		if !active[k] {
			cg.r[k] = b[k] - cg.r[k]
		} else {
			cg.r[k] = 0.0
		}
	}

	rho := norm(cg.r)
	rhoOld := 0.0

	e0 := cgEpsilon * math.Sqrt(norm(b))

	iter := 0
	for rho > e0*e0 && iter < kMax {
		iter++
		if iter == 1 {
			copy(cg.p, cg.r)
		} else {
			beta := rho / rhoOld
			var i int
			for i = 0; i < nPairs; i++ {
				cg.p[i] = cg.r[i] + beta*cg.p[i]
			}
		}

		calculateAB(n, cg.p, cg.y)
		var i int
		for i = 0; i < nPairs; i++ {
			cg.y[i] *= w[i]
		}
		calculateAtx(n, cg.y, cg.u)

		for i = 0; i < nPairs; i++ {
			if active[i] {
				cg.u[i] = 0.0
			}
		}

		alpha := 0.0
		for i = 0; i < nPairs; i++ {
			alpha += cg.p[i] * cg.u[i]
		}
		alpha = rho / alpha

		for i = 0; i < nPairs; i++ {
			x[i] += alpha * cg.p[i]
			cg.r[i] -= alpha * cg.u[i]
		}

		rhoOld = rho
		rho = norm(cg.r)
	}
}

// norm returns the squared L2 norm of x.
func norm(x []float64) float64 {
	var n float64
	var v float64
	for _, v = range x {
		n += v * v
	}
	return n
}
