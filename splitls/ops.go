package splitls

// ApplyA applies the implicit circular-split incidence operator A to b (a
// length n(n-1)/2 vector indexed by split (p, q)), returning Ab (indexed by
// position pair (i, j)). Ported from nnet_splits.py's __calculate_AB.
//
// Complexity: O(n^2) time (n(n-1)/2 output coordinates), O(1) extra space
// beyond the output.
func ApplyA(n int, b []float64) []float64 {
	d := make([]float64, len(b))
	calculateAB(n, b, d)
	return d
}

// ApplyAT applies the transpose operator Aᵀ to d (indexed by position pair
// (i, j)), returning Aᵀd (indexed by split (p, q)). Ported from
// nnet_splits.py's __calculate_Atx.
func ApplyAT(n int, d []float64) []float64 {
	r := make([]float64, len(d))
	calculateAtx(n, d, r)
	return r
}

// calculateAB computes d = A*b in place into the caller-provided buffer d.
func calculateAB(n int, b, d []float64) {
	dIndex := 0
	var i, k int
	for i = 0; i < n-1; i++ {
		dIJ := 0.0
		index := i - 1
		for k = 0; k < i; k++ {
			dIJ += b[index]
			index += n - k - 2
		}
		index++
		for k = i + 1; k < n; k++ {
			dIJ += b[index]
			index++
		}

		d[dIndex] = dIJ
		dIndex += (n - i - 2) + 1
	}

	index := 1
	for i = 0; i < n-2; i++ {
		d[index] = d[index-1] + d[index+(n-i-2)] - 2*b[index-1]
		index += 1 + (n - i - 2)
	}

	var kk int
	for kk = 3; kk < n; kk++ {
		index = kk - 1
		for i = 0; i < n-kk; i++ {
			d[index] = d[index-1] + d[index+(n-i-2)] - d[index+(n-i-2)-1] - 2.0*b[index-1]
			index += 1 + (n - i - 2)
		}
	}
}

// calculateAtx computes r = Aᵀ*d in place into the caller-provided buffer r.
func calculateAtx(n int, d, r []float64) {
	index := 0
	var i int
	for i = 0; i < n-1; i++ {
		r[index] = rowSum(n, d, i+1)
		index += n - i - 1
	}

	index = 1
	for i = 0; i < n-2; i++ {
		r[index] = r[index-1] + r[index+(n-i-2)] - 2*d[index+(n-i-2)]
		index += (n - i - 2) + 1
	}

	var k int
	for k = 3; k < n; k++ {
		index = k - 1
		for i = 0; i < n-k; i++ {
			r[index] = r[index-1] + r[index+n-i-2] - r[index+n-i-3] - 2.0*d[index+n-i-2]
			index += (n - i - 2) + 1
		}
	}
}

// rowSum sums d over every position pair touching cycle position k+1 (the
// row-space analogue of a split's "all pairs separated" count). Ported from
// nnet_splits.py's __row_sum.
func rowSum(n int, d []float64, k int) float64 {
	r := 0.0
	index := 0

	if k > 0 {
		index = k - 1
		var i int
		for i = 0; i < k; i++ {
			r += d[index]
			index += n - i - 2
		}
		index++
	}

	var j int
	for j = k + 1; j < n; j++ {
		r += d[index]
		index++
	}

	return r
}
