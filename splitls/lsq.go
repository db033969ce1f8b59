package splitls

// UnconstrainedLeastSquares computes the exact closed-form unconstrained
// minimizer of ||Ax - d||^2 in O(N), writing into the caller-provided
// buffer x (length n(n-1)/2). Ported from nnet_splits.py's
// __unconstrained_least_squares.
func UnconstrainedLeastSquares(n int, d, x []float64) {
	index := 0
	var i, j int
	for i = 0; i <= n-3; i++ {
		x[index] = (d[index] + d[index+(n-i-2)+1] - d[index+1]) / 2.0
		index++
		for j = i + 2; j <= n-2; j++ {
			x[index] = (d[index] + d[index+(n-i-2)+1] - d[index+1] - d[index+(n-i-2)]) / 2.0
			index++
		}
		if i == 0 {
			x[index] = (d[0] + d[n-2] - d[2*n-4]) / 2.0
		} else {
			x[index] = (d[index] + d[i] - d[i-1] - d[index+(n-i-2)]) / 2.0
		}
		index++
	}
	x[index] = (d[index] + d[n-2] - d[n-3]) / 2.0
}
