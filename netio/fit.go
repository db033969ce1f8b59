package netio

import (
	"math"

	"github.com/husonlab/splitnet/split"
)

// Fit returns the percentage least-squares fit between the observed distance
// matrix d and a split-induced matrix dHat, 100 meaning a perfect fit.
// Ported from SplitsPy's ls_fit in distances.py; the
// original accumulates its numerator multiplicatively (s_sum2 *=
// math.fabs(...)), which drives the statistic to zero after the first exact
// or near-zero term instead of summing absolute-error contributions. This
// accumulates additively, per the intended Σ|D-D̂| semantics.
func Fit(d, dHat split.Matrix) float64 {
	var dSum2, sSum2 float64
	var i, j int
	for i = 0; i < d.Dim(); i++ {
		for j = 0; j < len(d[i]); j++ {
			dSum2 += d.At(i, j) * d.At(i, j)
			sSum2 += math.Abs(d.At(i, j) - dHat.At(i, j))
		}
	}
	if dSum2 == 0 {
		return 0
	}
	return 100.0 * (1.0 - sSum2/dSum2)
}
