package charts

import (
	"math"
)

// Resample evaluates the piecewise-linear interpolant of values at m
// query positions evenly spaced across the full input domain, rounding
// each result to the nearest integer (half away from zero). The first
// and last input samples are always preserved, so variable-length
// sequences normalize onto a fixed-width sparkline without losing the
// endpoints.
//
// m may be smaller, equal or greater than len(values). An empty input
// or m <= 0 yields an empty output, a single-sample input yields m
// copies of that sample.
func Resample(values []float64, m int) []int {
	if len(values) == 0 || m <= 0 {
		return []int{}
	}

	n := len(values)
	out := make([]int, m)

	if n == 1 || m == 1 {
		for i := range out {
			out[i] = int(math.Round(values[0]))
		}
		return out
	}

	step := float64(n-1) / float64(m-1)
	for i := 0; i < m; i++ {
		pos := float64(i) * step

		lo := int(math.Floor(pos))
		if lo >= n-1 {
			out[i] = int(math.Round(values[n-1]))
			continue
		}

		frac := pos - float64(lo)
		out[i] = int(math.Round(values[lo] + (values[lo+1]-values[lo])*frac))
	}

	return out
}
