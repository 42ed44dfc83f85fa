// Package floats holds small numeric helpers shared by the algo-masspec
// packages.
package floats

import (
	"math"
	"sort"
)

// NextPow2 returns the smallest power of two >= n.
func NextPow2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

// Median returns the median of values. The input is not modified.
// An empty input yields 0.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// MAD returns the median absolute deviation of values around their median.
// The input is not modified. An empty input yields 0.
func MAD(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	med := Median(values)
	dev := make([]float64, n)
	for i, v := range values {
		dev[i] = math.Abs(v - med)
	}
	return Median(dev)
}
