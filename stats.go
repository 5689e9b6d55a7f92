package promptpath

import (
	"math"
	"slices"
)

// Samples is an ordered sequence of timing measurements in fractional
// milliseconds, retained in the order they were taken.
type Samples []float64

// Min returns the smallest sample, or 0 for an empty set.
func (s Samples) Min() float64 {
	if len(s) == 0 {
		return 0
	}
	return slices.Min(s)
}

// Max returns the largest sample, or 0 for an empty set.
func (s Samples) Max() float64 {
	if len(s) == 0 {
		return 0
	}
	return slices.Max(s)
}

// Mean returns the arithmetic mean, or 0 for an empty set.
func (s Samples) Mean() float64 {
	if len(s) == 0 {
		return 0
	}
	var sum float64
	for _, v := range s {
		sum += v
	}
	return sum / float64(len(s))
}

// Median returns the middle sample, averaging the two middle samples
// for even-sized sets. Returns 0 for an empty set.
func (s Samples) Median() float64 {
	if len(s) == 0 {
		return 0
	}
	sorted := slices.Clone(s)
	slices.Sort(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// StdDev returns the sample standard deviation using the unbiased n-1
// divisor. Fewer than two samples have no defined dispersion; StdDev
// returns 0 for those rather than dividing by zero.
func (s Samples) StdDev() float64 {
	if len(s) < 2 {
		return 0
	}
	mean := s.Mean()
	var sum float64
	for _, v := range s {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(s)-1))
}
