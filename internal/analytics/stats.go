package analytics

import (
	"math"
	"sort"
)

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Float returns a pointer sentinel for a defined statistic. A nil *float64
// throughout this package means "not applicable" (empty group, n=1 stddev,
// zero denominator) and is emitted as JSON null / CSV "NA", never as zero.
func Float(v float64) *float64 {
	return &v
}

// Mean returns the arithmetic mean, or nil for an empty slice.
func Mean(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return Float(sum / float64(len(values)))
}

// SampleStdDev returns the sample standard deviation (n-1 divisor), or nil
// when fewer than two observations make it undefined.
func SampleStdDev(values []float64) *float64 {
	n := len(values)
	if n < 2 {
		return nil
	}
	mean := *Mean(values)
	var ss float64
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return Float(math.Sqrt(ss / float64(n-1)))
}

// PopStdDev returns the population standard deviation (n divisor), or nil
// for fewer than two observations.
func PopStdDev(values []float64) *float64 {
	n := len(values)
	if n < 2 {
		return nil
	}
	mean := *Mean(values)
	var ss float64
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return Float(math.Sqrt(ss / float64(n)))
}

// Percentile computes the p-th percentile (0 < p < 100) by linear
// interpolation between order statistics: position (n-1)*p/100 in the sorted
// sample, fractional positions interpolated between neighbors. This matches
// the continuous method used by the reference aggregations, not nearest-rank;
// the two diverge at the boundaries. Undefined (nil) for fewer than two
// observations.
func Percentile(values []float64, p float64) *float64 {
	if len(values) < 2 || p <= 0 || p >= 100 {
		return nil
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	pos := (float64(len(sorted)) - 1) * p / 100
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return Float(sorted[lower])
	}
	frac := pos - float64(lower)
	return Float(sorted[lower] + frac*(sorted[upper]-sorted[lower]))
}

// ratio returns numerator/denominator*100 rounded to 2 decimals, nil when
// the denominator is zero.
func ratio(numerator, denominator int) *float64 {
	if denominator == 0 {
		return nil
	}
	return Float(Round2(float64(numerator) / float64(denominator) * 100))
}
