package raid

import "math"

// summarize computes the damage statistics over one group's informative
// (non-bomb) values: arithmetic mean, sample standard deviation (n-1
// divisor), min and max. Empty input yields all zeros; stddev is 0 for fewer
// than two values rather than NaN.
func summarize(values []int64) (avg, stddev float64, min, max int64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	var sum int64
	min, max = values[0], values[0]
	for _, v := range values {
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	avg = float64(sum) / float64(len(values))

	if len(values) >= 2 {
		var sq float64
		for _, v := range values {
			d := float64(v) - avg
			sq += d * d
		}
		stddev = math.Sqrt(sq / float64(len(values)-1))
	}

	return avg, stddev, min, max
}
