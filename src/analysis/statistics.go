package analysis

import "math"

// -----------------------------------------------------------------------------

// CalculateMeanStd computes mean and standard deviation.
func CalculateMeanStd(data []float64) (float64, float64) {
	if len(data) == 0 {
		return 0, 0
	}

	sum := 0.0
	for _, v := range data {
		sum += v
	}
	mean := sum / float64(len(data))

	// For single element, return std = 0
	if len(data) == 1 {
		return mean, 0
	}

	// Population standard deviation (N denominator)
	varianceSum := 0.0
	for _, v := range data {
		varianceSum += (v - mean) * (v - mean)
	}
	std := math.Sqrt(varianceSum / float64(len(data)))
	return mean, std
}

// -----------------------------------------------------------------------------

// CalculateMinMax returns the smallest and largest values in data.
func CalculateMinMax(data []float64) (float64, float64) {
	if len(data) == 0 {
		return 0, 0
	}

	min, max := data[0], data[0]
	for _, v := range data[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// -----------------------------------------------------------------------------

// CalculatePercentChange returns the relative change from the first to the
// last element.
func CalculatePercentChange(data []float64) float64 {
	if len(data) < 2 || data[0] == 0 {
		return 0
	}

	result := (data[len(data)-1] - data[0]) / data[0]

	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0
	}
	return result
}
