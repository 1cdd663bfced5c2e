package distance

import "math"

func euclideanDistance(x, y []float64) float64 {
	var sum float64
	for i := range x {
		diff := x[i] - y[i]
		sum += diff * diff
	}
	return math.Sqrt(sum)
}

func manhattanDistance(x, y []float64) float64 {
	var sum float64
	for i := range x {
		sum += math.Abs(x[i] - y[i])
	}
	return sum
}

func canberraDistance(x, y []float64) float64 {
	var sum float64
	for i := range x {
		num := math.Abs(x[i] - y[i])
		den := math.Abs(x[i]) + math.Abs(y[i])
		// A 0/0 coordinate pair contributes nothing instead of NaN.
		if den == 0 {
			continue
		}
		sum += num / den
	}
	return sum
}

// earthMoversDistance is the 1D earth mover's distance between two sequences
// treated as weight distributions over matching positions. It is the total
// absolute discrepancy between the running cumulative sums.
func earthMoversDistance(x, y []float64) float64 {
	var sum, carry float64
	for i := range x {
		carry += x[i] - y[i]
		sum += math.Abs(carry)
	}
	return sum
}
