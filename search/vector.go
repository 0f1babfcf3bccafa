package search

import "math"

// CosineSimilarity returns the cosine of the angle between a and b,
// dot(a,b) / (|a| * |b|), in [-1, 1].
//
// A zero-length vector has no direction; similarity against it is defined
// as 0 rather than dividing by zero. Vectors of different dimensions are
// compared over their common prefix.
func CosineSimilarity(a, b []float32) float32 {
	n := min(len(a), len(b))

	var dot, sumA, sumB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
	}
	for _, v := range a {
		sumA += float64(v) * float64(v)
	}
	for _, v := range b {
		sumB += float64(v) * float64(v)
	}

	if sumA == 0 || sumB == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(sumA) * math.Sqrt(sumB)))
}
