package predict

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// CorrectOverround rescales implied probabilities so they sum to 1.
// Negative or non-finite entries count as zero; a field with no positive
// mass falls back to the uniform distribution.
func CorrectOverround(p []float64) []float64 {
	n := len(p)
	if n == 0 {
		return []float64{}
	}

	clean := make([]float64, n)
	for i, v := range p {
		if v > 0 && !math.IsInf(v, 0) {
			clean[i] = v
		}
	}

	total := floats.Sum(clean)
	if total <= 0 {
		return uniform(n)
	}
	floats.Scale(1.0/total, clean)
	return clean
}

// SmoothFieldSize mixes a uniform prior of weight alpha into the vector and
// renormalises: p_i' = (p_i + alpha/n) / sum(p_j + alpha/n).
func SmoothFieldSize(p []float64, alpha float64) []float64 {
	n := len(p)
	if n == 0 {
		return []float64{}
	}

	smoothed := make([]float64, n)
	prior := alpha / float64(n)
	for i, v := range p {
		if v > 0 && !math.IsInf(v, 0) {
			smoothed[i] = v
		}
		smoothed[i] += prior
	}

	total := floats.Sum(smoothed)
	if total <= 0 || math.IsNaN(total) {
		return uniform(n)
	}
	floats.Scale(1.0/total, smoothed)
	return smoothed
}

// NormalizeField applies overround correction followed by field-size smoothing
func NormalizeField(p []float64, alpha float64) []float64 {
	return SmoothFieldSize(CorrectOverround(p), alpha)
}

func uniform(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1.0 / float64(n)
	}
	return out
}
