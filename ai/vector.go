package ai

import "math"

// ConformVector normalizes a vector to the fixed system dimensionality.
// Short vectors are padded with zeros, long vectors are truncated, and
// NaN/Inf components are scrubbed to zero. This normalization is applied
// wherever embeddings cross a service boundary so the index schema stays
// stable regardless of what the embedding service returns.
func ConformVector(vec []float32, dims int) []float32 {
	out := make([]float32, dims)
	n := len(vec)
	if n > dims {
		n = dims
	}
	for i := 0; i < n; i++ {
		v := vec[i]
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			continue
		}
		out[i] = v
	}
	return out
}

// ZeroVector returns an all-zero vector of the fixed system dimensionality.
// It is the ingestion-path fallback for records whose embedding could not be
// computed; the retrieval path never substitutes a zero vector.
func ZeroVector(dims int) []float32 {
	return make([]float32, dims)
}
