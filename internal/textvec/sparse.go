package textvec

import "math"

// SparseVector holds the non-zero components of a term vector, ordered by column index.
type SparseVector struct {
	Indices []int
	Values  []float64
}

// Len returns the number of non-zero components.
func (v SparseVector) Len() int {
	return len(v.Indices)
}

// Norm returns the L2 norm of the vector.
func (v SparseVector) Norm() float64 {
	var sum float64
	for _, x := range v.Values {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Dot computes the inner product of two sparse vectors.
func Dot(a, b SparseVector) float64 {
	var dot float64
	i, j := 0, 0
	for i < len(a.Indices) && j < len(b.Indices) {
		switch {
		case a.Indices[i] == b.Indices[j]:
			dot += a.Values[i] * b.Values[j]
			i++
			j++
		case a.Indices[i] < b.Indices[j]:
			i++
		default:
			j++
		}
	}
	return dot
}

// Cosine computes cosine similarity between two sparse vectors.
// Zero vectors have similarity 0 with everything.
func Cosine(a, b SparseVector) float64 {
	den := a.Norm() * b.Norm()
	if den == 0 {
		return 0
	}
	return Dot(a, b) / den
}
