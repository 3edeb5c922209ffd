package recommender

import "math"

// VectorSpace is the precomputed content-vector space, one cosine-comparable
// vector per product. Treated as an immutable input for the lifetime of a
// snapshot.
type VectorSpace struct {
	Dim       int
	ByProduct map[uint64][]float64
}

func NewVectorSpace(vectors map[uint64][]float64) *VectorSpace {
	dim := 0
	for _, v := range vectors {
		if len(v) > dim {
			dim = len(v)
		}
	}
	return &VectorSpace{
		Dim:       dim,
		ByProduct: vectors,
	}
}

func (vs *VectorSpace) VectorFor(productID uint64) ([]float64, bool) {
	if vs == nil {
		return nil, false
	}
	v, ok := vs.ByProduct[productID]
	return v, ok
}

func dot(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

func norm(a []float64) float64 {
	return math.Sqrt(dot(a, a))
}

// cosine similarity, 0 when either vector is empty or zero.
func cosine(a, b []float64) float64 {
	na := norm(a)
	nb := norm(b)
	if na == 0 || nb == 0 {
		return 0
	}
	return dot(a, b) / (na * nb)
}

// meanVector averages the given vectors component-wise. Returns nil when the
// input is empty.
func meanVector(vectors [][]float64) []float64 {
	if len(vectors) == 0 {
		return nil
	}

	dim := 0
	for _, v := range vectors {
		if len(v) > dim {
			dim = len(v)
		}
	}
	if dim == 0 {
		return nil
	}

	mean := make([]float64, dim)
	for _, v := range vectors {
		for i := range v {
			mean[i] += v[i]
		}
	}
	inv := 1.0 / float64(len(vectors))
	for i := range mean {
		mean[i] *= inv
	}

	return mean
}
