package embeval

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var negInf = math.Inf(-1)

// normalize scales vec to unit length in place.
func normalize(vec []float64) error {
	vecLen := floats.Norm(vec, 2)
	if vecLen == 0 {
		return ErrDivideByZero
	}

	floats.Scale(1/vecLen, vec)

	return nil
}

// dotAll computes the dot product of every row of m with vec.
func dotAll(m *mat.Dense, vec []float64) []float64 {
	rows, _ := m.Dims()
	result := mat.NewVecDense(rows, nil)
	result.MulVec(m, mat.NewVecDense(len(vec), vec))
	return result.RawVector().Data
}

// offset returns w - v + u.
func offset(v, w, u []float64) []float64 {
	result := make([]float64, len(w))
	copy(result, w)
	floats.Sub(result, v)
	floats.Add(result, u)
	return result
}

// mask sets the scores at the given ids to an unreachable minimum.
func mask(scores []float64, ids ...int) {
	for _, id := range ids {
		scores[id] = negInf
	}
}

// argmax returns the id of the highest score, preferring the lowest id
// on ties, or -1 if every score is masked.
func argmax(scores []float64) int {
	if len(scores) == 0 {
		return -1
	}

	idx := floats.MaxIdx(scores)
	if scores[idx] == negInf {
		return -1
	}

	return idx
}
