// Package graph - dense symmetric backing on gonum's *mat.SymDense.
//
// Matrix stores only the upper triangle (SymDense keeps n×n storage but reads
// and writes go through the upper half), so symmetry holds by construction
// once the input passed validation.
//
// Complexity:
//   - Construction: O(n²) time and space.
//   - Weight:       O(1).
package graph

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Matrix is an immutable complete graph backed by a symmetric dense matrix.
type Matrix struct {
	sym *mat.SymDense
}

var _ Graph = (*Matrix)(nil)

// NewMatrix builds a Matrix from a square weight table.
//
// Contract:
//   - len(weights) ≥ 1 and every row has len(weights) entries (ErrEmpty, ErrNotSquare).
//   - Off-diagonal entries are finite (ErrInvalidWeight) and non-negative (ErrNegativeWeight).
//   - weights[i][j] and weights[j][i] agree within symTol (ErrAsymmetric).
//   - The diagonal is ignored and stored as 0.
//
// The input is copied; later changes to weights do not affect the Matrix.
//
// Complexity: O(n²).
func NewMatrix(weights [][]float64) (*Matrix, error) {
	n := len(weights)
	if n == 0 {
		return nil, ErrEmpty
	}
	var i, j int
	for i = 0; i < n; i++ {
		if len(weights[i]) != n {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(weights[i]), n, ErrNotSquare)
		}
	}

	data := make([]float64, n*n)
	var (
		wij, wji float64
		err      error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			wij, wji = weights[i][j], weights[j][i]
			if err = checkWeight(wij); err != nil {
				return nil, fmt.Errorf("w(%d,%d): %w", i, j, err)
			}
			if err = checkWeight(wji); err != nil {
				return nil, fmt.Errorf("w(%d,%d): %w", j, i, err)
			}
			if math.Abs(wij-wji) > symTol {
				return nil, fmt.Errorf("w(%d,%d)=%g, w(%d,%d)=%g: %w", i, j, wij, j, i, wji, ErrAsymmetric)
			}
			// Upper triangle only; SymDense mirrors reads.
			data[i*n+j] = wij
		}
	}

	return &Matrix{sym: mat.NewSymDense(n, data)}, nil
}

// NewMatrixFromSym copies an existing gonum symmetric matrix into a Matrix,
// applying the same weight checks as NewMatrix (the diagonal is zeroed).
//
// Complexity: O(n²).
func NewMatrixFromSym(s mat.Symmetric) (*Matrix, error) {
	if s == nil {
		return nil, ErrEmpty
	}
	n := s.SymmetricDim()
	if n == 0 {
		return nil, ErrEmpty
	}

	sym := mat.NewSymDense(n, nil)
	var (
		i, j int
		w    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w = s.At(i, j)
			if err = checkWeight(w); err != nil {
				return nil, fmt.Errorf("w(%d,%d): %w", i, j, err)
			}
			sym.SetSym(i, j, w)
		}
	}

	return &Matrix{sym: sym}, nil
}

// FromPoints builds the complete graph over pts with weights metric(pts[i], pts[j]).
// Returns ErrEmpty for no points and the weight sentinels if metric yields
// an invalid value.
//
// Complexity: O(n²) metric evaluations.
func FromPoints(pts []Point, metric Metric) (*Matrix, error) {
	n := len(pts)
	if n == 0 {
		return nil, ErrEmpty
	}
	if metric == nil {
		metric = Euclidean
	}

	sym := mat.NewSymDense(n, nil)
	var (
		i, j int
		w    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w = metric(pts[i], pts[j])
			if err = checkWeight(w); err != nil {
				return nil, fmt.Errorf("w(%d,%d): %w", i, j, err)
			}
			sym.SetSym(i, j, w)
		}
	}

	return &Matrix{sym: sym}, nil
}

// VertexCount returns n.
func (m *Matrix) VertexCount() int { return m.sym.SymmetricDim() }

// Weight returns w(i, j); 0 on the diagonal. Panics if i or j is out of range.
func (m *Matrix) Weight(i, j int) float64 {
	if i == j {
		return 0
	}

	return m.sym.At(i, j)
}

// Symmetric exposes the backing matrix as a read-only gonum view.
func (m *Matrix) Symmetric() mat.Symmetric { return m.sym }

// Euclidean is the straight-line distance between a and b.
func Euclidean(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// RoundedEuclidean is the Euclidean distance rounded to the nearest integer
// (TSPLIB EUC_2D).
func RoundedEuclidean(a, b Point) float64 {
	return math.Floor(Euclidean(a, b) + 0.5)
}

// CeilEuclidean is the Euclidean distance rounded up (TSPLIB CEIL_2D).
func CeilEuclidean(a, b Point) float64 {
	return math.Ceil(Euclidean(a, b))
}
