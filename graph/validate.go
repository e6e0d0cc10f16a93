// Package graph - validation shared by the Matrix and Adjacency backings.
//
// Design:
//   - Deterministic, side-effect free.
//   - Only sentinel errors from errors.go, wrapped with the offending pair.
//   - O(n²) for a full Graph check; O(1) per weight.
package graph

import (
	"fmt"
	"math"
)

// Validate checks that g honours the Graph contract: at least one vertex,
// and a finite, non-negative, symmetric weight for every pair i ≠ j.
//
// Use it once before a search when g is a custom implementation; Matrix and
// Adjacency are validated at construction and always pass.
//
// Complexity: O(n²) time, O(1) space.
func Validate(g Graph) error {
	if g == nil {
		return ErrEmpty
	}
	n := g.VertexCount()
	if n <= 0 {
		return ErrEmpty
	}

	var (
		i, j     int
		wij, wji float64
		err      error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			wij = g.Weight(i, j)
			if err = checkWeight(wij); err != nil {
				return fmt.Errorf("w(%d,%d): %w", i, j, err)
			}
			wji = g.Weight(j, i)
			if err = checkWeight(wji); err != nil {
				return fmt.Errorf("w(%d,%d): %w", j, i, err)
			}
			if math.Abs(wij-wji) > symTol {
				return fmt.Errorf("w(%d,%d)=%g, w(%d,%d)=%g: %w", i, j, wij, j, i, wji, ErrAsymmetric)
			}
		}
	}

	return nil
}

// checkWeight rejects NaN/±Inf and negative values.
func checkWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return ErrInvalidWeight
	}
	if w < 0 {
		return ErrNegativeWeight
	}

	return nil
}
