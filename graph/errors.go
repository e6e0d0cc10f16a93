// Package graph: sentinel error set.
//
// Every constructor and validator in this package returns ONLY these
// sentinels (optionally wrapped with fmt.Errorf("...: %w", ErrX) for context).
// Callers branch with errors.Is.

package graph

import "errors"

var (
	// ErrEmpty is returned when a graph with zero vertices is requested.
	ErrEmpty = errors.New("graph: no vertices")

	// ErrNotSquare is returned when a weight matrix is not n×n.
	ErrNotSquare = errors.New("graph: weight matrix is not square")

	// ErrAsymmetric is returned when w(i,j) and w(j,i) differ beyond symTol,
	// or when an edge list assigns two different weights to the same pair.
	ErrAsymmetric = errors.New("graph: weights are not symmetric")

	// ErrNegativeWeight is returned for a weight below zero.
	ErrNegativeWeight = errors.New("graph: negative weight")

	// ErrInvalidWeight is returned for NaN or ±Inf weights.
	ErrInvalidWeight = errors.New("graph: weight is not finite")

	// ErrIncomplete is returned when some pair i ≠ j has no edge.
	ErrIncomplete = errors.New("graph: graph is not complete")

	// ErrVertexOutOfRange is returned for an edge endpoint outside [0, n).
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")

	// ErrSelfLoop is returned for an edge (v, v).
	ErrSelfLoop = errors.New("graph: self loop")
)
