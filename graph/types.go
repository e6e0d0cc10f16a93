package graph

// Graph is the capability set the 2-opt engine needs from a weighted graph.
//
// Contract:
//   - VertexCount() ≥ 1 and never changes.
//   - Weight(i, j) is defined, finite, non-negative and equal to Weight(j, i)
//     for all i ≠ j in [0, VertexCount()).
//   - Weight(i, i) and out-of-range indices are implementation defined; both
//     backings in this package return 0 for i == j and panic out of range.
type Graph interface {
	VertexCount() int
	Weight(i, j int) float64
}

// Edge is one undirected weighted edge between vertices U and V.
type Edge struct {
	U, V int
	W    float64
}

// Point is a position in the plane, used to derive metric weights.
type Point struct {
	X, Y float64
}

// Metric computes the weight between two points.
type Metric func(a, b Point) float64

// symTol is the absolute tolerance used when comparing w(i,j) with w(j,i).
const symTol = 1e-12
