// Package tsp implements 2-opt local search for the symmetric Travelling
// Salesman Problem.
//
// The package is built around three pieces.
//
// Tour is an immutable cyclic permutation of the vertices of a graph.Graph
// together with its cost: the sum of edge weights along the route, including
// the closing edge back to the first vertex. Every transformation returns a
// new Tour.
//
// Engine holds the 2-opt operator and the searches built on it:
//
//   - Exchange(t, pos1, pos2) removes the edges leaving route[pos1] and
//     route[pos2] and reconnects the two paths by reversing the segment
//     between them.
//   - ScanNeighborhood(t, firstFit) examines every pair (i, j) with
//     i+2 ≤ j in row-major order, except (0, n-1) whose edges share a
//     vertex. First-fit returns the first neighbour
//     cheaper than t; best-fit returns the cheapest neighbour, or t itself
//     when nothing is cheaper.
//   - IterativeTwoOpt(t, firstFit) repeats best-fit scans until no exchange
//     improves the tour (a 2-opt local optimum). Under first-fit it performs
//     exactly one scan-improve step.
//
// MultiStart runs IterativeTwoOpt from many random tours on a bounded worker
// pool and reports min/max/mean of the results.
//
// Complexity:
//   - Exchange: O(n) time and space (fresh route buffer).
//   - One scan: O(n²) candidates, each O(n) to build and cost, or O(1) with
//     WithDeltaCosting(true) (only improving candidates are materialized).
//
// Errors and panics:
//   - Constructors that take external data (NewTour, RandomTour, MultiStart)
//     return sentinel errors from types.go.
//   - The search operators treat bad indices or nil tours as programming
//     errors and panic; they never fail at run time otherwise.
//
// Concurrency: the engine is synchronous and holds no mutable state; Tours
// and Engines may be shared freely between goroutines.
package tsp
