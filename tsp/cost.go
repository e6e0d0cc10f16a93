// Package tsp - cost utilities.
//
// CycleCost is the ground truth for every Tour's cost. ExchangeDelta is the
// optional O(1) shortcut used by the engine when delta costing is enabled;
// it only filters candidates and never replaces the recomputed cost of a
// Tour that the engine returns.
package tsp

import "github.com/katalvlaran/twoopt/graph"

// CycleCost returns the sum of g.Weight(route[k], route[(k+1) mod n]) over
// k = 0..n-1, i.e. the length of the closed route. A single-vertex route has
// no edges and costs 0; a two-vertex route traverses its edge twice.
//
// Contract: route is a permutation of 0..g.VertexCount()-1 (not re-checked).
//
// Complexity: O(n).
func CycleCost(g graph.Graph, route []int) float64 {
	n := len(route)
	if n < 2 {
		return 0
	}

	var (
		sum float64
		k   int
	)
	for k = 0; k < n-1; k++ {
		sum += g.Weight(route[k], route[k+1])
	}
	sum += g.Weight(route[n-1], route[0])

	return sum
}

// ExchangeDelta returns the cost change of Exchange(t, pos1, pos2) without
// building the new tour:
//
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d)
//
// with a = route[pos1], b = route[pos1+1], c = route[pos2], d = route[(pos2+1) mod n].
// The same four edges are involved in both the general and the wrap-around
// case, so one formula covers both. For the degenerate pair (0, n-1) it is 0.
//
// Preconditions are those of Exchange (not re-checked).
//
// Complexity: O(1).
func ExchangeDelta(t *Tour, pos1, pos2 int) float64 {
	var (
		n = len(t.route)
		g = t.g
		a = t.route[pos1]
		b = t.route[pos1+1]
		c = t.route[pos2]
		d = t.route[(pos2+1)%n]
	)

	return g.Weight(a, c) + g.Weight(b, d) - g.Weight(a, b) - g.Weight(c, d)
}
