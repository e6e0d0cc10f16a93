// Package tsp_test provides helpers shared across the *_test.go files of
// this package: deterministic instances and brute-force references.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twoopt/graph"
	"github.com/katalvlaran/twoopt/tsp"
)

// -----------------------------------------------------------------------------
// Constants
// -----------------------------------------------------------------------------

const (
	// seedDet is the fixed seed for every randomized fixture.
	seedDet = int64(42)

	// epsCost absorbs floating-point noise when comparing independently
	// summed costs on non-integer instances.
	epsCost = 1e-9
)

// -----------------------------------------------------------------------------
// Instances
// -----------------------------------------------------------------------------

// unitSquare returns the 4 corners of the unit square: sides 1, diagonals √2.
// Vertex order 0-1-2-3 walks the perimeter.
func unitSquare(t *testing.T) *graph.Matrix {
	t.Helper()
	m, err := graph.FromPoints([]graph.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, graph.Euclidean)
	require.NoError(t, err)

	return m
}

// circle returns n points on the unit circle, in angular order.
func circle(t testing.TB, n int) *graph.Matrix {
	t.Helper()
	m, err := graph.FromPoints(graph.CirclePoints(n, 1), graph.Euclidean)
	require.NoError(t, err)

	return m
}

// randomInstance builds a complete graph with integer weights in [1, 100].
func randomInstance(t testing.TB, n int, rng *rand.Rand) *graph.Matrix {
	t.Helper()
	m, err := graph.RandomComplete(n, graph.IntWeightFn(1, 100), rng)
	require.NoError(t, err)

	return m
}

// randomPlanar builds a Euclidean instance with non-integer weights.
func randomPlanar(t testing.TB, n int, rng *rand.Rand) *graph.Matrix {
	t.Helper()
	m, err := graph.FromPoints(graph.RandomPoints(n, 100, rng), graph.Euclidean)
	require.NoError(t, err)

	return m
}

// mustTour builds a tour or fails the test.
func mustTour(t testing.TB, g graph.Graph, route ...int) *tsp.Tour {
	t.Helper()
	tour, err := tsp.NewTour(g, route)
	require.NoError(t, err)

	return tour
}

// randomTour draws a random tour or fails the test.
func randomTour(t testing.TB, g graph.Graph, rng *rand.Rand) *tsp.Tour {
	t.Helper()
	tour, err := tsp.RandomTour(g, rng)
	require.NoError(t, err)

	return tour
}

// -----------------------------------------------------------------------------
// References
// -----------------------------------------------------------------------------

// manualCost sums the closed route independently of tsp.CycleCost.
func manualCost(g graph.Graph, route []int) float64 {
	var sum float64
	for k := range route {
		sum += g.Weight(route[k], route[(k+1)%len(route)])
	}

	return sum
}

// reversalRoute is the textbook 2-opt move: reverse route[pos1+1..pos2].
func reversalRoute(route []int, pos1, pos2 int) []int {
	out := append([]int(nil), route...)
	for i, k := pos1+1, pos2; i < k; i, k = i+1, k-1 {
		out[i], out[k] = out[k], out[i]
	}

	return out
}

// pair is one candidate (pos1, pos2).
type pair struct{ i, j int }

// legalPairs enumerates the neighbourhood in row-major order, skipping the
// degenerate (0, n-1) pair exactly as the engine does.
func legalPairs(n int) []pair {
	var ps []pair
	for i := 0; i <= n-2; i++ {
		for j := i + 2; j <= n-1; j++ {
			if tsp.IsDegenerate(n, i, j) {
				continue
			}
			ps = append(ps, pair{i, j})
		}
	}

	return ps
}

// bruteFirst returns the first improving neighbour of tour in scan order, or nil.
func bruteFirst(tour *tsp.Tour) *tsp.Tour {
	for _, p := range legalPairs(tour.Len()) {
		if next := tsp.Exchange(tour, p.i, p.j); next.Cost() < tour.Cost() {
			return next
		}
	}

	return nil
}

// bruteBestCost returns the cheapest neighbour cost of tour (+Inf if none).
func bruteBestCost(tour *tsp.Tour) float64 {
	best := math.Inf(1)
	for _, p := range legalPairs(tour.Len()) {
		best = math.Min(best, tsp.Exchange(tour, p.i, p.j).Cost())
	}

	return best
}

// isPermutation reports whether route is a permutation of 0..n-1.
func isPermutation(route []int, n int) bool {
	return tsp.ValidatePermutation(route, n) == nil
}
