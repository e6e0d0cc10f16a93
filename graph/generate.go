// Package graph - deterministic instance generators.
//
// Contract:
//   - Same arguments and RNG seed ⇒ identical instances on every platform.
//   - Point layouts are returned in a documented vertex order so callers can
//     build the known optimal tour (CirclePoints: identity order).
//   - Weight functions validate their parameters and PANIC on meaningless
//     values (programmer error); generators return sentinel errors.
//   - rng == nil ⇒ a fixed default stream, never a time-based one.
//
// Complexity:
//   - CirclePoints, GridPoints, RandomPoints: O(n).
//   - RandomComplete: O(n²) weight draws.
package graph

import (
	"fmt"
	"math"
	"math/rand"
)

// defaultGenSeed seeds generators called with a nil RNG.
const defaultGenSeed int64 = 1

// WeightFn draws one edge weight from rng.
type WeightFn func(rng *rand.Rand) float64

// ConstantWeightFn always yields value. Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("graph: ConstantWeightFn(%g): want finite value ≥ 0", value))
	}

	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeightFn samples uniformly in [lo, hi). Panics unless 0 ≤ lo ≤ hi.
func UniformWeightFn(lo, hi float64) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("graph: UniformWeightFn(%g, %g): want 0 ≤ lo ≤ hi", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		return lo + rng.Float64()*(hi-lo)
	}
}

// IntWeightFn samples integers uniformly in [lo, hi]. Panics unless 0 ≤ lo ≤ hi.
// Integer weights make delta and full costing agree exactly.
func IntWeightFn(lo, hi int) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("graph: IntWeightFn(%d, %d): want 0 ≤ lo ≤ hi", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		return float64(lo + rng.Intn(hi-lo+1))
	}
}

// NormalWeightFn samples N(mean, stddev) rounded to the nearest integer and
// clipped at 0. Panics if stddev < 0.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("graph: NormalWeightFn(%g, %g): want stddev ≥ 0", mean, stddev))
	}

	return func(rng *rand.Rand) float64 {
		return math.Max(0, math.Round(rng.NormFloat64()*stddev+mean))
	}
}

// RandomComplete builds a Matrix over n vertices with w(i, j) = wfn(rng)
// drawn in row-major upper-triangle order.
//
// Errors: ErrEmpty if n < 1; weight sentinels if wfn yields an invalid value.
func RandomComplete(n int, wfn WeightFn, rng *rand.Rand) (*Matrix, error) {
	if n < 1 {
		return nil, ErrEmpty
	}
	if wfn == nil {
		wfn = ConstantWeightFn(1)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultGenSeed))
	}

	w := make([][]float64, n)
	var i, j int
	for i = range w {
		w[i] = make([]float64, n)
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w[i][j] = wfn(rng)
			w[j][i] = w[i][j]
		}
	}

	return NewMatrix(w)
}

// CirclePoints places n points evenly on a circle of the given radius,
// counter-clockwise from (radius, 0). For n ≥ 3 the identity order is the
// unique optimal tour.
func CirclePoints(n int, radius float64) []Point {
	if n < 1 {
		return nil
	}
	pts := make([]Point, n)
	var (
		k  int
		th float64
	)
	for k = 0; k < n; k++ {
		th = 2 * math.Pi * float64(k) / float64(n)
		pts[k] = Point{X: radius * math.Cos(th), Y: radius * math.Sin(th)}
	}

	return pts
}

// GridPoints returns a rows×cols lattice with the given spacing in row-major
// order: vertex r*cols+c sits at (c*spacing, r*spacing).
func GridPoints(rows, cols int, spacing float64) []Point {
	if rows < 1 || cols < 1 {
		return nil
	}
	pts := make([]Point, 0, rows*cols)
	var r, c int
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			pts = append(pts, Point{X: float64(c) * spacing, Y: float64(r) * spacing})
		}
	}

	return pts
}

// RandomPoints draws n points uniformly in the square [0, side)².
func RandomPoints(n int, side float64, rng *rand.Rand) []Point {
	if n < 1 {
		return nil
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultGenSeed))
	}
	pts := make([]Point, n)
	for k := range pts {
		pts[k] = Point{X: rng.Float64() * side, Y: rng.Float64() * side}
	}

	return pts
}
