// Package tsp - RNG utilities for initial tours and multi-start runs.
//
// Goals:
//   - Determinism: same seed ⇒ identical tours on every platform.
//   - Encapsulation: a single RNG factory; no time-based sources.
//   - Independent streams: each restart derives its own *rand.Rand from the
//     base seed and its index, so results do not depend on scheduling.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Never share a *rand.Rand between
//     workers; derive one per restart with deriveRNG.
package tsp

import (
	"math/rand"

	"github.com/katalvlaran/twoopt/graph"
)

// defaultRNGSeed is used when callers pass seed == 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed == 0 ⇒ defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream id into a new seed
// (SplitMix64 finalizer).
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveRNG creates the independent stream number `stream` of a base seed.
// Unlike a shared generator, the result depends only on (seed, stream).
func deriveRNG(seed int64, stream uint64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(deriveSeed(seed, stream)))
}

// shuffleIntsInPlace performs a Fisher–Yates shuffle of a using rng
// (rng == nil ⇒ default deterministic stream).
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	if len(a) <= 1 {
		return
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}

	var i, j int
	for i = len(a) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// RandomTour returns a uniformly random tour over g drawn from rng
// (rng == nil ⇒ default deterministic stream).
//
// Errors: ErrNilGraph, ErrEmptyTour.
//
// Complexity: O(n).
func RandomTour(g graph.Graph, rng *rand.Rand) (*Tour, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	if n <= 0 {
		return nil, ErrEmptyTour
	}

	route := make([]int, n)
	for i := range route {
		route[i] = i
	}
	shuffleIntsInPlace(route, rng)

	return newTour(g, route), nil
}
