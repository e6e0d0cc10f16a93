// Package tsp - the immutable Tour value type.
//
// A Tour is a permutation of 0..n-1 read as a cycle: after route[n-1] the
// route returns to route[0]. Its cost is computed once, from the route, when
// the Tour is built; since nothing can change the route afterwards, the cached
// cost always equals the recomputed sum.
//
// Ownership: a Tour holds a non-owning reference to its graph.Graph. The
// graph must outlive every Tour built over it and must not change meanwhile.
package tsp

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/twoopt/graph"
)

// Tour is an immutable cyclic route over all vertices of a graph.
type Tour struct {
	g     graph.Graph
	route []int
	cost  float64
}

// NewTour validates route against g and returns the Tour it describes.
// The route is copied.
//
// Errors: ErrNilGraph, ErrEmptyTour, ErrDimensionMismatch, ErrNotPermutation.
//
// Complexity: O(n).
func NewTour(g graph.Graph, route []int) (*Tour, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(route) == 0 {
		return nil, ErrEmptyTour
	}
	if err := ValidatePermutation(route, g.VertexCount()); err != nil {
		return nil, fmt.Errorf("route %v: %w", route, err)
	}

	return newTour(g, append([]int(nil), route...)), nil
}

// IdentityTour returns the tour 0, 1, ..., n-1 over g.
func IdentityTour(g graph.Graph) (*Tour, error) {
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

	return newTour(g, route), nil
}

// newTour takes ownership of route, which must already be a permutation.
func newTour(g graph.Graph, route []int) *Tour {
	return &Tour{g: g, route: route, cost: CycleCost(g, route)}
}

// Graph returns the graph the tour is bound to.
func (t *Tour) Graph() graph.Graph { return t.g }

// Len returns the number of vertices n.
func (t *Tour) Len() int { return len(t.route) }

// At returns the vertex at position k. Panics if k is out of range.
func (t *Tour) At(k int) int { return t.route[k] }

// Route returns a copy of the vertex order.
func (t *Tour) Route() []int { return append([]int(nil), t.route...) }

// Cost returns the total cyclic length of the tour.
func (t *Tour) Cost() float64 { return t.cost }

// Canonical returns the same cycle rotated to start at vertex 0 and oriented
// so that the smaller of vertex 0's two neighbours comes second. Two tours
// describe the same undirected cycle iff their canonical routes are equal.
//
// Complexity: O(n).
func (t *Tour) Canonical() *Tour {
	n := len(t.route)
	var (
		pivot int
		k     int
	)
	for k = 0; k < n; k++ {
		if t.route[k] == 0 {
			pivot = k
			break
		}
	}

	out := make([]int, n)
	for k = 0; k < n; k++ {
		out[k] = t.route[(pivot+k)%n]
	}
	if n > 2 && out[1] > out[n-1] {
		reverseInPlace(out, 1, n-1)
	}

	return newTour(t.g, out)
}

// String renders the route and cost, e.g. "[0 1 3 2] cost=4".
func (t *Tour) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for k, v := range t.route {
		if k > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", v)
	}
	fmt.Fprintf(&sb, "] cost=%g", t.cost)

	return sb.String()
}

// SameCycle reports whether a and b visit their vertices in the same cyclic
// order, allowing any rotation and either direction.
//
// Complexity: O(n).
func SameCycle(a, b *Tour) bool {
	if a == nil || b == nil || a.Len() != b.Len() {
		return false
	}
	ca, cb := a.Canonical().route, b.Canonical().route
	for k := range ca {
		if ca[k] != cb[k] {
			return false
		}
	}

	return true
}

// reverseInPlace reverses the inclusive segment a[i..k].
//
// Complexity: O(k-i) time, O(1) space.
func reverseInPlace(a []int, i, k int) {
	for i < k {
		a[i], a[k] = a[k], a[i]
		i++
		k--
	}
}
