// Package graph - adjacency-list backing on gonum's simple.WeightedUndirectedGraph.
//
// Adjacency is useful when the instance arrives as an edge list (e.g. a YAML
// instance file). Construction requires the list to describe a complete graph:
// every pair i < j exactly once (a repeated pair must repeat the same weight).
//
// Complexity:
//   - Construction: O(n + E) expected, E = n(n−1)/2 for a complete graph.
//   - Weight:       O(1) expected (two map lookups inside gonum).
package graph

import (
	"fmt"

	gograph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// Adjacency is an immutable complete graph stored as adjacency lists.
type Adjacency struct {
	g *simple.WeightedUndirectedGraph
	n int
}

var _ Graph = (*Adjacency)(nil)

// NewAdjacency builds an Adjacency over vertices 0..n-1 from edges.
//
// Errors:
//   - ErrEmpty if n ≤ 0.
//   - ErrVertexOutOfRange, ErrSelfLoop for malformed endpoints.
//   - ErrInvalidWeight, ErrNegativeWeight for bad weights.
//   - ErrAsymmetric if the same pair is listed twice with different weights.
//   - ErrIncomplete if some pair is missing.
func NewAdjacency(n int, edges []Edge) (*Adjacency, error) {
	if n <= 0 {
		return nil, ErrEmpty
	}
	// A complete graph needs every pair; fail before allocating n nodes.
	if len(edges) < n*(n-1)/2 {
		return nil, fmt.Errorf("%d edges for %d vertices: %w", len(edges), n, ErrIncomplete)
	}

	g := simple.NewWeightedUndirectedGraph(0, 0)
	var v int
	for v = 0; v < n; v++ {
		g.AddNode(simple.Node(v))
	}

	var (
		e      Edge
		err    error
		unique int
		prev   gograph.WeightedEdge
	)
	for _, e = range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, fmt.Errorf("edge (%d,%d): %w", e.U, e.V, ErrVertexOutOfRange)
		}
		if e.U == e.V {
			return nil, fmt.Errorf("edge (%d,%d): %w", e.U, e.V, ErrSelfLoop)
		}
		if err = checkWeight(e.W); err != nil {
			return nil, fmt.Errorf("edge (%d,%d): %w", e.U, e.V, err)
		}

		prev = g.WeightedEdgeBetween(int64(e.U), int64(e.V))
		if prev != nil {
			if prev.Weight() != e.W {
				return nil, fmt.Errorf("edge (%d,%d) listed with %g and %g: %w", e.U, e.V, prev.Weight(), e.W, ErrAsymmetric)
			}
			continue
		}
		g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(e.U), T: simple.Node(e.V), W: e.W})
		unique++
	}

	if want := n * (n - 1) / 2; unique != want {
		return nil, fmt.Errorf("%d of %d pairs present: %w", unique, want, ErrIncomplete)
	}

	return &Adjacency{g: g, n: n}, nil
}

// VertexCount returns n.
func (a *Adjacency) VertexCount() int { return a.n }

// Weight returns w(i, j); 0 on the diagonal. Panics if i or j is out of range.
func (a *Adjacency) Weight(i, j int) float64 {
	if i < 0 || i >= a.n || j < 0 || j >= a.n {
		panic(fmt.Sprintf("graph: Weight(%d,%d) out of range [0,%d)", i, j, a.n))
	}
	if i == j {
		return 0
	}
	w, _ := a.g.Weight(int64(i), int64(j))

	return w
}
