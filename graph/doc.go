// Package graph provides the weighted-graph collaborator consumed by the
// 2-opt engine in package tsp.
//
// A Graph is an undirected, complete, edge-weighted graph over the vertices
// 0..n-1. The engine only needs two capabilities from it:
//
//   - VertexCount: the number of vertices n (n ≥ 1).
//   - Weight(i, j): a symmetric, non-negative weight for every pair i ≠ j.
//
// Two immutable backings are provided:
//
//   - Matrix: dense symmetric storage on gonum's *mat.SymDense.
//     Weight is O(1); memory is O(n²).
//   - Adjacency: adjacency-list storage on gonum's
//     simple.WeightedUndirectedGraph. Weight is an O(1) expected map lookup.
//
// Both constructors validate their input and return sentinel errors from
// errors.go; once built, a Graph never changes, so it can be shared freely
// between goroutines and between any number of tours.
//
// Any other type satisfying Graph can be checked with Validate before a search.
package graph
