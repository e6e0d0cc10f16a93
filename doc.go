// Package twoopt is a 2-opt local search toolkit for the symmetric
// Travelling Salesman Problem.
//
// What is inside:
//
//	graph/        complete weighted graphs: dense (gonum SymDense) and edge list
//	              (gonum simple graph) backings, Euclidean builders, validation
//	tsp/          immutable tours, the 2-opt exchange, first-fit and best-fit
//	              neighbourhood scans, iteration to a local optimum, multi-start
//	tsplib/       TSPLIB (EUC_2D, CEIL_2D, EXPLICIT) and YAML instance loaders
//	cmd/twoopt/   command line front end: `twoopt solve <instance>`
//
// Quick example (unit square, crossed tour):
//
//	0───1          0   1
//	  ╲╱    2-opt  │   │
//	  ╱╲    ────►  │   │
//	3───2          3───2
//
//	g, _ := graph.FromPoints(corners, graph.Euclidean)
//	t, _ := tsp.NewTour(g, []int{0, 2, 1, 3})
//	best := tsp.IterativeTwoOpt(t, false) // cost 4
//
// Tours are values: every operation returns a new Tour and never mutates its
// input, so tours may be shared freely between goroutines.
package twoopt
