package tsp

import "errors"

var (
	// ErrNilGraph is returned when a tour is requested over a nil graph.
	ErrNilGraph = errors.New("tsp: nil graph")

	// ErrEmptyTour is returned for a route with no vertices.
	ErrEmptyTour = errors.New("tsp: empty tour")

	// ErrDimensionMismatch is returned when the route length differs from
	// the graph's vertex count.
	ErrDimensionMismatch = errors.New("tsp: route length does not match graph")

	// ErrNotPermutation is returned when a route repeats or omits a vertex,
	// or names a vertex outside [0, n).
	ErrNotPermutation = errors.New("tsp: route is not a permutation")

	// ErrInvalidOptions is returned by MultiStart for meaningless options.
	ErrInvalidOptions = errors.New("tsp: invalid options")
)

// Selection is the neighbour selection policy of a neighbourhood scan.
type Selection int

const (
	// BestFit scans the whole neighbourhood and takes the cheapest neighbour.
	BestFit Selection = iota

	// FirstFit takes the first neighbour cheaper than the scanned tour.
	FirstFit
)

// SelectionOf maps the boolean firstFit flag onto a Selection.
func SelectionOf(firstFit bool) Selection {
	if firstFit {
		return FirstFit
	}

	return BestFit
}

// String implements fmt.Stringer.
func (s Selection) String() string {
	switch s {
	case BestFit:
		return "best-fit"
	case FirstFit:
		return "first-fit"
	default:
		return "unknown"
	}
}

// Result describes one run of Engine.Run.
type Result struct {
	// Tour is the final tour; it is the input pointer when nothing improved.
	Tour *Tour

	// Iterations counts accepted improving steps.
	Iterations int

	// Evaluated counts exchanges examined across all scans. A full scan
	// examines (n-2)(n-1)/2 - 1 pairs: the degenerate pair (0, n-1) only
	// rotates the tour and is skipped, so a scan counts one fewer than the
	// number of (pos1, pos2) pairs with pos1+1 < pos2 < n.
	Evaluated int

	// Converged is true when the last scan found no improving exchange,
	// i.e. Tour is 2-opt optimal.
	Converged bool
}
