// Package tsp - 2-opt local search engine.
//
// Exchange(t, pos1, pos2) removes the edges (r[pos1], r[pos1+1]) and
// (r[pos2], r[(pos2+1) mod n]) and reconnects the two paths:
//
//	pos2 < n-1:  r[0..pos1] ++ reverse(r[pos1+1..pos2]) ++ r[pos2+1..n-1]
//	pos2 = n-1:  r[pos1+1..n-1] ++ r[pos1] ++ reverse(r[1..pos1-1]) ++ r[0]
//
// The second form expresses the wrap-around edge (r[n-1], r[0]) without
// modular indexing; it yields the same undirected cycle the first form would.
// For pos1 = 0 the vertices r[pos1] and r[0] coincide and are written once,
// so the result is the rotation r[1..n-1] ++ r[0].
//
// Scan examines (i, j) for 0 ≤ i ≤ n-2, i+2 ≤ j ≤ n-1 in row-major order,
// skipping the degenerate pair (0, n-1) whose two edges share r[0].
//
//   - FirstFit: return the first neighbour strictly cheaper than the INPUT
//     tour; a later, larger improvement in the same scan is never preferred.
//   - BestFit:  return the strictly cheapest neighbour (first occurrence wins
//     ties), or the input pointer itself when no neighbour is cheaper.
//
// Run repeats Scan. Under FirstFit it stops after one scan-improve step; under
// BestFit it continues while the cost strictly decreases. Termination follows
// from the strict decrease over a finite set of tours.
//
// Complexity:
//   - Exchange: O(n) time and space.
//   - Scan:     O(n²) candidates × O(n) (full costing) or O(1) (delta costing).
//   - Run:      O(iter · n³) full costing, O(iter · n²) delta costing typical.
package tsp

import (
	"fmt"

	"github.com/go-kit/log/level"
)

// Engine performs 2-opt exchanges and searches. The zero value is not usable;
// build one with NewEngine. An Engine holds no mutable state.
type Engine struct {
	cfg engineConfig
}

// NewEngine returns an Engine configured by opts.
func NewEngine(opts ...Option) *Engine {
	return &Engine{cfg: newEngineConfig(opts...)}
}

// defaultEngine backs the package-level entry points.
var defaultEngine = NewEngine()

// Exchange performs one 2-opt exchange with the default engine.
// See Engine.Exchange.
func Exchange(t *Tour, pos1, pos2 int) *Tour {
	return defaultEngine.Exchange(t, pos1, pos2)
}

// ScanNeighborhood scans the full 2-opt neighbourhood of t once, with
// first-fit selection when firstFit is true and best-fit otherwise.
func ScanNeighborhood(t *Tour, firstFit bool) *Tour {
	return defaultEngine.Scan(t, SelectionOf(firstFit))
}

// IterativeTwoOpt improves t with repeated scans: to a 2-opt local optimum
// under best-fit, or by exactly one scan-improve step under first-fit.
func IterativeTwoOpt(t *Tour, firstFit bool) *Tour {
	return defaultEngine.Iterate(t, SelectionOf(firstFit))
}

// IsDegenerate reports whether the pair (pos1, pos2) selects two edges that
// share a vertex, i.e. pos1 == (pos2+1) mod n. For legal pairs this happens
// only for (0, n-1); exchanging such a pair merely rotates the route.
func IsDegenerate(n, pos1, pos2 int) bool {
	return pos1 == (pos2+1)%n
}

// Exchange returns the tour obtained from t by the 2-opt exchange of the
// edges leaving positions pos1 and pos2. The input is not modified.
//
// Preconditions (violations panic): t != nil, 0 ≤ pos1, pos1+1 < pos2 < n.
func (e *Engine) Exchange(t *Tour, pos1, pos2 int) *Tour {
	mustTour(t, "Exchange")
	n := len(t.route)
	if pos1 < 0 || pos2 <= pos1+1 || pos2 >= n {
		panic(fmt.Sprintf("tsp: Exchange(%d, %d) on %d vertices: want 0 <= pos1, pos1+1 < pos2 < n", pos1, pos2, n))
	}

	return newTour(t.g, exchangeRoute(t.route, pos1, pos2))
}

// exchangeRoute builds the reconnected route in a fresh buffer.
func exchangeRoute(route []int, pos1, pos2 int) []int {
	var (
		n    = len(route)
		next = make([]int, n)
		k    int
		i    int
	)

	if pos2 != n-1 {
		k = copy(next, route[:pos1+1])
		for i = pos2; i > pos1; i-- {
			next[k] = route[i]
			k++
		}
		copy(next[k:], route[pos2+1:])

		return next
	}

	// Wrap-around: the removed edge is (route[n-1], route[0]).
	k = copy(next, route[pos1+1:])
	next[k] = route[pos1]
	k++
	for i = pos1 - 1; i >= 1; i-- {
		next[k] = route[i]
		k++
	}
	if pos1 > 0 {
		next[k] = route[0]
	}

	return next
}

// Scan examines the whole 2-opt neighbourhood of t once under sel.
// The returned tour is strictly cheaper than t, or is t itself.
func (e *Engine) Scan(t *Tour, sel Selection) *Tour {
	mustTour(t, "Scan")
	next, _ := e.scan(t, sel)

	return next
}

// scan returns the selected neighbour and the number of candidates examined.
func (e *Engine) scan(t *Tour, sel Selection) (*Tour, int) {
	var (
		n         = len(t.route)
		base      = t.cost
		best      = t
		bestCost  = base
		evaluated int
		i, j      int
		cand      *Tour
	)

	for i = 0; i <= n-2; i++ {
		for j = i + 2; j <= n-1; j++ {
			if IsDegenerate(n, i, j) {
				continue
			}
			evaluated++

			if e.cfg.delta && !(base+ExchangeDelta(t, i, j) < bestCost) {
				continue
			}
			cand = newTour(t.g, exchangeRoute(t.route, i, j))

			if sel == FirstFit {
				// Compared against the input cost, not a running best.
				if cand.cost < base {
					return cand, evaluated
				}
				continue
			}
			if cand.cost < bestCost {
				best, bestCost = cand, cand.cost
			}
		}
	}

	return best, evaluated
}

// Iterate runs the search and returns only the final tour. See Run.
func (e *Engine) Iterate(t *Tour, sel Selection) *Tour {
	return e.Run(t, sel).Tour
}

// Run improves t by repeated scans under sel.
//
// States: RUNNING → CONVERGED.
//   - BestFit: adopt the scan result while it is strictly cheaper; stop at the
//     first scan that does not improve (Converged = true), or when the
//     WithMaxIterations cap is reached.
//   - FirstFit: stop after the first scan. If it improved, Tour is the
//     improved neighbour and Converged is false; otherwise Tour is t and
//     Converged is true.
func (e *Engine) Run(t *Tour, sel Selection) Result {
	mustTour(t, "Run")

	var (
		res    = Result{Tour: t}
		next   *Tour
		ev     int
		logger = e.cfg.logger
	)
	for {
		next, ev = e.scan(res.Tour, sel)
		res.Evaluated += ev
		if !(next.cost < res.Tour.cost) {
			res.Converged = true
			break
		}

		res.Tour = next
		res.Iterations++
		_ = level.Debug(logger).Log(
			"msg", "2-opt step accepted",
			"selection", sel,
			"iteration", res.Iterations,
			"cost", next.cost,
			"evaluated", res.Evaluated,
		)

		if sel == FirstFit {
			break
		}
		if e.cfg.maxIterations > 0 && res.Iterations >= e.cfg.maxIterations {
			break
		}
	}

	_ = level.Debug(logger).Log(
		"msg", "2-opt finished",
		"selection", sel,
		"vertices", len(t.route),
		"start_cost", t.cost,
		"final_cost", res.Tour.cost,
		"iterations", res.Iterations,
		"evaluated", res.Evaluated,
		"converged", res.Converged,
	)

	return res
}
