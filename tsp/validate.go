package tsp

// ValidatePermutation checks that perm is a permutation of {0..n-1}.
//
// Returns ErrEmptyTour for n ≤ 0, ErrDimensionMismatch when len(perm) != n,
// and ErrNotPermutation for an out-of-range or repeated vertex.
//
// Complexity: O(n) time, O(n) space (one marker slice).
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 {
		return ErrEmptyTour
	}
	if len(perm) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var v int
	for _, v = range perm {
		if v < 0 || v >= n || seen[v] {
			return ErrNotPermutation
		}
		seen[v] = true
	}

	return nil
}

// mustTour panics when t cannot be searched. Search operators are internal
// algorithmic code; a nil tour is a caller bug, not a run-time condition.
func mustTour(t *Tour, op string) {
	if t == nil {
		panic("tsp: " + op + " on nil tour")
	}
}
