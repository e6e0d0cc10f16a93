package graph_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/twoopt/graph"
)

// square4 is the unit square 0-1-2-3 with unit sides and √2 diagonals.
var square4 = [][]float64{
	{0, 1, math.Sqrt2, 1},
	{1, 0, 1, math.Sqrt2},
	{math.Sqrt2, 1, 0, 1},
	{1, math.Sqrt2, 1, 0},
}

// -----------------------------------------------------------------------------
// Matrix
// -----------------------------------------------------------------------------

func TestNewMatrix_Square4(t *testing.T) {
	m, err := graph.NewMatrix(square4)
	require.NoError(t, err)
	require.Equal(t, 4, m.VertexCount())
	require.Equal(t, 1.0, m.Weight(0, 1))
	require.Equal(t, math.Sqrt2, m.Weight(2, 0))
	require.Equal(t, 0.0, m.Weight(3, 3))
	require.NoError(t, graph.Validate(m))
}

func TestNewMatrix_CopiesInput(t *testing.T) {
	w := [][]float64{{0, 2}, {2, 0}}
	m, err := graph.NewMatrix(w)
	require.NoError(t, err)
	w[0][1], w[1][0] = 9, 9
	require.Equal(t, 2.0, m.Weight(0, 1))
}

func TestNewMatrix_IgnoresDiagonal(t *testing.T) {
	m, err := graph.NewMatrix([][]float64{{7, 1}, {1, 7}})
	require.NoError(t, err)
	require.Equal(t, 0.0, m.Weight(0, 0))
	require.Equal(t, 0.0, m.Symmetric().At(1, 1))
}

func TestNewMatrix_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   [][]float64
		want error
	}{
		{"empty", nil, graph.ErrEmpty},
		{"ragged", [][]float64{{0, 1}, {1}}, graph.ErrNotSquare},
		{"asymmetric", [][]float64{{0, 1}, {2, 0}}, graph.ErrAsymmetric},
		{"negative", [][]float64{{0, -1}, {-1, 0}}, graph.ErrNegativeWeight},
		{"nan", [][]float64{{0, math.NaN()}, {math.NaN(), 0}}, graph.ErrInvalidWeight},
		{"inf", [][]float64{{0, math.Inf(1)}, {math.Inf(1), 0}}, graph.ErrInvalidWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graph.NewMatrix(tc.in)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewMatrixFromSym(t *testing.T) {
	s := mat.NewSymDense(3, []float64{
		0, 4, 5,
		4, 0, 6,
		5, 6, 0,
	})
	m, err := graph.NewMatrixFromSym(s)
	require.NoError(t, err)
	require.Equal(t, 3, m.VertexCount())
	require.Equal(t, 6.0, m.Weight(2, 1))

	// The Matrix owns its storage.
	s.SetSym(0, 1, 100)
	require.Equal(t, 4.0, m.Weight(0, 1))

	_, err = graph.NewMatrixFromSym(nil)
	require.ErrorIs(t, err, graph.ErrEmpty)

	bad := mat.NewSymDense(2, []float64{0, -3, -3, 0})
	_, err = graph.NewMatrixFromSym(bad)
	require.ErrorIs(t, err, graph.ErrNegativeWeight)
}

func TestMatrix_WeightOutOfRangePanics(t *testing.T) {
	m, err := graph.NewMatrix(square4)
	require.NoError(t, err)
	require.Panics(t, func() { m.Weight(0, 4) })
}

// -----------------------------------------------------------------------------
// FromPoints and metrics
// -----------------------------------------------------------------------------

func TestFromPoints_Metrics(t *testing.T) {
	pts := []graph.Point{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 1.2, Y: 0}}

	m, err := graph.FromPoints(pts, nil) // nil ⇒ Euclidean
	require.NoError(t, err)
	require.InDelta(t, 5.0, m.Weight(0, 1), 1e-12)
	require.InDelta(t, 1.2, m.Weight(0, 2), 1e-12)

	r, err := graph.FromPoints(pts, graph.RoundedEuclidean)
	require.NoError(t, err)
	require.Equal(t, 1.0, r.Weight(0, 2))

	c, err := graph.FromPoints(pts, graph.CeilEuclidean)
	require.NoError(t, err)
	require.Equal(t, 2.0, c.Weight(0, 2))

	_, err = graph.FromPoints(nil, graph.Euclidean)
	require.ErrorIs(t, err, graph.ErrEmpty)

	_, err = graph.FromPoints(pts, func(a, b graph.Point) float64 { return math.NaN() })
	require.ErrorIs(t, err, graph.ErrInvalidWeight)
}

// -----------------------------------------------------------------------------
// Adjacency
// -----------------------------------------------------------------------------

func square4Edges() []graph.Edge {
	var (
		edges []graph.Edge
		i, j  int
	)
	for i = 0; i < 4; i++ {
		for j = i + 1; j < 4; j++ {
			edges = append(edges, graph.Edge{U: i, V: j, W: square4[i][j]})
		}
	}

	return edges
}

func TestNewAdjacency_MatchesMatrix(t *testing.T) {
	a, err := graph.NewAdjacency(4, square4Edges())
	require.NoError(t, err)
	m, err := graph.NewMatrix(square4)
	require.NoError(t, err)

	require.Equal(t, m.VertexCount(), a.VertexCount())
	var i, j int
	for i = 0; i < 4; i++ {
		for j = 0; j < 4; j++ {
			require.Equal(t, m.Weight(i, j), a.Weight(i, j), "w(%d,%d)", i, j)
		}
	}
	require.NoError(t, graph.Validate(a))
}

func TestNewAdjacency_DuplicateSameWeightIsAccepted(t *testing.T) {
	edges := append(square4Edges(), graph.Edge{U: 1, V: 0, W: 1})
	_, err := graph.NewAdjacency(4, edges)
	require.NoError(t, err)
}

// with returns a fresh slice holding edges plus extra.
func with(edges []graph.Edge, extra graph.Edge) []graph.Edge {
	return append(slices.Clone(edges), extra)
}

func TestNewAdjacency_Errors(t *testing.T) {
	full := square4Edges()

	cases := []struct {
		name  string
		n     int
		edges []graph.Edge
		want  error
	}{
		{"no vertices", 0, nil, graph.ErrEmpty},
		{"missing pair", 4, full[1:], graph.ErrIncomplete},
		{"too few edges for n", 2_000_000_000, full, graph.ErrIncomplete},
		{"out of range", 4, with(full, graph.Edge{U: 0, V: 4, W: 1}), graph.ErrVertexOutOfRange},
		{"self loop", 4, with(full, graph.Edge{U: 2, V: 2, W: 1}), graph.ErrSelfLoop},
		{"negative", 4, with(full, graph.Edge{U: 0, V: 1, W: -1}), graph.ErrNegativeWeight},
		{"conflict", 4, with(full, graph.Edge{U: 0, V: 1, W: 7}), graph.ErrAsymmetric},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graph.NewAdjacency(tc.n, tc.edges)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestAdjacency_SingleVertex(t *testing.T) {
	a, err := graph.NewAdjacency(1, nil)
	require.NoError(t, err)
	require.Equal(t, 1, a.VertexCount())
	require.Equal(t, 0.0, a.Weight(0, 0))
	require.Panics(t, func() { a.Weight(0, 1) })
}

// -----------------------------------------------------------------------------
// Validate on custom implementations
// -----------------------------------------------------------------------------

type funcGraph struct {
	n int
	w func(i, j int) float64
}

func (g funcGraph) VertexCount() int        { return g.n }
func (g funcGraph) Weight(i, j int) float64 { return g.w(i, j) }

func TestValidate_CustomGraph(t *testing.T) {
	require.ErrorIs(t, graph.Validate(nil), graph.ErrEmpty)
	require.ErrorIs(t, graph.Validate(funcGraph{n: 0}), graph.ErrEmpty)

	directed := funcGraph{n: 3, w: func(i, j int) float64 { return float64(i) }}
	require.ErrorIs(t, graph.Validate(directed), graph.ErrAsymmetric)

	negative := funcGraph{n: 2, w: func(i, j int) float64 { return -1 }}
	require.ErrorIs(t, graph.Validate(negative), graph.ErrNegativeWeight)

	ok := funcGraph{n: 5, w: func(i, j int) float64 { return float64(i + j) }}
	require.NoError(t, graph.Validate(ok))
}
