package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/twoopt/graph"
)

// Instance is a loaded problem.
type Instance struct {
	// Name is the NAME keyword (or YAML name); Load falls back to the file name.
	Name string

	// Comment joins all COMMENT lines.
	Comment string

	// Graph holds the weights; it is a *graph.Matrix or a *graph.Adjacency.
	Graph graph.Graph
}

// Edge weight types.
const (
	weightEuc2D    = "EUC_2D"
	weightCeil2D   = "CEIL_2D"
	weightExplicit = "EXPLICIT"
)

// Explicit weight layouts.
const (
	formatFullMatrix   = "FULL_MATRIX"
	formatUpperRow     = "UPPER_ROW"
	formatUpperDiagRow = "UPPER_DIAG_ROW"
	formatLowerRow     = "LOWER_ROW"
	formatLowerDiagRow = "LOWER_DIAG_ROW"
)

// MaxVertices is the largest instance Parse and ParseYAML accept. Every
// instance is held as a dense n×n matrix.
const MaxVertices = 1 << 14

// maxLineBytes bounds a single input line; some writers emit a whole
// FULL_MATRIX on one line.
const maxLineBytes = 1 << 24

// header collects the keyword part of a TSPLIB file.
type header struct {
	name         string
	comment      string
	dimension    int
	weightType   string
	weightFormat string
}

// Load reads an instance from path. Files ending in .yaml or .yml are parsed
// with ParseYAML, everything else with Parse.
func Load(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var inst *Instance
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		inst, err = ParseYAML(f)
	default:
		inst, err = Parse(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if inst.Name == "" {
		inst.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return inst, nil
}

// Parse reads a TSPLIB instance. Keywords may appear in any order, but
// DIMENSION must precede the data sections and EDGE_WEIGHT_FORMAT must precede
// EDGE_WEIGHT_SECTION. Reading stops at EOF or at the end of input.
func Parse(r io.Reader) (*Instance, error) {
	s := &lineScanner{sc: bufio.NewScanner(r)}
	s.sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		h      header
		coords []graph.Point
		table  []float64
		line   string
		ok     bool
		err    error
	)
scan:
	for {
		if line, ok = s.next(); !ok {
			break
		}
		key, value, _ := strings.Cut(line, ":")
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)

		switch key {
		case "EOF":
			break scan
		case "NAME":
			h.name = value
		case "COMMENT":
			if h.comment != "" {
				h.comment += "\n"
			}
			h.comment += value
		case "TYPE":
			if value != "TSP" {
				return nil, s.errorf(ErrUnsupported, "TYPE %q", value)
			}
		case "DIMENSION":
			h.dimension, err = strconv.Atoi(value)
			if err != nil || h.dimension < 1 {
				return nil, s.errorf(ErrFormat, "DIMENSION %q", value)
			}
			if h.dimension > MaxVertices {
				return nil, s.errorf(ErrFormat, "DIMENSION %d exceeds %d", h.dimension, MaxVertices)
			}
		case "EDGE_WEIGHT_TYPE":
			switch value {
			case weightEuc2D, weightCeil2D, weightExplicit:
				h.weightType = value
			default:
				return nil, s.errorf(ErrUnsupported, "EDGE_WEIGHT_TYPE %q", value)
			}
		case "EDGE_WEIGHT_FORMAT":
			if layoutSize(value, 1) < 0 {
				return nil, s.errorf(ErrUnsupported, "EDGE_WEIGHT_FORMAT %q", value)
			}
			h.weightFormat = value
		case "NODE_COORD_TYPE":
			if value != "TWOD_COORDS" {
				return nil, s.errorf(ErrUnsupported, "NODE_COORD_TYPE %q", value)
			}
		case "DISPLAY_DATA_TYPE":
		case "NODE_COORD_SECTION":
			if h.dimension == 0 {
				return nil, s.errorf(ErrFormat, "%s before DIMENSION", key)
			}
			if coords, err = s.coords(h.dimension); err != nil {
				return nil, err
			}
		case "DISPLAY_DATA_SECTION":
			if h.dimension == 0 {
				return nil, s.errorf(ErrFormat, "%s before DIMENSION", key)
			}
			if _, err = s.numbers(3 * h.dimension); err != nil {
				return nil, err
			}
		case "EDGE_WEIGHT_SECTION":
			if h.dimension == 0 || h.weightFormat == "" {
				return nil, s.errorf(ErrFormat, "%s before DIMENSION and EDGE_WEIGHT_FORMAT", key)
			}
			if table, err = s.numbers(layoutSize(h.weightFormat, h.dimension)); err != nil {
				return nil, err
			}
		case "CAPACITY", "DEMAND_SECTION", "DEPOT_SECTION", "FIXED_EDGES_SECTION",
			"EDGE_DATA_FORMAT", "EDGE_DATA_SECTION", "TOUR_SECTION":
			return nil, s.errorf(ErrUnsupported, "keyword %s", key)
		default:
			return nil, s.errorf(ErrFormat, "unknown keyword %q", key)
		}
	}
	if err = s.sc.Err(); err != nil {
		return nil, err
	}

	g, err := h.build(coords, table)
	if err != nil {
		return nil, err
	}

	return &Instance{Name: h.name, Comment: h.comment, Graph: g}, nil
}

// build turns the parsed sections into a graph.
func (h *header) build(coords []graph.Point, table []float64) (graph.Graph, error) {
	if h.dimension == 0 {
		return nil, fmt.Errorf("missing DIMENSION: %w", ErrFormat)
	}

	var (
		g   *graph.Matrix
		err error
	)
	switch h.weightType {
	case weightEuc2D, weightCeil2D:
		if coords == nil {
			return nil, fmt.Errorf("%s without NODE_COORD_SECTION: %w", h.weightType, ErrFormat)
		}
		metric := graph.RoundedEuclidean
		if h.weightType == weightCeil2D {
			metric = graph.CeilEuclidean
		}
		g, err = graph.FromPoints(coords, metric)
	case weightExplicit:
		if table == nil {
			return nil, fmt.Errorf("EXPLICIT without EDGE_WEIGHT_SECTION: %w", ErrFormat)
		}
		g, err = graph.NewMatrix(expand(h.weightFormat, h.dimension, table))
	default:
		return nil, fmt.Errorf("missing EDGE_WEIGHT_TYPE: %w", ErrFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", h.name, err)
	}

	return g, nil
}

// layoutSize returns how many numbers an EDGE_WEIGHT_SECTION holds for n
// vertices, or -1 for an unknown layout.
func layoutSize(format string, n int) int {
	switch format {
	case formatFullMatrix:
		return n * n
	case formatUpperRow, formatLowerRow:
		return n * (n - 1) / 2
	case formatUpperDiagRow, formatLowerDiagRow:
		return n * (n + 1) / 2
	default:
		return -1
	}
}

// expand lays table out as an n×n matrix according to format. Triangular
// layouts are mirrored; FULL_MATRIX is taken as is and checked by NewMatrix.
func expand(format string, n int, table []float64) [][]float64 {
	w := make([][]float64, n)
	for i := range w {
		w[i] = make([]float64, n)
	}

	var i, j, k int
	put := func(i, j int) {
		w[i][j], w[j][i] = table[k], table[k]
		k++
	}
	switch format {
	case formatFullMatrix:
		for i = 0; i < n; i++ {
			copy(w[i], table[i*n:(i+1)*n])
		}
	case formatUpperRow:
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				put(i, j)
			}
		}
	case formatUpperDiagRow:
		for i = 0; i < n; i++ {
			for j = i; j < n; j++ {
				put(i, j)
			}
		}
	case formatLowerRow:
		for i = 0; i < n; i++ {
			for j = 0; j < i; j++ {
				put(i, j)
			}
		}
	case formatLowerDiagRow:
		for i = 0; i < n; i++ {
			for j = 0; j <= i; j++ {
				put(i, j)
			}
		}
	}

	return w
}

// lineScanner yields non-blank trimmed lines and tracks line numbers.
type lineScanner struct {
	sc   *bufio.Scanner
	line int
}

func (s *lineScanner) next() (string, bool) {
	for s.sc.Scan() {
		s.line++
		if l := strings.TrimSpace(s.sc.Text()); l != "" {
			return l, true
		}
	}

	return "", false
}

func (s *lineScanner) errorf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", s.line, fmt.Sprintf(format, args...), sentinel)
}

// numbers reads exactly k numeric tokens, spanning as many lines as needed.
// A line that carries more tokens than remain is an error.
func (s *lineScanner) numbers(k int) ([]float64, error) {
	out := make([]float64, 0, min(k, 1024))
	for len(out) < k {
		line, ok := s.next()
		if !ok {
			if err := s.sc.Err(); err != nil {
				return nil, err
			}
			return nil, s.errorf(ErrFormat, "want %d numbers, got %d", k, len(out))
		}
		for _, f := range strings.Fields(line) {
			if len(out) == k {
				return nil, s.errorf(ErrFormat, "unexpected %q", f)
			}
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, s.errorf(ErrFormat, "%q is not a number", f)
			}
			out = append(out, v)
		}
	}

	return out, nil
}

// coords reads n "id x y" records; ids are 1-based and must cover 1..n once.
func (s *lineScanner) coords(n int) ([]graph.Point, error) {
	nums, err := s.numbers(3 * n)
	if err != nil {
		return nil, err
	}

	pts := make([]graph.Point, n)
	seen := make([]bool, n)
	var (
		k  int
		id float64
		v  int
	)
	for k = 0; k < n; k++ {
		id = nums[3*k]
		v = int(id) - 1
		if id != math.Trunc(id) || v < 0 || v >= n || seen[v] {
			return nil, s.errorf(ErrFormat, "node id %g", id)
		}
		seen[v] = true
		pts[v] = graph.Point{X: nums[3*k+1], Y: nums[3*k+2]}
	}

	return pts, nil
}
