package tsplib

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/twoopt/graph"
)

// document is the YAML instance schema:
//
//	name: square
//	metric: euclidean        # euclidean | euc_2d | ceil_2d; points only
//	points: [[0, 0], [1, 0], [1, 1], [0, 1]]
//
// or weights: [[0, 1, ...], ...], or
//
//	vertices: 3              # optional; inferred from the largest endpoint
//	edges: [{u: 0, v: 1, w: 2.5}, ...]
type document struct {
	Name     string      `yaml:"name,omitempty"`
	Comment  string      `yaml:"comment,omitempty"`
	Metric   string      `yaml:"metric,omitempty"`
	Points   [][]float64 `yaml:"points,omitempty,flow"`
	Weights  [][]float64 `yaml:"weights,omitempty,flow"`
	Vertices int         `yaml:"vertices,omitempty"`
	Edges    []edge      `yaml:"edges,omitempty"`
}

type edge struct {
	U int     `yaml:"u"`
	V int     `yaml:"v"`
	W float64 `yaml:"w"`
}

// ParseYAML reads one YAML instance document. Unknown fields are rejected.
func ParseYAML(r io.Reader) (*Instance, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty document: %w", ErrFormat)
		}
		return nil, fmt.Errorf("%v: %w", err, ErrFormat)
	}

	g, err := doc.build()
	if err != nil {
		return nil, err
	}

	return &Instance{Name: doc.Name, Comment: doc.Comment, Graph: g}, nil
}

func (d *document) build() (graph.Graph, error) {
	var forms int
	for _, set := range []bool{d.Points != nil, d.Weights != nil, d.Edges != nil} {
		if set {
			forms++
		}
	}
	if forms != 1 {
		return nil, fmt.Errorf("want exactly one of points, weights, edges; got %d: %w", forms, ErrFormat)
	}
	if d.Metric != "" && d.Points == nil {
		return nil, fmt.Errorf("metric %q without points: %w", d.Metric, ErrFormat)
	}

	if n := max(len(d.Points), len(d.Weights), d.Vertices); n > MaxVertices {
		return nil, fmt.Errorf("%d vertices exceed %d: %w", n, MaxVertices, ErrFormat)
	}

	switch {
	case d.Points != nil:
		metric, err := metricOf(d.Metric)
		if err != nil {
			return nil, err
		}
		pts := make([]graph.Point, len(d.Points))
		for i, p := range d.Points {
			if len(p) != 2 {
				return nil, fmt.Errorf("point %d has %d coordinates: %w", i, len(p), ErrFormat)
			}
			pts[i] = graph.Point{X: p[0], Y: p[1]}
		}
		return wrapGraph(graph.FromPoints(pts, metric))
	case d.Weights != nil:
		return wrapGraph(graph.NewMatrix(d.Weights))
	default:
		n := d.Vertices
		edges := make([]graph.Edge, len(d.Edges))
		for i, e := range d.Edges {
			edges[i] = graph.Edge{U: e.U, V: e.V, W: e.W}
			if d.Vertices == 0 {
				n = max(n, e.U+1, e.V+1)
			}
		}
		if n > MaxVertices {
			return nil, fmt.Errorf("%d vertices exceed %d: %w", n, MaxVertices, ErrFormat)
		}
		a, err := graph.NewAdjacency(n, edges)
		if err != nil {
			return nil, err
		}
		return a, nil
	}
}

// wrapGraph narrows a Matrix constructor result to graph.Graph, keeping a
// nil interface on error.
func wrapGraph(m *graph.Matrix, err error) (graph.Graph, error) {
	if err != nil {
		return nil, err
	}

	return m, nil
}

func metricOf(name string) (graph.Metric, error) {
	switch strings.ToLower(name) {
	case "", "euclidean":
		return graph.Euclidean, nil
	case "euc_2d":
		return graph.RoundedEuclidean, nil
	case "ceil_2d":
		return graph.CeilEuclidean, nil
	default:
		return nil, fmt.Errorf("metric %q: %w", name, ErrUnsupported)
	}
}

// WritePointsYAML writes a points instance that ParseYAML reads back with the
// same weights. metric is one of the names ParseYAML accepts.
func WritePointsYAML(w io.Writer, name, metric string, pts []graph.Point) error {
	if _, err := metricOf(metric); err != nil {
		return err
	}
	if len(pts) == 0 {
		return fmt.Errorf("no points: %w", ErrFormat)
	}

	doc := document{Name: name, Metric: metric, Points: make([][]float64, len(pts))}
	for i, p := range pts {
		doc.Points[i] = []float64{p.X, p.Y}
	}

	return encode(w, &doc)
}

// WriteWeightsYAML writes the full weight table of g.
func WriteWeightsYAML(w io.Writer, name string, g graph.Graph) error {
	if g == nil || g.VertexCount() == 0 {
		return fmt.Errorf("no vertices: %w", ErrFormat)
	}

	n := g.VertexCount()
	doc := document{Name: name, Weights: make([][]float64, n)}
	var i, j int
	for i = 0; i < n; i++ {
		doc.Weights[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if i != j {
				doc.Weights[i][j] = g.Weight(i, j)
			}
		}
	}

	return encode(w, &doc)
}

func encode(w io.Writer, doc *document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}
