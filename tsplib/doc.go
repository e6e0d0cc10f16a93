// Package tsplib loads symmetric TSP instances into graph.Graph values.
//
// Two input formats are supported:
//
//   - A TSPLIB subset (Parse): TYPE TSP with EDGE_WEIGHT_TYPE EUC_2D, CEIL_2D
//     or EXPLICIT, the latter in FULL_MATRIX, UPPER_ROW, UPPER_DIAG_ROW,
//     LOWER_ROW or LOWER_DIAG_ROW layout. EUC_2D and CEIL_2D weights are
//     rounded to integers as TSPLIB prescribes.
//   - A YAML document (ParseYAML) with a name and exactly one of points,
//     weights or edges. Edge lists build a graph.Adjacency, the other two a
//     graph.Matrix.
//
// WritePointsYAML and WriteWeightsYAML produce documents ParseYAML reads back
// with identical weights. Load dispatches on the file extension. All errors wrap ErrFormat,
// ErrUnsupported, or a graph package sentinel.
package tsplib
