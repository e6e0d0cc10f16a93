package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/twoopt/graph"
	"github.com/katalvlaran/twoopt/tsplib"
)

// genParams are the flags of the gen command.
type genParams struct {
	n       int
	rows    int
	cols    int
	side    float64
	seed    int64
	metric  string
	minW    int
	maxW    int
	outPath string
}

func newGenCmd() *cobra.Command {
	var p genParams
	cmd := &cobra.Command{
		Use:       "gen <circle|grid|random|weights>",
		Short:     "Write a generated YAML instance",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"circle", "grid", "random", "weights"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if p.outPath == "" {
				return generate(cmd.OutOrStdout(), args[0], p)
			}

			f, err := os.Create(p.outPath)
			if err != nil {
				return err
			}

			return generateAndClose(f, args[0], p)
		},
	}

	fs := cmd.Flags()
	fs.IntVarP(&p.n, "vertices", "n", 20, "number of vertices (circle, random, weights)")
	fs.IntVar(&p.rows, "rows", 4, "grid rows")
	fs.IntVar(&p.cols, "cols", 5, "grid columns")
	fs.Float64Var(&p.side, "side", 100, "circle radius, grid spacing or random square side")
	fs.Int64Var(&p.seed, "seed", 1, "random seed (random, weights)")
	fs.StringVar(&p.metric, "metric", "euclidean", "euclidean, euc_2d or ceil_2d (point layouts)")
	fs.IntVar(&p.minW, "min-weight", 1, "smallest weight (weights)")
	fs.IntVar(&p.maxW, "max-weight", 100, "largest weight (weights)")
	fs.StringVarP(&p.outPath, "output", "o", "", "output file (default stdout)")

	return cmd
}

// generateAndClose writes the instance to wc and closes it. A failed Close
// is reported, since the file may be truncated.
func generateAndClose(wc io.WriteCloser, kind string, p genParams) error {
	if err := generate(wc, kind, p); err != nil {
		_ = wc.Close()
		return err
	}

	return wc.Close()
}

// generate writes the instance kind described by p to w.
func generate(w io.Writer, kind string, p genParams) error {
	rng := rand.New(rand.NewSource(p.seed))

	switch kind {
	case "circle":
		return tsplib.WritePointsYAML(w, fmt.Sprintf("circle%d", p.n), p.metric, graph.CirclePoints(p.n, p.side))
	case "grid":
		return tsplib.WritePointsYAML(w, fmt.Sprintf("grid%dx%d", p.rows, p.cols), p.metric, graph.GridPoints(p.rows, p.cols, p.side))
	case "random":
		return tsplib.WritePointsYAML(w, fmt.Sprintf("random%d", p.n), p.metric, graph.RandomPoints(p.n, p.side, rng))
	case "weights":
		if p.minW < 0 || p.maxW < p.minW {
			return fmt.Errorf("weights in [%d, %d]: %w", p.minW, p.maxW, ErrInvalidConfig)
		}
		g, err := graph.RandomComplete(p.n, graph.IntWeightFn(p.minW, p.maxW), rng)
		if err != nil {
			return err
		}
		return tsplib.WriteWeightsYAML(w, fmt.Sprintf("weights%d", p.n), g)
	default:
		return fmt.Errorf("unknown instance kind %q", kind)
	}
}
