// Command twoopt improves random tours of a TSP instance with 2-opt local
// search and reports the best tour found.
//
//	twoopt solve testdata/square.tsp --restarts 50 --first-fit --log-level debug
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/twoopt/tsp"
	"github.com/katalvlaran/twoopt/tsplib"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "twoopt",
		Short:        "2-opt local search for the symmetric TSP",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("config", "", "YAML config file")
	root.PersistentFlags().String("log-level", "info", "debug, info, warn or error")
	root.AddCommand(newSolveCmd(), newGenCmd())

	return root
}

// newLogger builds the logfmt logger on w, filtered to levelName.
func newLogger(w io.Writer, levelName string) (log.Logger, error) {
	allow, err := level.Parse(levelName)
	if err != nil {
		return nil, err
	}

	var logger log.Logger
	{
		logger = log.NewLogfmtLogger(log.NewSyncWriter(w))
		logger = log.With(logger, "ts", log.DefaultTimestampUTC)
		logger = log.With(logger, "caller", log.DefaultCaller)
		logger = level.NewFilter(logger, level.Allow(allow))
	}

	return logger, nil
}

func newSolveCmd() *cobra.Command {
	var flags Config
	cmd := &cobra.Command{
		Use:   "solve <instance>",
		Short: "Run multi-start 2-opt on a TSPLIB (.tsp) or YAML (.yaml) instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}

			return solve(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], cfg)
		},
	}

	def := DefaultConfig()
	fs := cmd.Flags()
	fs.IntVar(&flags.Restarts, "restarts", def.Restarts, "number of random initial tours")
	fs.Int64Var(&flags.Seed, "seed", def.Seed, "random seed")
	fs.IntVar(&flags.Workers, "workers", def.Workers, "concurrent restarts (0 = all CPUs)")
	fs.BoolVar(&flags.FirstFit, "first-fit", def.FirstFit, "first-fit instead of best-fit selection")
	fs.BoolVar(&flags.Delta, "delta", def.Delta, "filter candidates by O(1) cost delta")
	fs.IntVar(&flags.MaxIterations, "max-iterations", def.MaxIterations, "cap on improving steps per restart (0 = none)")

	return cmd
}

// resolveConfig layers DefaultConfig, the --config file and explicitly set flags.
func resolveConfig(cmd *cobra.Command, flags Config) (Config, error) {
	var (
		cfg = DefaultConfig()
		err error
	)
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		if cfg, err = LoadConfig(path); err != nil {
			return cfg, err
		}
	}

	fs := cmd.Flags()
	if fs.Changed("log-level") {
		cfg.LogLevel, _ = fs.GetString("log-level")
	}
	if fs.Changed("restarts") {
		cfg.Restarts = flags.Restarts
	}
	if fs.Changed("seed") {
		cfg.Seed = flags.Seed
	}
	if fs.Changed("workers") {
		cfg.Workers = flags.Workers
	}
	if fs.Changed("first-fit") {
		cfg.FirstFit = flags.FirstFit
	}
	if fs.Changed("delta") {
		cfg.Delta = flags.Delta
	}
	if fs.Changed("max-iterations") {
		cfg.MaxIterations = flags.MaxIterations
	}

	return cfg, cfg.Validate()
}

func solve(ctx context.Context, stdout, stderr io.Writer, path string, cfg Config) error {
	logger, err := newLogger(stderr, cfg.LogLevel)
	if err != nil {
		return err
	}
	_ = level.Debug(logger).Log("msg", "resolved config", "config", pretty.Sprint(cfg))

	inst, err := tsplib.Load(path)
	if err != nil {
		return err
	}
	n := inst.Graph.VertexCount()
	_ = level.Info(logger).Log("msg", "instance loaded", "name", inst.Name, "vertices", n)

	engine := tsp.NewEngine(append(cfg.engineOptions(), tsp.WithLogger(log.With(logger, "component", "tsp")))...)
	opts := cfg.multiStartOptions()

	begin := time.Now()
	rep, err := engine.MultiStart(ctx, inst.Graph, opts)
	if err != nil {
		return err
	}
	took := time.Since(begin)

	deltaState := "off"
	if cfg.Delta {
		deltaState = "on"
	}
	fmt.Fprintf(stdout, "instance   %s (%d vertices)\n", inst.Name, n)
	fmt.Fprintf(stdout, "search     %s, delta costing %s, %d restarts\n", opts.Selection, deltaState, opts.Restarts)
	fmt.Fprintf(stdout, "best       %v\n", rep.Best.Canonical().Route())
	fmt.Fprintf(stdout, "cost       min %s  max %s  avg %s  stddev %s\n",
		humanize.Commaf(rep.Min), humanize.Commaf(rep.Max),
		humanize.CommafWithDigits(rep.Mean, 2), humanize.CommafWithDigits(rep.StdDev, 2))
	fmt.Fprintf(stdout, "evaluated  %s exchanges, %s improving steps\n",
		humanize.Comma(int64(rep.Evaluated)), humanize.Comma(int64(rep.Iterations)))
	fmt.Fprintf(stdout, "converged  %d/%d in %s\n", rep.Converged, opts.Restarts, took.Round(time.Microsecond))

	return nil
}
