package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

var square = filepath.Join("testdata", "square.tsp")

func TestSolve(t *testing.T) {
	out, logs, err := run(t, "solve", square, "--restarts", "5", "--workers", "2")
	require.NoError(t, err)

	require.Contains(t, out, "instance   square4 (4 vertices)")
	require.Contains(t, out, "best-fit, delta costing off, 5 restarts")
	require.Contains(t, out, "best       [0 1 2 3]")
	require.Contains(t, out, "min 40  max 40")
	require.Contains(t, out, "converged  5/5")
	require.Contains(t, logs, `msg="multi-start finished"`)
	require.NotContains(t, logs, "level=debug")
}

func TestSolve_ConfigFileAndFlagOverride(t *testing.T) {
	out, logs, err := run(t, "solve", square,
		"--config", filepath.Join("testdata", "config.yaml"),
		"--restarts", "3", "--delta")
	require.NoError(t, err)

	require.Contains(t, out, "first-fit, delta costing on, 3 restarts")
	// log_level: warn in the file silences info.
	require.NotContains(t, logs, "level=info")
}

func TestSolve_DebugLogging(t *testing.T) {
	_, logs, err := run(t, "solve", square, "--restarts", "2", "--log-level", "debug")
	require.NoError(t, err)
	require.Contains(t, logs, `msg="resolved config"`)
	require.Contains(t, logs, `msg="2-opt finished"`)
	require.Contains(t, logs, "component=tsp")
}

func TestSolve_Errors(t *testing.T) {
	_, _, err := run(t, "solve", square, "--restarts", "0")
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, _, err = run(t, "solve", square, "--log-level", "loud")
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, _, err = run(t, "solve", filepath.Join("testdata", "absent.tsp"))
	require.Error(t, err)

	_, _, err = run(t, "solve")
	require.Error(t, err)
}

func TestGen_ThenSolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "circle.yaml")
	_, _, err := run(t, "gen", "circle", "-n", "6", "--side", "10", "-o", path)
	require.NoError(t, err)

	out, _, err := run(t, "solve", path, "--restarts", "4")
	require.NoError(t, err)
	require.Contains(t, out, "instance   circle6 (6 vertices)")
	require.Contains(t, out, "best       [0 1 2 3 4 5]")
}

func TestGen_Stdout(t *testing.T) {
	out, _, err := run(t, "gen", "weights", "-n", "3", "--seed", "2")
	require.NoError(t, err)
	require.Contains(t, out, "name: weights3")
	require.Contains(t, out, "weights: [[0, ")

	grid, _, err := run(t, "gen", "grid", "--rows", "2", "--cols", "2", "--side", "1")
	require.NoError(t, err)
	require.Contains(t, grid, "points: [[0, 0], [1, 0], [0, 1], [1, 1]]")

	_, _, err = run(t, "gen", "spiral")
	require.Error(t, err)

	_, _, err = run(t, "gen", "weights", "--min-weight", "5", "--max-weight", "1")
	require.ErrorIs(t, err, ErrInvalidConfig)
}

// closeFailer records writes and fails on Close.
type closeFailer struct {
	bytes.Buffer
	closed bool
}

var errDiskFull = errors.New("disk full")

func (c *closeFailer) Close() error {
	c.closed = true
	return errDiskFull
}

func TestGenerateAndClose_ReportsCloseError(t *testing.T) {
	p := genParams{n: 4, side: 1, metric: "euclidean"}

	var wc closeFailer
	err := generateAndClose(&wc, "circle", p)
	require.ErrorIs(t, err, errDiskFull)
	require.True(t, wc.closed)
	require.Contains(t, wc.String(), "name: circle4")

	// A generate error wins over the Close error.
	wc = closeFailer{}
	err = generateAndClose(&wc, "spiral", p)
	require.Error(t, err)
	require.NotErrorIs(t, err, errDiskFull)
	require.True(t, wc.closed)
}
