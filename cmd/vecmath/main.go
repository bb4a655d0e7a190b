// Package main is a command line front end for vecmath.
//
// Usage:
//
//	vecmath [flags] <op> <vector> [<vector>|<scalar>]
//
// Vectors are given in any form accepted by vecmath.Parse, e.g. "1,2,3" or
// "Vector: (1, 2, 3)".
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/codec"
	"github.com/hupe1980/vecmath/distance"
)

var errUsage = errors.New("usage")

type config struct {
	degrees bool
	tol     float64
	strict  bool
	metric  distance.Metric
	format  string
	logger  *vecmath.Logger
}

// operation evaluates one op. Binary ops receive the second vector in w;
// scale receives its factor in c.
type operation struct {
	arity  int // number of vector operands
	scalar bool
	eval   func(cfg *config, v, w vecmath.Vector, c float64) (any, error)
}

var operations = map[string]operation{
	"plus": {arity: 2, eval: func(_ *config, v, w vecmath.Vector, _ float64) (any, error) {
		return v.Plus(w), nil
	}},
	"minus": {arity: 2, eval: func(_ *config, v, w vecmath.Vector, _ float64) (any, error) {
		return v.Minus(w), nil
	}},
	"scale": {arity: 1, scalar: true, eval: func(_ *config, v, _ vecmath.Vector, c float64) (any, error) {
		return v.TimesScalar(c), nil
	}},
	"magnitude": {arity: 1, eval: func(_ *config, v, _ vecmath.Vector, _ float64) (any, error) {
		return v.Magnitude(), nil
	}},
	"normalize": {arity: 1, eval: func(_ *config, v, _ vecmath.Vector, _ float64) (any, error) {
		return v.Normalized()
	}},
	"zero": {arity: 1, eval: func(cfg *config, v, _ vecmath.Vector, _ float64) (any, error) {
		return v.IsZero(vecmath.WithTolerance(cfg.tol)), nil
	}},
	"dot": {arity: 2, eval: func(_ *config, v, w vecmath.Vector, _ float64) (any, error) {
		return v.Dot(w), nil
	}},
	"angle": {arity: 2, eval: func(cfg *config, v, w vecmath.Vector, _ float64) (any, error) {
		unit := vecmath.Radians
		if cfg.degrees {
			unit = vecmath.Degrees
		}
		return v.AngleWith(w, unit)
	}},
	"orthogonal": {arity: 2, eval: func(cfg *config, v, w vecmath.Vector, _ float64) (any, error) {
		return v.IsOrthogonalTo(w, vecmath.WithTolerance(cfg.tol)), nil
	}},
	"parallel": {arity: 2, eval: func(cfg *config, v, w vecmath.Vector, _ float64) (any, error) {
		return v.IsParallelTo(w, vecmath.WithTolerance(cfg.tol)), nil
	}},
	"distance": {arity: 2, eval: func(cfg *config, v, w vecmath.Vector, _ float64) (any, error) {
		return v.DistanceTo(w, cfg.metric)
	}},
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("vecmath", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		degrees = fs.Bool("deg", false, "report angles in degrees")
		tol     = fs.Float64("tol", vecmath.DefaultTolerance, "tolerance for zero, orthogonal and parallel")
		strict  = fs.Bool("strict", false, "reject operands of different dimension")
		metric  = fs.String("metric", distance.MetricL2.String(), "metric for distance (L2, SquaredL2, Dot)")
		format  = fs.String("format", "text", "output format: text, "+strings.Join(codec.Names(), ", "))
		verbose = fs.Bool("v", false, "verbose output")
	)

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: vecmath [flags] <op> <vector> [<vector>|<scalar>]\n\nOps: %s\n\nFlags:\n",
			strings.Join(opNames(), ", "))
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}

	m, err := distance.ParseMetric(*metric)
	if err != nil {
		return err
	}

	cfg := &config{
		degrees: *degrees,
		tol:     *tol,
		strict:  *strict,
		metric:  m,
		format:  *format,
		logger:  vecmath.NewTextLogger(stderr, level),
	}

	if fs.NArg() < 2 {
		fs.Usage()
		return errUsage
	}

	name := fs.Arg(0)
	op, ok := operations[name]
	if !ok {
		return fmt.Errorf("unknown op %q (want one of %s)", name, strings.Join(opNames(), ", "))
	}

	result, dim, err := evaluate(cfg, op, fs.Args()[1:])
	cfg.logger.LogOperation(ctx, name, dim, err)
	if err != nil {
		return err
	}

	return render(stdout, cfg.format, result)
}

func evaluate(cfg *config, op operation, operands []string) (any, int, error) {
	want := op.arity
	if op.scalar {
		want++
	}
	if len(operands) != want {
		return nil, 0, fmt.Errorf("expected %d operands, got %d", want, len(operands))
	}

	v, err := vecmath.Parse(operands[0])
	if err != nil {
		return nil, 0, fmt.Errorf("operand 1: %w", err)
	}

	var (
		w vecmath.Vector
		c float64
	)

	switch {
	case op.scalar:
		c, err = strconv.ParseFloat(operands[1], 64)
		if err != nil {
			return nil, v.Dimension(), fmt.Errorf("scalar: %w", err)
		}
	case op.arity == 2:
		w, err = vecmath.Parse(operands[1])
		if err != nil {
			return nil, v.Dimension(), fmt.Errorf("operand 2: %w", err)
		}
		if cfg.strict {
			if err := v.CheckDimension(w); err != nil {
				return nil, v.Dimension(), err
			}
		}
	}

	result, err := op.eval(cfg, v, w, c)
	return result, v.Dimension(), err
}

func render(w io.Writer, format string, result any) error {
	if format == "text" {
		switch r := result.(type) {
		case float64:
			_, err := fmt.Fprintln(w, strconv.FormatFloat(r, 'g', -1, 64))
			return err
		default:
			_, err := fmt.Fprintln(w, r)
			return err
		}
	}

	c, ok := codec.ByName(format)
	if !ok {
		return fmt.Errorf("unknown format %q", format)
	}

	b, err := c.Marshal(result)
	if err != nil {
		return fmt.Errorf("codec %s: %w", c.Name(), err)
	}
	if _, err := w.Write(b); err != nil {
		return err
	}
	if len(b) > 0 && b[len(b)-1] != '\n' {
		_, err = io.WriteString(w, "\n")
	}
	return err
}

func opNames() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
