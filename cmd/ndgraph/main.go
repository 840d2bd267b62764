// Package main provides the ndgraph CLI, which evaluates a set of example
// array expressions and gradient queries and prints the results.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"k8s.io/klog/v2"

	"github.com/born-ml/ndgraph/autodiff"
	"github.com/born-ml/ndgraph/tensor"
)

const version = "v0.1.0-dev"

func main() {
	ctx := context.Background()
	err := run(ctx, os.Args[1:], os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

// options holds the CLI configuration.
type options struct {
	Scenario    string
	Parallel    bool
	ShowVersion bool
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("ndgraph", flag.ContinueOnError)
	klog.InitFlags(fs)

	opts := &options{}
	fs.StringVar(&opts.Scenario, "scenario", "all", "scenario to run: all or one of "+strings.Join(scenarioNames(), ", "))
	fs.BoolVar(&opts.Parallel, "parallel", false, "distribute matmul rows across CPUs")
	fs.BoolVar(&opts.ShowVersion, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

func run(ctx context.Context, args []string, out io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}
	if opts.ShowVersion {
		fmt.Fprintf(out, "ndgraph %s\n", version)
		return nil
	}

	log := klog.FromContext(ctx)

	names := []string{opts.Scenario}
	if opts.Scenario == "all" {
		names = scenarioNames()
	}

	for _, name := range names {
		fn, ok := scenarios[name]
		if !ok {
			return fmt.Errorf("unknown scenario %q (want all or one of %s)", name, strings.Join(scenarioNames(), ", "))
		}
		log.V(2).Info("running scenario", "name", name, "parallel", opts.Parallel)
		result, err := fn(ctx, opts)
		if err != nil {
			return fmt.Errorf("scenario %q: %w", name, err)
		}
		fmt.Fprintf(out, "%s:\n%s\n\n", name, result)
	}
	return nil
}

type scenarioFunc func(ctx context.Context, opts *options) (string, error)

var scenarios = map[string]scenarioFunc{
	"add":    runAdd,
	"chain":  runChain,
	"neg":    runNeg,
	"mul":    runMul,
	"matmul": runMatMul,
	"grad":   runGrad,
}

func scenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func vector(values ...int) (autodiff.Expr[int, tensor.Rank1], error) {
	v, err := tensor.Vector(values...)
	if err != nil {
		return autodiff.Expr[int, tensor.Rank1]{}, err
	}
	return autodiff.Leaf(v), nil
}

// evaluate forces expr through autodiff.Evaluate so panics surface as errors.
func evaluate[T tensor.Element, I tensor.Index](ctx context.Context, expr autodiff.Expr[T, I]) (string, error) {
	if err := autodiff.Evaluate[T, I](ctx, expr); err != nil {
		return "", err
	}
	return expr.Output().String(), nil
}

func runAdd(ctx context.Context, _ *options) (string, error) {
	a, err := vector(1, 2)
	if err != nil {
		return "", err
	}
	b, err := vector(3, 4)
	if err != nil {
		return "", err
	}
	return evaluate(ctx, a.Add(b))
}

func runChain(ctx context.Context, _ *options) (string, error) {
	a, err := vector(1, 2, 3)
	if err != nil {
		return "", err
	}
	b, err := vector(4, 5, 6)
	if err != nil {
		return "", err
	}
	c, err := vector(4, 5, 6)
	if err != nil {
		return "", err
	}
	return evaluate(ctx, a.Add(b).Add(c))
}

func runNeg(ctx context.Context, _ *options) (string, error) {
	a, err := vector(1, 2, 3)
	if err != nil {
		return "", err
	}
	return evaluate(ctx, a.Neg())
}

func runMul(ctx context.Context, _ *options) (string, error) {
	a, err := vector(1, 2, 3)
	if err != nil {
		return "", err
	}
	b, err := vector(4, 5, 6)
	if err != nil {
		return "", err
	}
	return evaluate(ctx, a.Mul(b))
}

func runMatMul(_ context.Context, opts *options) (string, error) {
	lhs, err := tensor.Matrix([][]int{{0, 1, 2}, {3, 4, 5}})
	if err != nil {
		return "", err
	}
	rhs, err := tensor.Matrix([][]int{{1, 0}, {0, 1}, {0, 0}})
	if err != nil {
		return "", err
	}
	if opts.Parallel {
		return tensor.MatMulWith(lhs, rhs, tensor.DefaultParallelConfig()).String(), nil
	}
	return tensor.MatMul(lhs, rhs).String(), nil
}

func runGrad(_ context.Context, _ *options) (string, error) {
	a := autodiff.Leaf(tensor.Scalar(1.0))
	b := autodiff.Leaf(tensor.Scalar(2.0))

	daDa, err := autodiff.GradScalar(a, a)
	if err != nil {
		return "", err
	}
	daDb, err := autodiff.GradScalar(a, b)
	if err != nil {
		return "", err
	}

	v := autodiff.NewConstant(tensor.Must(tensor.Vector(1.0, 2.0)))
	dvDv, err := autodiff.GradVector[float64](v, v)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("da/da = %s\nda/db = %s\ndv/dv = %s",
		daDa.Output(), daDb.Output(), dvDv.Output()), nil
}
