// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/probkit/probkit/dist"
	"github.com/probkit/probkit/mathx"
)

// distParams are the parameters of every supported distribution.
// Each distribution reads only the ones it needs.
type distParams struct {
	p, lambda, a, b, mean, std float64
	n                          int
}

// distributions maps a distribution name to its constructor. The
// result is a dist.Discrete or a dist.Continuous.
var distributions = map[string]func(distParams) (interface{}, error){
	"bernoulli": func(p distParams) (interface{}, error) { return dist.NewBernoulli(p.p) },
	"binomial":  func(p distParams) (interface{}, error) { return dist.NewBinomial(p.n, p.p) },
	"geometric": func(p distParams) (interface{}, error) { return dist.NewGeometric(p.p) },
	"poisson":   func(p distParams) (interface{}, error) { return dist.NewPoisson(p.lambda) },
	"discrete-uniform": func(p distParams) (interface{}, error) {
		a, b, err := integral(p.a, p.b)
		if err != nil {
			return nil, err
		}
		return dist.NewDiscreteUniform(a, b)
	},
	"uniform":     func(p distParams) (interface{}, error) { return dist.NewUniform(p.a, p.b) },
	"exponential": func(p distParams) (interface{}, error) { return dist.NewExponential(p.lambda) },
	"normal":      func(p distParams) (interface{}, error) { return dist.NewNormal(p.mean, p.std) },
}

func distNames() []string {
	names := make([]string, 0, len(distributions))
	for name := range distributions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type distOptions struct {
	params distParams
	x, x2  float64
	hasX2  bool
}

func newDistCmd(a *app) *cobra.Command {
	var opts distOptions
	cmd := &cobra.Command{
		Use:   "dist NAME",
		Short: "Evaluate a distribution at a point or over an interval",
		Long:  "Evaluate a distribution. NAME is one of: " + strings.Join(distNames(), ", ") + ".",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.hasX2 = cmd.Flags().Changed("x2")
			return a.dist(cmd.OutOrStdout(), args[0], opts)
		},
	}
	flags := cmd.Flags()
	flags.Float64Var(&opts.params.p, "p", 0.5, "success probability")
	flags.IntVar(&opts.params.n, "n", 1, "number of trials")
	flags.Float64Var(&opts.params.lambda, "lambda", 1, "rate")
	flags.Float64Var(&opts.params.a, "a", 0, "lower bound")
	flags.Float64Var(&opts.params.b, "b", 1, "upper bound")
	flags.Float64Var(&opts.params.mean, "mean", 0, "mean")
	flags.Float64Var(&opts.params.std, "std", 1, "standard deviation")
	flags.Float64Var(&opts.x, "x", 0, "evaluation point")
	flags.Float64Var(&opts.x2, "x2", 0, "upper end of an interval for continuous distributions")
	return cmd
}

func (a *app) dist(w io.Writer, name string, opts distOptions) error {
	ctor, ok := distributions[strings.ToLower(name)]
	if !ok {
		err := errors.Newf("unknown distribution %q", name)
		return errors.WithHintf(err, "known distributions: %s", strings.Join(distNames(), ", "))
	}
	d, err := ctor(opts.params)
	if err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{"dist": d, "x": opts.x}).Debug("evaluating")

	fmt.Fprintf(w, "%v\n", d)
	switch d := d.(type) {
	case dist.Discrete:
		fmt.Fprintf(w, "%-10s %s\n", "mean", a.num(d.Mean()))
		fmt.Fprintf(w, "%-10s %s\n", "variance", a.num(d.Variance()))
		if opts.hasX2 {
			return errors.Newf("%v is discrete; --x2 is only for continuous distributions", d)
		}
		x, _, err := integral(opts.x, 0)
		if err != nil {
			return err
		}
		pmf, err := d.PMF(x)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%-10s %s\n", fmt.Sprintf("pmf(%d)", x), a.num(pmf))
		fmt.Fprintf(w, "%-10s %s\n", fmt.Sprintf("cdf(%d)", x), a.num(d.CDF(x)))
	case dist.Continuous:
		fmt.Fprintf(w, "%-10s %s\n", "mean", a.num(d.Mean()))
		fmt.Fprintf(w, "%-10s %s\n", "variance", a.num(d.Variance()))
		fmt.Fprintf(w, "%-10s %s\n", fmt.Sprintf("cdf(%g)", opts.x), a.num(d.CDF(opts.x)))
		if opts.hasX2 {
			p, err := d.Prob(opts.x, opts.x2)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%-10s %s\n", fmt.Sprintf("P[%g,%g]", opts.x, opts.x2), a.num(p))
		}
	default:
		return errors.AssertionFailedf("%T is not a distribution", d)
	}
	return nil
}

// integral converts flag values that must be whole numbers.
func integral(x, y float64) (int, int, error) {
	for _, v := range []float64{x, y} {
		if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
			return 0, 0, mathx.DomainErrorf("%v is not an integer", v)
		}
	}
	return int(x), int(y), nil
}
