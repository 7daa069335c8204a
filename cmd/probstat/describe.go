// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/probkit/probkit/stats"
	"github.com/probkit/probkit/table"
)

type describeOptions struct {
	columns    []string
	confidence float64
	corr       string
	lines      bool
}

func newDescribeCmd(a *app) *cobra.Command {
	var opts describeOptions
	cmd := &cobra.Command{
		Use:   "describe FILE",
		Short: "Summarize the numeric columns of a CSV file (- for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("confidence") {
				opts.confidence = a.cfg.Confidence
			}
			return a.describe(cmd.OutOrStdout(), cmd.InOrStdin(), args[0], opts)
		},
	}
	flags := cmd.Flags()
	flags.StringSliceVar(&opts.columns, "column", nil, "describe only these `columns`")
	flags.Float64Var(&opts.confidence, "confidence", 0.95, "confidence `level` for the mean interval")
	flags.StringVar(&opts.corr, "corr", "", "print covariance and correlation of two columns `A,B`")
	flags.BoolVar(&opts.lines, "lines", false, "input is newline-separated numbers, not CSV")
	return cmd
}

func (a *app) describe(w io.Writer, stdin io.Reader, path string, opts describeOptions) error {
	var in io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	if opts.lines {
		s, err := readLines(in)
		if err != nil {
			return err
		}
		return a.printSample(w, "", s, opts.confidence)
	}

	t, err := table.Load(in)
	if err != nil {
		return errors.Wrapf(err, "%s", path)
	}
	a.log.WithFields(logrus.Fields{
		"file":    path,
		"rows":    t.Len(),
		"columns": len(t.Header()),
	}).Debug("loaded table")

	cols := opts.columns
	if len(cols) == 0 {
		for _, name := range t.Header() {
			if t.IsNumeric(name) {
				cols = append(cols, name)
			} else {
				a.log.WithField("column", name).Debug("skipping non-numeric column")
			}
		}
	}
	for i, name := range cols {
		xs, err := t.Floats(name)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := a.printSample(w, name, stats.Sample{Xs: xs}, opts.confidence); err != nil {
			return err
		}
	}

	if opts.corr != "" {
		names := strings.Split(opts.corr, ",")
		if len(names) != 2 {
			return errors.Newf("--corr wants two columns, got %q", opts.corr)
		}
		xs, err := t.Floats(strings.TrimSpace(names[0]))
		if err != nil {
			return err
		}
		ys, err := t.Floats(strings.TrimSpace(names[1]))
		if err != nil {
			return err
		}
		cov, err := stats.Covariance(xs, ys)
		if err != nil {
			return err
		}
		r, err := stats.Correlation(xs, ys)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\n%s  covariance %s  correlation %s\n", opts.corr, a.num(cov), a.num(r))
	}
	return nil
}

func (a *app) printSample(w io.Writer, name string, s stats.Sample, confidence float64) error {
	if name != "" {
		fmt.Fprintf(w, "%s\n", name)
	}
	s.Sort()
	fmt.Fprintf(w, "N %d  sum %s  mean %s", len(s.Xs), a.num(s.Sum()), a.num(s.Mean()))
	fmt.Fprintf(w, "  std dev %s  variance %s\n", a.num(s.StdDev()), a.num(s.Variance()))

	lo, hi := s.Bounds()
	fmt.Fprintf(w, "%8s %s\n", "min", a.num(lo))
	fmt.Fprintf(w, "%8s %s\n", "median", a.num(s.Median()))
	fmt.Fprintf(w, "%8s %s\n", "mode", a.num(s.Mode()))
	fmt.Fprintf(w, "%8s %s\n", "max", a.num(hi))

	if len(s.Xs) < 2 {
		return nil
	}
	ci, err := stats.MeanCI(s.Xs, confidence)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%7g%% [%s, %s]  ± %s\n", 100*ci.Confidence, a.num(ci.Lo), a.num(ci.Hi), a.num(ci.Margin))

	mci, err := s.QuantileCI(0.5, confidence)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%7g%% median [%s, %s]  achieved %s\n", 100*confidence, a.num(mci.Lo), a.num(mci.Hi), a.num(mci.Confidence))
	return nil
}

// num formats x with the configured number of significant digits.
func (a *app) num(x float64) string {
	if math.IsNaN(x) {
		return "-"
	}
	return strconv.FormatFloat(x, 'g', a.cfg.Precision, 64)
}

// readLines reads newline-separated numbers. Blank lines are
// skipped.
func readLines(r io.Reader) (sample stats.Sample, err error) {
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return sample, errors.Wrapf(err, "line %d", line)
		}
		sample.Xs = append(sample.Xs, value)
	}
	return sample, scanner.Err()
}
