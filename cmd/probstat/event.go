// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/probkit/probkit/prob"
)

type eventOptions struct {
	space, a, b []string
}

func newEventCmd(a *app) *cobra.Command {
	var opts eventOptions
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Compute probabilities of events in a finite sample space",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.event(cmd.OutOrStdout(), opts)
		},
	}
	flags := cmd.Flags()
	flags.StringSliceVar(&opts.space, "space", nil, "outcomes of the sample space")
	flags.StringSliceVar(&opts.a, "a", nil, "outcomes of event A")
	flags.StringSliceVar(&opts.b, "b", nil, "outcomes of event B")
	_ = cmd.MarkFlagRequired("space")
	_ = cmd.MarkFlagRequired("a")
	return cmd
}

func (a *app) event(w io.Writer, opts eventOptions) error {
	space := prob.NewSampleSpace(opts.space...)
	ea, err := prob.NewEvent(space, opts.a...)
	if err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{"space": space, "a": ea}).Debug("events")

	fmt.Fprintf(w, "Ω = %v  |Ω| = %d\n", space, space.Cardinality())
	fmt.Fprintf(w, "%-10s %s\n", "P(A)", a.num(prob.Probability(ea)))
	fmt.Fprintf(w, "%-10s %s\n", "P(A')", a.num(prob.Probability(prob.Complement(ea))))
	if opts.b == nil {
		return nil
	}

	eb, err := prob.NewEvent(space, opts.b...)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%-10s %s\n", "P(B)", a.num(prob.Probability(eb)))
	or, err := prob.ProbabilityOr(ea, eb)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%-10s %s\n", "P(A or B)", a.num(or))
	if eb.Cardinality() > 0 {
		given, err := prob.ProbabilityGiven(ea, eb)
		if err != nil {
			return err
		}
		and, err := prob.ProbabilityAnd(ea, eb)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%-10s %s\n", "P(A|B)", a.num(given))
		fmt.Fprintf(w, "%-10s %s\n", "P(A and B)", a.num(and))
	}
	fmt.Fprintf(w, "%-10s %v\n", "disjoint", prob.IsDisjointUnion(ea, eb))
	return nil
}
