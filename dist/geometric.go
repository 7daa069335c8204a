// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"

	"github.com/probkit/probkit/mathx"
)

// Geometric is the distribution of the number of failures before the
// first success in a sequence of Bernoulli trials with success
// probability P.
type Geometric struct {
	p              float64
	mean, variance float64
}

// NewGeometric returns a geometric distribution with success
// probability 0 <= p <= 1. With p = 0 there is never a first
// success: PMF and CDF are 0 everywhere and the mean and variance are
// +Inf.
func NewGeometric(p float64) (Geometric, error) {
	if err := checkProb("p", p); err != nil {
		return Geometric{}, err
	}
	q := 1 - p
	return Geometric{
		p:        p,
		mean:     mathx.Round(q / p),
		variance: mathx.Round(q / (p * p)),
	}, nil
}

// P returns the per-trial success probability.
func (d Geometric) P() float64 { return d.p }

// PMF is p q^x for x >= 0.
func (d Geometric) PMF(x int) (float64, error) {
	if x < 0 {
		return 0, mathx.DomainErrorf("Geometric PMF undefined at %d", x)
	}
	return mathx.Round(d.p * math.Pow(1-d.p, float64(x))), nil
}

// CDF is 1 - q^(x+1) for x >= 0.
func (d Geometric) CDF(x int) float64 {
	if x < 0 {
		return 0
	}
	return mathx.Round(1 - math.Pow(1-d.p, float64(x+1)))
}

func (d Geometric) Mean() float64     { return d.mean }
func (d Geometric) Variance() float64 { return d.variance }

func (d Geometric) String() string {
	return fmt.Sprintf("Geometric(p=%v)", d.p)
}
