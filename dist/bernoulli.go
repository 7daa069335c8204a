// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"

	"github.com/probkit/probkit/mathx"
)

// Bernoulli is the distribution of a single trial that succeeds (1)
// with probability P and fails (0) otherwise.
type Bernoulli struct {
	p              float64
	mean, variance float64
}

// NewBernoulli returns a Bernoulli distribution with success
// probability p. 0 <= p <= 1.
func NewBernoulli(p float64) (Bernoulli, error) {
	if err := checkProb("p", p); err != nil {
		return Bernoulli{}, err
	}
	return Bernoulli{
		p:        p,
		mean:     mathx.Round(p),
		variance: mathx.Round(p * (1 - p)),
	}, nil
}

// P returns the success probability.
func (d Bernoulli) P() float64 { return d.p }

// PMF is p^x q^(1-x) for x in {0, 1}.
func (d Bernoulli) PMF(x int) (float64, error) {
	if x != 0 && x != 1 {
		return 0, mathx.DomainErrorf("Bernoulli PMF undefined at %d", x)
	}
	return mathx.Round(math.Pow(d.p, float64(x)) * math.Pow(1-d.p, float64(1-x))), nil
}

func (d Bernoulli) CDF(x int) float64 {
	switch {
	case x < 0:
		return 0
	case x >= 1:
		return 1
	}
	return mathx.Round(1 - d.p)
}

func (d Bernoulli) Mean() float64     { return d.mean }
func (d Bernoulli) Variance() float64 { return d.variance }

func (d Bernoulli) String() string {
	return fmt.Sprintf("Bernoulli(p=%v)", d.p)
}
