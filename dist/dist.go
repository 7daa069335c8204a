// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dist implements named discrete and continuous probability
// distributions.
//
// Every distribution is an immutable value constructed by a New
// function that validates its parameters. Mean and variance are
// computed once at construction. All probabilities, cumulative
// probabilities, means and variances are rounded to mathx.Digits
// decimal places.
package dist // import "github.com/probkit/probkit/dist"

import (
	"math"

	"github.com/probkit/probkit/mathx"
)

// A Discrete is a probability distribution over the integers.
type Discrete interface {
	// PMF returns the probability that the random variable is
	// exactly x. It fails with mathx.ErrDomain if x is outside
	// the support of the distribution.
	PMF(x int) (float64, error)

	// CDF returns the probability that the random variable is
	// at most x.
	CDF(x int) float64

	Mean() float64
	Variance() float64
}

// A Continuous is a probability distribution over the reals.
type Continuous interface {
	// PDF returns the probability density at x.
	PDF(x float64) float64

	// Prob returns the probability that the random variable falls
	// in [x1, x2]. It fails with mathx.ErrDomain if x1 > x2.
	Prob(x1, x2 float64) (float64, error)

	// CDF returns the probability that the random variable is
	// at most x.
	CDF(x float64) float64

	Mean() float64
	Variance() float64
}

var (
	_ Discrete = Bernoulli{}
	_ Discrete = Binomial{}
	_ Discrete = Geometric{}
	_ Discrete = Poisson{}
	_ Discrete = DiscreteUniform{}

	_ Continuous = Uniform{}
	_ Continuous = Exponential{}
	_ Continuous = Normal{}
)

// checkProb validates a probability parameter.
func checkProb(name string, p float64) error {
	if !(p >= 0 && p <= 1) {
		return mathx.DomainErrorf("%s must be in [0, 1], got %v", name, p)
	}
	return nil
}

// prob implements Continuous.Prob in terms of a CDF. Integration
// error can make a numeric CDF dip slightly; the difference is kept
// in [0, 1].
func prob(cdf func(float64) float64, x1, x2 float64) (float64, error) {
	if math.IsNaN(x1) || math.IsNaN(x2) || x1 > x2 {
		return 0, mathx.DomainErrorf("interval [%v, %v] is not ordered", x1, x2)
	}
	p := mathx.Round(cdf(x2) - cdf(x1))
	return math.Max(0, math.Min(1, p)), nil
}
