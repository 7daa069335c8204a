// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"

	"github.com/probkit/probkit/mathx"
)

// Exponential is the distribution of the waiting time between events
// of a Poisson process with rate Lambda.
type Exponential struct {
	lambda         float64
	mean, variance float64
}

// NewExponential returns an exponential distribution with rate
// lambda >= 0. With lambda = 0 no event ever happens: the CDF is 0
// everywhere and the mean and variance are +Inf.
func NewExponential(lambda float64) (Exponential, error) {
	if !(lambda >= 0) || math.IsInf(lambda, 1) {
		return Exponential{}, mathx.DomainErrorf("exponential rate must be >= 0 and finite, got %v", lambda)
	}
	return Exponential{
		lambda:   lambda,
		mean:     mathx.Round(1 / lambda),
		variance: mathx.Round(1 / (lambda * lambda)),
	}, nil
}

// Lambda returns the rate parameter.
func (d Exponential) Lambda() float64 { return d.lambda }

func (d Exponential) PDF(x float64) float64 {
	if x < 0 || d.lambda == 0 {
		return 0
	}
	return d.lambda * math.Exp(-d.lambda*x)
}

func (d Exponential) Prob(x1, x2 float64) (float64, error) {
	return prob(d.CDF, x1, x2)
}

func (d Exponential) CDF(x float64) float64 {
	if x < 0 || d.lambda == 0 {
		return 0
	}
	return mathx.Round(1 - math.Exp(-d.lambda*x))
}

func (d Exponential) Mean() float64     { return d.mean }
func (d Exponential) Variance() float64 { return d.variance }

func (d Exponential) String() string {
	return fmt.Sprintf("Exponential(lambda=%v)", d.lambda)
}
