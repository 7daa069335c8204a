// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"

	"github.com/probkit/probkit/mathx"
)

// Poisson is the distribution of the number of events in a fixed
// interval when events occur independently at average rate Lambda.
type Poisson struct {
	lambda float64
}

// NewPoisson returns a Poisson distribution with rate lambda > 0.
func NewPoisson(lambda float64) (Poisson, error) {
	if !(lambda > 0) || math.IsInf(lambda, 1) {
		return Poisson{}, mathx.DomainErrorf("Poisson rate must be positive and finite, got %v", lambda)
	}
	return Poisson{lambda: lambda}, nil
}

// Lambda returns the rate parameter.
func (d Poisson) Lambda() float64 { return d.lambda }

// PMF is λ^x e^(-λ) / x! for x >= 0.
func (d Poisson) PMF(x int) (float64, error) {
	if x < 0 {
		return 0, mathx.DomainErrorf("Poisson PMF undefined at %d", x)
	}
	return mathx.Round(d.pmf(x)), nil
}

func (d Poisson) pmf(x int) float64 {
	f, err := mathx.Factorial(x)
	if err == nil && !math.IsInf(f, 1) {
		return math.Pow(d.lambda, float64(x)) * math.Exp(-d.lambda) / f
	}
	// x! overflowed; use logs.
	lg, _ := math.Lgamma(float64(x + 1))
	return math.Exp(float64(x)*math.Log(d.lambda) - d.lambda - lg)
}

// CDF is the sum of PMF over 0..x. Each term is rounded before it
// is added, so far in the right tail the sum can pass 1; it is capped
// there.
func (d Poisson) CDF(x int) float64 {
	if x < 0 {
		return 0
	}
	return math.Min(1, mathx.Round(mathx.Summation(d.pmf, 0, x+1)))
}

func (d Poisson) Mean() float64     { return mathx.Round(d.lambda) }
func (d Poisson) Variance() float64 { return mathx.Round(d.lambda) }

func (d Poisson) String() string {
	return fmt.Sprintf("Poisson(lambda=%v)", d.lambda)
}
