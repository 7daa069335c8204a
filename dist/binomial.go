// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"

	"github.com/probkit/probkit/mathx"
)

// binomialCDFSteps is the quadrature resolution of Binomial.CDF.
const binomialCDFSteps = 100000

// Binomial is the distribution of the number of successes in N
// independent Bernoulli trials with success probability P.
type Binomial struct {
	n              int
	p              float64
	mean, variance float64
}

// NewBinomial returns a binomial distribution over n trials with
// success probability p. n >= 0 and 0 <= p <= 1.
//
// If n is 1, this is equivalent to the Bernoulli distribution.
func NewBinomial(n int, p float64) (Binomial, error) {
	if n < 0 {
		return Binomial{}, mathx.DomainErrorf("number of trials must be >= 0, got %d", n)
	}
	if err := checkProb("p", p); err != nil {
		return Binomial{}, err
	}
	nf := float64(n)
	return Binomial{
		n:        n,
		p:        p,
		mean:     mathx.Round(nf * p),
		variance: mathx.Round(nf * p * (1 - p)),
	}, nil
}

// N returns the number of trials.
func (d Binomial) N() int { return d.n }

// P returns the per-trial success probability.
func (d Binomial) P() float64 { return d.p }

// PMF is the probability of exactly x successes, C(n,x) p^x q^(n-x).
func (d Binomial) PMF(x int) (float64, error) {
	if x < 0 || x > d.n {
		return 0, mathx.DomainErrorf("Binomial PMF undefined at %d outside [0, %d]", x, d.n)
	}
	c, err := mathx.Combinations(d.n, x)
	if err != nil {
		return 0, err
	}
	if !math.IsInf(c, 1) {
		return mathx.Round(c * math.Pow(d.p, float64(x)) * math.Pow(1-d.p, float64(d.n-x))), nil
	}
	// C(n,x) overflowed; use logs.
	lp := lchoose(d.n, x) + xlogy(float64(x), d.p) + xlogy(float64(d.n-x), 1-d.p)
	return mathx.Round(math.Exp(lp)), nil
}

// CDF is the probability of x or fewer successes.
//
// Inside the support this is the regularized incomplete beta function
// I_q(n-x, x+1), evaluated as
//
//	(n-x) C(n,x) ∫₀^q t^(n-x-1) (1-t)^x dt
//
// with binomialCDFSteps rectangles. The prefactor is folded into the
// integrand in log space so that neither C(n,x) overflows nor the
// power terms underflow for large n.
func (d Binomial) CDF(x int) float64 {
	switch {
	case x < 0:
		return 0
	case x >= d.n:
		return 1
	}
	a, b := float64(d.n-x-1), float64(x)
	lc := math.Log(float64(d.n-x)) + lchoose(d.n, x)
	integrand := func(t float64) float64 {
		// The last sample may drift just past 1.
		t = math.Min(math.Max(t, 0), 1)
		return math.Exp(lc + xlogy(a, t) + xlogy(b, 1-t))
	}
	area := mathx.QuadratureUnrounded(integrand, 0, 1-d.p, binomialCDFSteps)
	return math.Min(1, mathx.Round(area))
}

func (d Binomial) Mean() float64     { return d.mean }
func (d Binomial) Variance() float64 { return d.variance }

func (d Binomial) String() string {
	return fmt.Sprintf("Binomial(n=%d, p=%v)", d.n, d.p)
}

// lchoose returns log C(n, x).
func lchoose(n, x int) float64 {
	a, _ := math.Lgamma(float64(n + 1))
	b, _ := math.Lgamma(float64(x + 1))
	c, _ := math.Lgamma(float64(n - x + 1))
	return a - b - c
}

// xlogy returns x log y, taking 0 log 0 as 0.
func xlogy(x, y float64) float64 {
	if x == 0 {
		return 0
	}
	return x * math.Log(y)
}
