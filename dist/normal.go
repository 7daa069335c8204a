// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"

	"github.com/probkit/probkit/mathx"
)

// normalTail is how many standard deviations below the mean the
// Normal CDF starts integrating. Mass further out is treated as 0.
const normalTail = 7

// 1/sqrt(2 * pi)
const invSqrt2Pi = 0.39894228040143267793994605993438186847585863116493465766592583

// Normal is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type Normal struct {
	mu, sigma float64
}

// NewNormal returns a normal distribution with the given mean and
// standard deviation. std >= 0; std == 0 is a point mass at mean.
func NewNormal(mean, std float64) (Normal, error) {
	if math.IsNaN(mean) || math.IsInf(mean, 0) {
		return Normal{}, mathx.DomainErrorf("normal mean must be finite, got %v", mean)
	}
	if !(std >= 0) || math.IsInf(std, 1) {
		return Normal{}, mathx.DomainErrorf("normal standard deviation must be >= 0 and finite, got %v", std)
	}
	return Normal{mu: mean, sigma: std}, nil
}

// StdNormal is the standard normal distribution (Mu = 0, Sigma = 1).
var StdNormal = Normal{0, 1}

// StdDev returns the standard deviation.
func (n Normal) StdDev() float64 { return n.sigma }

func (n Normal) PDF(x float64) float64 {
	if n.sigma == 0 {
		if x == n.mu {
			return math.Inf(1)
		}
		return 0
	}
	z := x - n.mu
	return math.Exp(-z*z/(2*n.sigma*n.sigma)) * invSqrt2Pi / n.sigma
}

func (n Normal) Prob(x1, x2 float64) (float64, error) {
	return prob(n.CDF, x1, x2)
}

// CDF integrates the PDF from Mu - 7 Sigma to x using
// mathx.Quadrature at its default resolution. Mass beyond 7 Sigma on
// either side is treated as 0, so the CDF is 0 below the lower bound
// and 1 above the upper one.
func (n Normal) CDF(x float64) float64 {
	if n.sigma == 0 {
		if x < n.mu {
			return 0
		}
		return 1
	}
	lo, hi := n.mu-normalTail*n.sigma, n.mu+normalTail*n.sigma
	if x <= lo {
		return 0
	} else if x >= hi {
		return 1
	}
	return math.Min(1, mathx.Round(mathx.Quadrature(n.PDF, lo, x, mathx.DefaultSteps)))
}

func (n Normal) Mean() float64     { return mathx.Round(n.mu) }
func (n Normal) Variance() float64 { return mathx.Round(n.sigma * n.sigma) }

// Bounds returns reasonable bounds for plotting or tabulating this
// distribution: three standard deviations either side of the mean.
func (n Normal) Bounds() (float64, float64) {
	const stddevs = 3
	return n.mu - stddevs*n.sigma, n.mu + stddevs*n.sigma
}

func (n Normal) String() string {
	return fmt.Sprintf("Normal(mean=%v, std=%v)", n.mu, n.sigma)
}
