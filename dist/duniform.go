// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"

	"github.com/probkit/probkit/mathx"
)

// DiscreteUniform is the distribution that assigns equal probability
// to each integer in [A, B].
type DiscreteUniform struct {
	a, b           int
	mean, variance float64
}

// NewDiscreteUniform returns a discrete uniform distribution over
// [a, b]. 0 <= a <= b.
func NewDiscreteUniform(a, b int) (DiscreteUniform, error) {
	if a < 0 || a > b {
		return DiscreteUniform{}, mathx.DomainErrorf("need 0 <= a <= b, got a=%d b=%d", a, b)
	}
	n := float64(b - a + 1)
	return DiscreteUniform{
		a:        a,
		b:        b,
		mean:     mathx.Round(float64(a+b) / 2),
		variance: mathx.Round((n*n - 1) / 12),
	}, nil
}

// Bounds returns the inclusive support [a, b].
func (d DiscreteUniform) Bounds() (a, b int) { return d.a, d.b }

func (d DiscreteUniform) n() float64 { return float64(d.b - d.a + 1) }

// PMF is 1/(b-a+1) for x in [a, b].
func (d DiscreteUniform) PMF(x int) (float64, error) {
	if x < d.a || x > d.b {
		return 0, mathx.DomainErrorf("DiscreteUniform PMF undefined at %d outside [%d, %d]", x, d.a, d.b)
	}
	return mathx.Round(1 / d.n()), nil
}

func (d DiscreteUniform) CDF(x int) float64 {
	switch {
	case x < d.a:
		return 0
	case x >= d.b:
		return 1
	}
	return mathx.Round(float64(x-d.a+1) / d.n())
}

func (d DiscreteUniform) Mean() float64     { return d.mean }
func (d DiscreteUniform) Variance() float64 { return d.variance }

func (d DiscreteUniform) String() string {
	return fmt.Sprintf("DiscreteUniform(a=%d, b=%d)", d.a, d.b)
}
