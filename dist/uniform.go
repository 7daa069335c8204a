// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"

	"github.com/probkit/probkit/mathx"
)

// Uniform is the continuous uniform distribution on [A, B].
type Uniform struct {
	a, b           float64
	mean, variance float64
}

// NewUniform returns a uniform distribution on [a, b]. 0 <= a <= b.
// If a == b, the distribution is a point mass at a.
func NewUniform(a, b float64) (Uniform, error) {
	if !(a >= 0 && a <= b) || math.IsInf(b, 1) {
		return Uniform{}, mathx.DomainErrorf("need 0 <= a <= b < +Inf, got a=%v b=%v", a, b)
	}
	w := b - a
	return Uniform{
		a:        a,
		b:        b,
		mean:     mathx.Round((a + b) / 2),
		variance: mathx.Round(w * w / 12),
	}, nil
}

// Bounds returns the support [a, b].
func (d Uniform) Bounds() (a, b float64) { return d.a, d.b }

func (d Uniform) PDF(x float64) float64 {
	if x < d.a || x > d.b {
		return 0
	}
	if d.a == d.b {
		return math.Inf(1)
	}
	return 1 / (d.b - d.a)
}

func (d Uniform) Prob(x1, x2 float64) (float64, error) {
	return prob(d.CDF, x1, x2)
}

func (d Uniform) CDF(x float64) float64 {
	switch {
	case x < d.a:
		return 0
	case x >= d.b:
		return 1
	}
	return mathx.Round((x - d.a) / (d.b - d.a))
}

func (d Uniform) Mean() float64     { return d.mean }
func (d Uniform) Variance() float64 { return d.variance }

func (d Uniform) String() string {
	return fmt.Sprintf("Uniform(a=%v, b=%v)", d.a, d.b)
}
