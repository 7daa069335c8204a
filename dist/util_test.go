// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/probkit/probkit/internal/mathtest"
	"github.com/probkit/probkit/mathx"
)

var aeq = mathtest.Aeq

// pmfFunc adapts d.PMF for table tests. Out-of-domain points map to
// NaN.
func pmfFunc(d Discrete) func(int) float64 {
	return func(x int) float64 {
		v, err := d.PMF(x)
		if err != nil {
			return math.NaN()
		}
		return v
	}
}

// testPMF checks d.PMF against want at 0, 1, 2, ...
func testPMF(t *testing.T, d Discrete, want []float64) {
	t.Helper()
	m := make(map[int]float64, len(want))
	for x, y := range want {
		m[x] = y
	}
	mathtest.WantIntFunc(t, fmt.Sprintf("%v.PMF", d), pmfFunc(d), m)
}

// testCDF checks d.CDF against want at 0, 1, 2, ...
func testCDF(t *testing.T, d Discrete, want []float64) {
	t.Helper()
	m := make(map[int]float64, len(want))
	for x, y := range want {
		m[x] = y
	}
	mathtest.WantIntFunc(t, fmt.Sprintf("%v.CDF", d), d.CDF, m)
}

// testDiscreteCDF checks that d.CDF over [0, hi] agrees with the
// running sum of d.PMF. Each PMF value carries up to half a rounding
// quantum of error, so the tolerance grows with x.
func testDiscreteCDF(t *testing.T, d Discrete, hi int) {
	t.Helper()
	sum := 0.0
	for x := 0; x <= hi; x++ {
		p, err := d.PMF(x)
		if err != nil {
			t.Fatalf("%v.PMF(%d): %v", d, x, err)
		}
		sum += p
		tol := float64(x+2) * mathtest.Tolerance
		if got := d.CDF(x); !mathtest.AeqTol(sum, got, tol) {
			t.Errorf("%v.CDF(%d) = %v, want ≅ %v (running PMF sum)", d, x, got, sum)
		}
	}
}

func requireDomainError(t *testing.T, err error, what string) {
	t.Helper()
	if !errors.Is(err, mathx.ErrDomain) {
		t.Errorf("%s: want ErrDomain, got %v", what, err)
	}
}

func checkMoments(t *testing.T, d interface {
	Mean() float64
	Variance() float64
}, mean, variance float64) {
	t.Helper()
	if got := d.Mean(); !aeq(mean, got) {
		t.Errorf("%v.Mean() = %v, want %v", d, got, mean)
	}
	if got := d.Variance(); !aeq(variance, got) {
		t.Errorf("%v.Variance() = %v, want %v", d, got, variance)
	}
}
