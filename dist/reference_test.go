// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/probkit/probkit/internal/mathtest"
)

// These tests compare against gonum's closed-form implementations.
// Tolerances reflect this package's rounding and fixed-step
// integration.

func TestBinomialMatchesGonum(t *testing.T) {
	for _, n := range []int{5, 10, 20} {
		for _, p := range []float64{0.1, 0.5, 0.8} {
			d, err := NewBinomial(n, p)
			require.NoError(t, err)
			ref := distuv.Binomial{N: float64(n), P: p}
			for x := 0; x <= n; x++ {
				got, err := d.PMF(x)
				require.NoError(t, err)
				if want := ref.Prob(float64(x)); !mathtest.AeqTol(want, got, 1e-4) {
					t.Errorf("%v.PMF(%d) = %v, gonum %v", d, x, got, want)
				}
				if got, want := d.CDF(x), ref.CDF(float64(x)); !mathtest.AeqTol(want, got, 5e-4) {
					t.Errorf("%v.CDF(%d) = %v, gonum %v", d, x, got, want)
				}
			}
			if !mathtest.AeqTol(ref.Mean(), d.Mean(), 1e-4) || !mathtest.AeqTol(ref.Variance(), d.Variance(), 1e-4) {
				t.Errorf("%v moments (%v, %v), gonum (%v, %v)", d, d.Mean(), d.Variance(), ref.Mean(), ref.Variance())
			}
		}
	}
}

func TestPoissonMatchesGonum(t *testing.T) {
	for _, l := range []float64{0.5, 2, 7.5} {
		d, err := NewPoisson(l)
		require.NoError(t, err)
		ref := distuv.Poisson{Lambda: l}
		for x := 0; x <= 25; x++ {
			got, err := d.PMF(x)
			require.NoError(t, err)
			if want := ref.Prob(float64(x)); !mathtest.AeqTol(want, got, 1e-4) {
				t.Errorf("%v.PMF(%d) = %v, gonum %v", d, x, got, want)
			}
			if got, want := d.CDF(x), ref.CDF(float64(x)); !mathtest.AeqTol(want, got, 1e-3) {
				t.Errorf("%v.CDF(%d) = %v, gonum %v", d, x, got, want)
			}
		}
	}
}

func TestBernoulliMatchesGonum(t *testing.T) {
	for _, p := range []float64{0, 0.25, 0.5, 1} {
		d, err := NewBernoulli(p)
		require.NoError(t, err)
		ref := distuv.Bernoulli{P: p}
		for x := 0; x <= 1; x++ {
			got, _ := d.PMF(x)
			if want := ref.Prob(float64(x)); !mathtest.AeqTol(want, got, 1e-4) {
				t.Errorf("%v.PMF(%d) = %v, gonum %v", d, x, got, want)
			}
		}
		checkMoments(t, d, ref.Mean(), ref.Variance())
	}
}

func TestContinuousMatchesGonum(t *testing.T) {
	type tc struct {
		d   Continuous
		ref interface {
			CDF(float64) float64
			Mean() float64
			Variance() float64
		}
		xs  []float64
		tol float64
	}
	must := func(d Continuous, err error) Continuous {
		t.Helper()
		require.NoError(t, err)
		return d
	}
	var tcs []tc
	{
		d, err := NewUniform(1, 5)
		tcs = append(tcs, tc{must(d, err), distuv.Uniform{Min: 1, Max: 5}, []float64{0, 1, 2.2, 4.9, 6}, 1e-4})
	}
	{
		d, err := NewExponential(0.7)
		tcs = append(tcs, tc{must(d, err), distuv.Exponential{Rate: 0.7}, []float64{-1, 0, 0.3, 1, 4, 12}, 1e-4})
	}
	{
		d, err := NewNormal(0, 1)
		tcs = append(tcs, tc{must(d, err), distuv.UnitNormal, []float64{-3, -2, -1, -0.5, 0, 0.5, 1, 2, 3}, 2.5e-3})
	}
	{
		d, err := NewNormal(50, 10)
		tcs = append(tcs, tc{must(d, err), distuv.Normal{Mu: 50, Sigma: 10}, []float64{20, 40, 50, 60, 80}, 2.5e-3})
	}

	for _, tc := range tcs {
		for _, x := range tc.xs {
			if got, want := tc.d.CDF(x), tc.ref.CDF(x); !mathtest.AeqTol(want, got, tc.tol) {
				t.Errorf("%v.CDF(%v) = %v, gonum %v", tc.d, x, got, want)
			}
		}
		checkMoments(t, tc.d, tc.ref.Mean(), tc.ref.Variance())
	}
}
