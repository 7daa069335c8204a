// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSampleMoments(t *testing.T) {
	s := Sample{Xs: []float64{-8, 2, 3, 4, 5, 6}}
	check := func(name string, want, got float64) {
		t.Helper()
		if !aeq(want, got) {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}
	check("Sum", 12, s.Sum())
	check("Mean", 2, s.Mean())
	check("Variance", 26, s.Variance())
	check("StdDev", math.Sqrt(26), s.StdDev())
	lo, hi := s.Bounds()
	check("Bounds lo", -8, lo)
	check("Bounds hi", 6, hi)

	one := Sample{Xs: []float64{7}}
	check("single Mean", 7, one.Mean())
	check("single Variance", nan, one.Variance())

	var empty Sample
	check("empty Mean", nan, empty.Mean())
	check("empty Median", nan, empty.Median())
	check("empty Mode", nan, empty.Mode())
	check("empty Sum", 0, empty.Sum())
}

func TestSampleMedian(t *testing.T) {
	for _, tc := range []struct {
		xs   []float64
		want float64
	}{
		{[]float64{3, 1, 2}, 2},
		{[]float64{4, 1, 3, 2}, 2.5},
		{[]float64{5}, 5},
		{[]float64{1, 1, 1, 10}, 1},
	} {
		xs := append([]float64(nil), tc.xs...)
		if got := (Sample{Xs: xs}).Median(); got != tc.want {
			t.Errorf("Median(%v) = %v, want %v", tc.xs, got, tc.want)
		}
		// Median must not reorder the caller's data.
		if diff := cmp.Diff(tc.xs, xs); diff != "" {
			t.Errorf("Median modified its input (-want +got):\n%s", diff)
		}
	}
}

func TestSampleMode(t *testing.T) {
	for _, tc := range []struct {
		xs   []float64
		want float64
	}{
		{[]float64{1, 2, 2, 3}, 2},
		{[]float64{5, 5, 1, 1, 3}, 1}, // Ties pick the smallest.
		{[]float64{4}, 4},
	} {
		if got := (Sample{Xs: tc.xs}).Mode(); got != tc.want {
			t.Errorf("Mode(%v) = %v, want %v", tc.xs, got, tc.want)
		}
	}
}

func TestSamplePercentile(t *testing.T) {
	s := Sample{Xs: []float64{8, 3, 1, 5, 2, 7, 4, 6}}
	for p, want := range map[float64]float64{0.25: 2, 0.75: 6, 1: 8} {
		if got := s.Percentile(p); got != want {
			t.Errorf("Percentile(%v) = %v, want %v", p, got, want)
		}
	}
	if got := s.Percentile(1.5); !math.IsNaN(got) {
		t.Errorf("Percentile(1.5) = %v, want NaN", got)
	}
}

func TestSampleSort(t *testing.T) {
	s := Sample{Xs: []float64{3, 1, 2}}
	c := s.Copy().Sort()
	if diff := cmp.Diff([]float64{1, 2, 3}, c.Xs); diff != "" {
		t.Errorf("Sort (-want +got):\n%s", diff)
	}
	require.True(t, c.Sorted)
	require.Equal(t, []float64{3, 1, 2}, s.Xs)
	lo, hi := c.Bounds()
	require.Equal(t, 1.0, lo)
	require.Equal(t, 3.0, hi)
}

func TestCovarianceCorrelation(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	ys := []float64{2, 4, 5, 4, 5}

	cov, err := Covariance(xs, ys)
	require.NoError(t, err)
	require.InDelta(t, 1.5, cov, 1e-12)

	r, err := Correlation(xs, ys)
	require.NoError(t, err)
	require.InDelta(t, 0.7745966692414834, r, 1e-12)

	r, err = Correlation(xs, xs)
	require.NoError(t, err)
	require.InDelta(t, 1, r, 1e-12)

	_, err = Correlation(xs, ys[:3])
	require.True(t, errors.Is(err, ErrSampleSize), "got %v", err)
	_, err = Covariance(xs[:1], ys[:1])
	require.True(t, errors.Is(err, ErrSampleSize), "got %v", err)
}
