// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sample is a collection of observations.
//
// Statistics of an empty sample are NaN.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Sorted indicates that Xs is sorted in ascending order.
	Sorted bool
}

// Sum returns the sum of the values in s.
func (s Sample) Sum() float64 {
	return floats.Sum(s.Xs)
}

// Mean returns the arithmetic mean of s.
func (s Sample) Mean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return stat.Mean(s.Xs, nil)
}

// Variance returns the sample variance of s, with an n-1
// denominator. It is NaN if s has fewer than two values.
func (s Sample) Variance() float64 {
	if len(s.Xs) < 2 {
		return nan
	}
	return stat.Variance(s.Xs, nil)
}

// StdDev returns the sample standard deviation of s.
func (s Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Bounds returns the smallest and largest values in s.
func (s Sample) Bounds() (min float64, max float64) {
	if len(s.Xs) == 0 {
		return nan, nan
	}
	if s.Sorted {
		return s.Xs[0], s.Xs[len(s.Xs)-1]
	}
	return floats.Min(s.Xs), floats.Max(s.Xs)
}

// Median returns the middle value of s, or the mean of the two
// middle values if s has an even number of values.
func (s Sample) Median() float64 {
	n := len(s.Xs)
	if n == 0 {
		return nan
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}
	mid := (n - 1) / 2
	if n%2 != 0 {
		return s.Xs[mid]
	}
	return (s.Xs[mid] + s.Xs[mid+1]) / 2
}

// Mode returns the most frequent value in s. If several values are
// equally frequent, Mode returns the smallest of them.
func (s Sample) Mode() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	counts := make(map[float64]int, len(s.Xs))
	for _, x := range s.Xs {
		counts[x]++
	}
	mode, best := nan, 0
	for x, c := range counts {
		if c > best || c == best && x < mode {
			mode, best = x, c
		}
	}
	return mode
}

// Percentile returns the pth percentile of s, 0 <= p <= 1: the
// smallest value in s that is greater than or equal to the fraction
// p of the values.
func (s Sample) Percentile(p float64) float64 {
	if len(s.Xs) == 0 || !(p >= 0 && p <= 1) {
		return nan
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}
	return stat.Quantile(p, stat.Empirical, s.Xs, nil)
}

// Copy returns a copy of s.
func (s Sample) Copy() *Sample {
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)
	return &Sample{xs, s.Sorted}
}

// Sort sorts the samples in place in s and returns s.
//
// A sorted sample improves the performance of some algorithms.
func (s *Sample) Sort() *Sample {
	if s.Sorted || sort.Float64sAreSorted(s.Xs) {
		// All set
	} else {
		sort.Float64s(s.Xs)
	}
	s.Sorted = true
	return s
}

// Covariance returns the sample covariance of the paired values xs
// and ys, with an n-1 denominator.
func Covariance(xs, ys []float64) (float64, error) {
	if err := checkPaired(xs, ys); err != nil {
		return 0, err
	}
	return stat.Covariance(xs, ys, nil), nil
}

// Correlation returns the Pearson correlation coefficient of the
// paired values xs and ys. It is NaN if either has zero variance.
func Correlation(xs, ys []float64) (float64, error) {
	if err := checkPaired(xs, ys); err != nil {
		return 0, err
	}
	return stat.Correlation(xs, ys, nil), nil
}

func checkPaired(xs, ys []float64) error {
	if len(xs) != len(ys) || len(xs) < 2 {
		return errors.Wrapf(ErrSampleSize, "paired samples of sizes %d and %d", len(xs), len(ys))
	}
	return nil
}
