// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/probkit/probkit/mathx"
)

// Confidence levels accepted by the interval estimators.
var SupportedConfidence = []float64{0.90, 0.95, 0.99}

// zCritical maps each supported confidence level to the two-sided
// critical value of the standard normal distribution.
var zCritical = func() map[float64]float64 {
	m := make(map[float64]float64, len(SupportedConfidence))
	for _, c := range SupportedConfidence {
		m[c] = distuv.UnitNormal.Quantile(1 - (1-c)/2)
	}
	return m
}()

func checkConfidence(confidence float64) error {
	if _, ok := zCritical[confidence]; !ok {
		err := errors.Wrapf(ErrUnsupportedConfidence, "confidence %v", confidence)
		return errors.WithHint(err, "supported confidence levels are 0.90, 0.95 and 0.99")
	}
	return nil
}

// Interval is a two-sided confidence interval Center ± Margin.
type Interval struct {
	// Center is the point estimate.
	Center float64

	// Margin is the margin of error, the half-width of the
	// interval.
	Margin float64

	// Lo and Hi are Center - Margin and Center + Margin.
	Lo, Hi float64

	// Confidence is the confidence level of the interval.
	Confidence float64
}

func newInterval(center, margin, confidence float64) Interval {
	return Interval{center, margin, center - margin, center + margin, confidence}
}

// MeanCI returns the confidence interval for the population mean
// given the sample xs, using Student's t-distribution with
// len(xs)-1 degrees of freedom.
//
// This fails with ErrSampleSize if xs has fewer than two values.
func MeanCI(xs []float64, confidence float64) (Interval, error) {
	if err := checkConfidence(confidence); err != nil {
		return Interval{}, err
	}
	n := len(xs)
	if n < 2 {
		return Interval{}, errors.Wrapf(ErrSampleSize, "mean interval needs 2 values, have %d", n)
	}
	s := Sample{Xs: xs}
	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}.Quantile(1 - (1-confidence)/2)
	return newInterval(s.Mean(), t*s.StdDev()/math.Sqrt(float64(n)), confidence), nil
}

// ProportionCI returns the normal-approximation confidence interval
// for a population proportion given successes out of n trials.
func ProportionCI(successes, n int, confidence float64) (Interval, error) {
	if err := checkConfidence(confidence); err != nil {
		return Interval{}, err
	}
	if n <= 0 {
		return Interval{}, errors.Wrapf(ErrSampleSize, "proportion of %d trials", n)
	}
	if successes < 0 || successes > n {
		return Interval{}, mathx.DomainErrorf("%d successes out of %d trials", successes, n)
	}
	p := float64(successes) / float64(n)
	margin := zCritical[confidence] * math.Sqrt(p*(1-p)/float64(n))
	return newInterval(p, margin, confidence), nil
}

// TwoMeansCI returns the confidence interval for the difference
// between the population means of xs and ys, mean(xs) - mean(ys),
// using the unpooled standard error and the normal critical value.
func TwoMeansCI(xs, ys []float64, confidence float64) (Interval, error) {
	if err := checkConfidence(confidence); err != nil {
		return Interval{}, err
	}
	if len(xs) < 2 || len(ys) < 2 {
		return Interval{}, errors.Wrapf(ErrSampleSize, "two-means interval of sizes %d and %d", len(xs), len(ys))
	}
	sx, sy := Sample{Xs: xs}, Sample{Xs: ys}
	se := math.Sqrt(sx.Variance()/float64(len(xs)) + sy.Variance()/float64(len(ys)))
	return newInterval(sx.Mean()-sy.Mean(), zCritical[confidence]*se, confidence), nil
}
