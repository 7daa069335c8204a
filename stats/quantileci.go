// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/probkit/probkit/mathx"
)

// QuantileInterval is a distribution-free confidence interval for a
// quantile, bounded by two order statistics of a sample.
type QuantileInterval struct {
	// Quantile is the quantile the interval is for.
	Quantile float64

	// Confidence is the achieved confidence level. This is >= the
	// requested level because the interval can only grow by whole
	// order statistics.
	Confidence float64

	// LoOrder and HiOrder are the 1-based order statistics that
	// bound the interval. LoOrder < 1 means the interval is
	// unbounded below and HiOrder > N means it is unbounded
	// above.
	LoOrder, HiOrder int

	// Ambiguous is set when the interval shifted one order
	// statistic to the right has the same confidence. Ties are
	// broken to the left.
	Ambiguous bool

	// Lo and Hi are the bounds in sample units. They may be
	// infinite.
	Lo, Hi float64
}

// quantileCIApproxThreshold is the sample size above which the
// normal approximation to the binomial is used. This is a variable
// for testing.
var quantileCIApproxThreshold = 30

// QuantileCI returns a confidence interval for the q'th quantile
// (0 <= q <= 1) of the population s was drawn from. Unlike MeanCI,
// it makes no assumption about the population's distribution, and
// any confidence in (0, 1] is accepted.
func (s Sample) QuantileCI(q, confidence float64) (QuantileInterval, error) {
	if len(s.Xs) == 0 {
		return QuantileInterval{}, errors.Wrap(ErrSampleSize, "quantile interval of empty sample")
	}
	if !(q >= 0 && q <= 1) {
		return QuantileInterval{}, mathx.DomainErrorf("quantile %v outside [0, 1]", q)
	}
	if !(confidence > 0 && confidence <= 1) {
		return QuantileInterval{}, mathx.DomainErrorf("confidence %v outside (0, 1]", confidence)
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}

	res := quantileOrders(len(s.Xs), q, confidence)
	res.Lo, res.Hi = -inf, inf
	if res.LoOrder >= 1 {
		res.Lo = s.Xs[res.LoOrder-1]
	}
	if res.HiOrder <= len(s.Xs) {
		res.Hi = s.Xs[res.HiOrder-1]
	}
	return res, nil
}

// binomPMF is the unrounded binomial probability of k successes in
// n trials. It is 0 outside [0, n].
func binomPMF(n, k int, p float64) float64 {
	c, err := mathx.Combinations(n, k)
	if err != nil {
		return 0
	}
	return c * math.Pow(p, float64(k)) * math.Pow(1-p, float64(n-k))
}

// quantileOrders finds the order statistics bounding the confidence
// interval of the q'th quantile in a sample of size n.
//
// The number of samples that fall below the population quantile is
// binomially distributed, so PMF(k) is the probability that the
// quantile lies between the k'th and (k+1)'th order statistics. The
// interval is grown outward from the mode of that distribution until
// it covers the requested confidence.
func quantileOrders(n int, q, confidence float64) QuantileInterval {
	res := QuantileInterval{Quantile: q}
	if confidence >= 1 {
		res.Confidence, res.LoOrder, res.HiOrder = 1, 0, n+1
		return res
	}

	// [l, r) is the range of intervals covered so far.
	var l, r int
	if n <= quantileCIApproxThreshold {
		pmf := func(k int) float64 { return binomPMF(n, k, q) }

		// The binomial may have two modes; start from the
		// lower one.
		x := int(math.Ceil(float64(n+1)*q) - 1)
		if q == 0 {
			x = 0
		}
		accum := pmf(x)
		l, r = x, x+1
		lp, rp := pmf(l-1), pmf(r)
		res.Ambiguous = rp == accum

		// Probabilities decrease away from the mode, so take
		// the larger neighbor each step. Stop if there is
		// nothing left to add.
		for accum < confidence && (lp > 0 || rp > 0) {
			res.Ambiguous = lp == rp
			if lp >= rp {
				accum += lp
				l--
				lp = pmf(l - 1)
			} else {
				accum += rp
				r++
				rp = pmf(r)
			}
		}
		res.Confidence = accum
	} else {
		mu := float64(n) * q
		norm := distuv.Normal{Mu: mu, Sigma: math.Sqrt(mu * (1 - q))}
		l1 := norm.Quantile((1 - confidence) / 2)
		r1 := 2*mu - l1

		// With the continuity correction, binomial point k is
		// the normal band [k-0.5, k+0.5]. Round [l1, r1] out to
		// half-integer boundaries and recover the bands.
		l = int(math.Floor(math.Floor(l1-0.5)+0.5)) + 1
		r = int(math.Floor(math.Ceil(r1-0.5)+0.5)) + 1

		// Pr[l <= X < r] under the approximation.
		cover := func(l, r int) float64 {
			return norm.CDF(float64(r)-0.5) - norm.CDF(float64(l)-0.5)
		}
		res.Confidence = cover(l, r)
		// The band is symmetric; a left-biased one may be
		// tighter and still sufficient.
		if biased := cover(l, r-1); biased >= confidence && biased < res.Confidence {
			res.Confidence, res.Ambiguous = biased, true
			r--
		}
		if l <= 0 && r >= n+1 {
			// The normal tails never quite reach 1.
			res.Confidence, res.Ambiguous = 1, false
		}
	}

	if l < 0 {
		l = 0
	}
	if r > n+1 {
		r = n + 1
	}
	res.LoOrder, res.HiOrder = l, r
	return res
}
