// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/probkit/probkit/mathx"
)

func TestMeanCI(t *testing.T) {
	var xs []float64
	check := func(conf, wmean, wlo, whi float64) {
		t.Helper()
		ci, err := MeanCI(xs, conf)
		require.NoError(t, err)
		if !aeq(ci.Center, wmean) || !aeq(ci.Lo, wlo) || !aeq(ci.Hi, whi) {
			t.Errorf("for %v, want %v@[%v,%v], got %v@[%v,%v]", xs, wmean, wlo, whi, ci.Center, ci.Lo, ci.Hi)
		}
		if !aeq(ci.Margin, (ci.Hi-ci.Lo)/2) || ci.Confidence != conf {
			t.Errorf("for %v, inconsistent interval %+v", xs, ci)
		}
	}

	xs = []float64{-8, 2, 3, 4, 5, 6}
	check(0.95, 2, -3.351092806089359, 7.351092806089359)
	check(0.99, 2, -6.39357495385287, 10.39357495385287)

	// Unsupported levels.
	for _, conf := range []float64{0, 0.5, 0.975, 1} {
		_, err := MeanCI(xs, conf)
		require.Truef(t, errors.Is(err, ErrUnsupportedConfidence), "confidence %v: got %v", conf, err)
	}
	_, err := MeanCI(xs, 0.8)
	require.Contains(t, errors.FlattenHints(err), "0.90, 0.95 and 0.99")

	for _, xs := range [][]float64{nil, {1}} {
		_, err := MeanCI(xs, 0.95)
		require.Truef(t, errors.Is(err, ErrSampleSize), "%v: got %v", xs, err)
	}
}

func TestProportionCI(t *testing.T) {
	ci, err := ProportionCI(45, 100, 0.95)
	require.NoError(t, err)
	require.InDelta(t, 0.45, ci.Center, 1e-12)
	require.InDelta(t, 0.09750697708993934, ci.Margin, 1e-9)
	require.InDelta(t, 0.3524930229100607, ci.Lo, 1e-9)
	require.InDelta(t, 0.5475069770899393, ci.Hi, 1e-9)

	// Higher confidence, wider interval.
	ci90, err := ProportionCI(45, 100, 0.90)
	require.NoError(t, err)
	ci99, err := ProportionCI(45, 100, 0.99)
	require.NoError(t, err)
	require.Less(t, ci90.Margin, ci.Margin)
	require.Less(t, ci.Margin, ci99.Margin)

	// All successes has no spread.
	ci, err = ProportionCI(10, 10, 0.95)
	require.NoError(t, err)
	require.Equal(t, 0.0, ci.Margin)

	_, err = ProportionCI(11, 10, 0.95)
	require.True(t, errors.Is(err, mathx.ErrDomain), "got %v", err)
	_, err = ProportionCI(0, 0, 0.95)
	require.True(t, errors.Is(err, ErrSampleSize), "got %v", err)
	_, err = ProportionCI(5, 10, 0.42)
	require.True(t, errors.Is(err, ErrUnsupportedConfidence), "got %v", err)
}

func TestTwoMeansCI(t *testing.T) {
	xs := []float64{-8, 2, 3, 4, 5, 6}
	ys := []float64{1, 2, 3, 4, 5}
	ci, err := TwoMeansCI(xs, ys, 0.95)
	require.NoError(t, err)
	require.InDelta(t, -1, ci.Center, 1e-12)
	require.InDelta(t, -5.308950100278287, ci.Lo, 1e-9)
	require.InDelta(t, 3.3089501002782873, ci.Hi, 1e-9)

	_, err = TwoMeansCI(xs, ys[:1], 0.95)
	require.True(t, errors.Is(err, ErrSampleSize), "got %v", err)
	_, err = TwoMeansCI(xs, ys, 0.8)
	require.True(t, errors.Is(err, ErrUnsupportedConfidence), "got %v", err)
}

func TestCriticalValues(t *testing.T) {
	for conf, want := range map[float64]float64{
		0.90: 1.6448536269514715,
		0.95: 1.9599639845400536,
		0.99: 2.5758293035489,
	} {
		require.InDeltaf(t, want, zCritical[conf], 1e-9, "z for %v", conf)
	}
}
