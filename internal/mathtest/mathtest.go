// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathtest provides helpers for testing numeric code.
package mathtest

import (
	"fmt"
	"math"
	"sort"
	"testing"
)

// Tolerance is the default tolerance used by Aeq. Values produced by
// this module are rounded to 4 decimal places, so anything closer than
// one unit in the last kept place is considered equal.
const Tolerance = 0.0001

// Aeq returns true if expect and got are equal within Tolerance. NaNs
// compare equal to each other and infinities of the same sign are
// equal.
func Aeq(expect, got float64) bool {
	return AeqTol(expect, got, Tolerance)
}

// AeqTol is like Aeq, but with an explicit tolerance.
func AeqTol(expect, got, tol float64) bool {
	if math.IsNaN(expect) && math.IsNaN(got) {
		return true
	}
	if expect == got {
		return true
	}
	return math.Abs(expect-got) < tol+1e-12
}

// WantFunc checks that f(x) ≅ want[x] for every x in want, reporting
// failures under name. Keys are visited in increasing order so
// failure output is stable.
func WantFunc(t testing.TB, name string, f func(float64) float64, want map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(want))
	for x := range want {
		xs = append(xs, x)
	}
	sort.Float64s(xs)
	for _, x := range xs {
		if got := f(x); !Aeq(want[x], got) {
			t.Errorf("%s(%v) = %v, want %v", name, x, got, want[x])
		}
	}
}

// WantIntFunc is WantFunc for functions of an integer argument.
func WantIntFunc(t testing.TB, name string, f func(int) float64, want map[int]float64) {
	t.Helper()
	xs := make([]int, 0, len(want))
	for x := range want {
		xs = append(xs, x)
	}
	sort.Ints(xs)
	for _, x := range xs {
		if got := f(x); !Aeq(want[x], got) {
			t.Errorf("%s(%d) = %v, want %v", name, x, got, want[x])
		}
	}
}

// Name formats a function name for WantFunc from a receiver value and
// a method name.
func Name(recv interface{}, method string) string {
	return fmt.Sprintf("%+v.%s", recv, method)
}
