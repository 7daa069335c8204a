// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// Factorial returns n!. Factorial(0) is 1. Results above 170! do not
// fit in a float64 and are +Inf.
func Factorial(n int) (float64, error) {
	if n < 0 {
		return 0, DomainErrorf("factorial of negative number %d", n)
	}
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f, nil
}

// Permutations returns the number of ordered arrangements of r things
// taken from n, n!/(n-r)!. It requires n >= r >= 0.
func Permutations(n, r int) (float64, error) {
	if err := checkChoose(n, r); err != nil {
		return 0, err
	}
	// n!/(n-r)! with the common factors cancelled.
	p := 1.0
	for i := n - r + 1; i <= n; i++ {
		p *= float64(i)
	}
	return p, nil
}

// Combinations returns the number of unordered selections of r things
// from n, n!/(r!(n-r)!). It requires n >= r >= 0.
func Combinations(n, r int) (float64, error) {
	if err := checkChoose(n, r); err != nil {
		return 0, err
	}
	if n-r < r {
		r = n - r
	}
	// Each partial product c is C(n-r+i, i), which is integral,
	// so rounding at the end only removes division error.
	c := 1.0
	for i := 1; i <= r; i++ {
		c = c * float64(n-r+i) / float64(i)
	}
	return math.Round(c), nil
}

func checkChoose(n, r int) error {
	if r < 0 || n < r {
		return DomainErrorf("need n >= r >= 0, got n=%d r=%d", n, r)
	}
	return nil
}
