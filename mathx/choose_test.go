// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestFactorial(t *testing.T) {
	for n, want := range map[int]float64{
		0:  1,
		1:  1,
		5:  120,
		10: 3628800,
		20: 2432902008176640000,
	} {
		got, err := Factorial(n)
		require.NoError(t, err)
		if got != want {
			t.Errorf("Factorial(%d) = %v, want %v", n, got, want)
		}
	}

	_, err := Factorial(-1)
	require.True(t, errors.Is(err, ErrDomain), "Factorial(-1) error %v is not ErrDomain", err)
}

func TestCombinations(t *testing.T) {
	check := func(n, r int, want float64) {
		t.Helper()
		got, err := Combinations(n, r)
		require.NoError(t, err)
		if got != want {
			t.Errorf("Combinations(%d, %d) = %v, want %v", n, r, got, want)
		}
	}
	check(0, 0, 1)
	check(5, 0, 1)
	check(5, 2, 10)
	check(10, 5, 252)
	check(52, 5, 2598960)
	// Past 170! the factorials overflow, but the ratio does not.
	check(200, 2, 19900)

	// Symmetry.
	for n := 0; n <= 30; n++ {
		for r := 0; r <= n; r++ {
			a, err := Combinations(n, r)
			require.NoError(t, err)
			b, err := Combinations(n, n-r)
			require.NoError(t, err)
			if a != b {
				t.Errorf("Combinations(%d, %d) = %v != Combinations(%d, %d) = %v", n, r, a, n, n-r, b)
			}
		}
	}

	for _, bad := range [][2]int{{3, 4}, {3, -1}, {-1, -2}} {
		_, err := Combinations(bad[0], bad[1])
		require.Truef(t, errors.Is(err, ErrDomain), "Combinations(%d, %d): want ErrDomain, got %v", bad[0], bad[1], err)
	}
}

func TestPermutations(t *testing.T) {
	check := func(n, r int, want float64) {
		t.Helper()
		got, err := Permutations(n, r)
		require.NoError(t, err)
		if got != want {
			t.Errorf("Permutations(%d, %d) = %v, want %v", n, r, got, want)
		}
	}
	check(0, 0, 1)
	check(5, 0, 1)
	check(5, 2, 20)
	check(5, 5, 120)
	check(10, 3, 720)

	_, err := Permutations(2, 3)
	require.True(t, errors.Is(err, ErrDomain))
}
