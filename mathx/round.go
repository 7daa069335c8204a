// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// Digits is the number of decimal places kept by Round.
const Digits = 4

// Round rounds x to Digits decimal places, with halves rounded away
// from zero. NaN and infinities are returned unchanged.
func Round(x float64) float64 {
	return RoundTo(x, Digits)
}

// RoundTo rounds x to the given number of decimal places.
func RoundTo(x float64, digits int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	p := math.Pow10(digits)
	return math.Round(x*p) / p
}
