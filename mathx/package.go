// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx implements the numeric kernels shared by the
// distribution and probability packages: combinatorics, fixed-step
// summation and quadrature, and decimal rounding.
//
// The aggregate kernels round every term to Digits decimal places
// before accumulating it. This accumulates more rounding error than
// rounding only the final result, but it makes the output of every
// kernel reproducible in decimal terms.
package mathx // import "github.com/probkit/probkit/mathx"

import "github.com/cockroachdb/errors"

// ErrDomain is returned, possibly wrapped, when an argument or
// parameter is outside the mathematically valid range of an
// operation. Test for it with errors.Is.
var ErrDomain = errors.New("argument outside domain")

// DomainErrorf returns a new error with the given message that is
// marked as ErrDomain.
func DomainErrorf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrDomain)
}
