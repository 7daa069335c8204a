// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// stats is a grab bag of descriptive statistics and interval
// estimates over samples of float64s.
package stats // import "github.com/probkit/probkit/stats"

import (
	"math"

	"github.com/cockroachdb/errors"
)

var inf = math.Inf(1)
var nan = math.NaN()

var (
	// ErrSampleSize is returned when a sample is too small for
	// the requested statistic, or paired samples differ in size.
	ErrSampleSize = errors.New("sample is too small or samples differ in size")

	// ErrUnsupportedConfidence is returned for confidence levels
	// other than 0.90, 0.95 and 0.99.
	ErrUnsupportedConfidence = errors.New("unsupported confidence level")
)
