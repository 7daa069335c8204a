// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prob implements finite sample spaces, events drawn from
// them, and the counting rules that assign them probabilities.
package prob // import "github.com/probkit/probkit/prob"

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrNotSubset is returned, possibly wrapped, when an event would
// contain an outcome that is not in its sample space.
var ErrNotSubset = errors.New("event is not a subset of the sample space")

// set is an insertion-ordered set of atoms.
type set[T comparable] struct {
	order []T
	index map[T]struct{}
}

func newSet[T comparable](xs []T) set[T] {
	s := set[T]{index: make(map[T]struct{}, len(xs))}
	for _, x := range xs {
		if _, ok := s.index[x]; ok {
			continue
		}
		s.index[x] = struct{}{}
		s.order = append(s.order, x)
	}
	return s
}

func (s set[T]) contains(x T) bool {
	_, ok := s.index[x]
	return ok
}

func (s set[T]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, x := range s.order {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, x)
	}
	b.WriteByte('}')
	return b.String()
}

// A SampleSpace is the finite set of all outcomes of an experiment.
// Outcomes may be any comparable value; use arrays or structs for
// tuples. A SampleSpace is immutable.
type SampleSpace[T comparable] struct {
	elems set[T]
}

// NewSampleSpace returns the sample space containing the given
// outcomes. Duplicates are ignored.
func NewSampleSpace[T comparable](outcomes ...T) *SampleSpace[T] {
	return &SampleSpace[T]{elems: newSet(outcomes)}
}

// Cardinality returns the number of outcomes in s.
func (s *SampleSpace[T]) Cardinality() int { return len(s.elems.order) }

// Contains reports whether x is an outcome of s.
func (s *SampleSpace[T]) Contains(x T) bool { return s.elems.contains(x) }

// Elements returns the outcomes of s in the order they were first
// given.
func (s *SampleSpace[T]) Elements() []T {
	return append([]T(nil), s.elems.order...)
}

func (s *SampleSpace[T]) String() string { return s.elems.String() }
