// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prob

import "github.com/cockroachdb/errors"

// An Event is a subset of a SampleSpace. An Event is immutable and
// always satisfies the subset invariant: constructing one with an
// outcome outside its space fails.
type Event[T comparable] struct {
	elems set[T]
	space *SampleSpace[T]
}

// NewEvent returns the event of space consisting of the given
// outcomes. It fails with ErrNotSubset if any outcome is not in
// space.
func NewEvent[T comparable](space *SampleSpace[T], outcomes ...T) (*Event[T], error) {
	if space == nil {
		return nil, errors.AssertionFailedf("nil sample space")
	}
	for _, x := range outcomes {
		if !space.Contains(x) {
			return nil, errors.Wrapf(ErrNotSubset, "outcome %v not in %v", x, space)
		}
	}
	return &Event[T]{elems: newSet(outcomes), space: space}, nil
}

// Space returns the sample space e was drawn from.
func (e *Event[T]) Space() *SampleSpace[T] { return e.space }

// Cardinality returns the number of outcomes in e.
func (e *Event[T]) Cardinality() int { return len(e.elems.order) }

// Contains reports whether x is an outcome in e.
func (e *Event[T]) Contains(x T) bool { return e.elems.contains(x) }

// Elements returns the outcomes of e in the order they were first
// given.
func (e *Event[T]) Elements() []T {
	return append([]T(nil), e.elems.order...)
}

// IsSubsetOf reports whether every outcome of e is in space.
func (e *Event[T]) IsSubsetOf(space *SampleSpace[T]) bool {
	for _, x := range e.elems.order {
		if !space.Contains(x) {
			return false
		}
	}
	return true
}

func (e *Event[T]) String() string { return e.elems.String() }

// Complement returns the outcomes of e's sample space that are not
// in e.
func Complement[T comparable](e *Event[T]) *Event[T] {
	var out []T
	for _, x := range e.space.elems.order {
		if !e.Contains(x) {
			out = append(out, x)
		}
	}
	return &Event[T]{elems: newSet(out), space: e.space}
}

// Union returns the event containing the outcomes of a and b, drawn
// from a's sample space. It fails with ErrNotSubset if b is not a
// subset of a's space.
func Union[T comparable](a, b *Event[T]) (*Event[T], error) {
	if err := sameSpace(a, b); err != nil {
		return nil, err
	}
	out := append(a.Elements(), b.elems.order...)
	return &Event[T]{elems: newSet(out), space: a.space}, nil
}

// Intersection returns the event containing the outcomes in both a
// and b, drawn from a's sample space. It fails with ErrNotSubset if
// b is not a subset of a's space.
func Intersection[T comparable](a, b *Event[T]) (*Event[T], error) {
	if err := sameSpace(a, b); err != nil {
		return nil, err
	}
	var out []T
	for _, x := range a.elems.order {
		if b.Contains(x) {
			out = append(out, x)
		}
	}
	return &Event[T]{elems: newSet(out), space: a.space}, nil
}

// sameSpace checks that b can be combined with events of a's space.
func sameSpace[T comparable](a, b *Event[T]) error {
	if b.space == a.space || b.IsSubsetOf(a.space) {
		return nil
	}
	return errors.Wrapf(ErrNotSubset, "event %v not in %v", b, a.space)
}
