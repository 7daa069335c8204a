// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prob

import "github.com/probkit/probkit/mathx"

// Probability returns |e| / |Ω| where Ω is e's sample space. It is
// NaN for an empty sample space.
func Probability[T comparable](e *Event[T]) float64 {
	return float64(e.Cardinality()) / float64(e.space.Cardinality())
}

// ProbabilityGiven returns |a| / |b|, the counting-case probability
// of a given b. b must be a subset of a's sample space and must not
// be empty.
//
// Note that this is not P(a∩b)/P(b): it does not intersect a with b.
func ProbabilityGiven[T comparable](a, b *Event[T]) (float64, error) {
	if err := sameSpace(a, b); err != nil {
		return 0, err
	}
	if b.Cardinality() == 0 {
		return 0, mathx.DomainErrorf("conditioning on empty event")
	}
	return float64(a.Cardinality()) / float64(b.Cardinality()), nil
}

// ProbabilityOr returns P(a∪b) = P(a) + P(b) - P(a∩b), rounded to
// mathx.Digits decimal places. All three terms are measured against
// a's sample space, and P(a∩b) counts the actual intersection; it is
// not ProbabilityAnd, which uses the |a|/|b| conditional.
func ProbabilityOr[T comparable](a, b *Event[T]) (float64, error) {
	both, err := Intersection(a, b)
	if err != nil {
		return 0, err
	}
	n := float64(a.space.Cardinality())
	union := a.Cardinality() + b.Cardinality() - both.Cardinality()
	return mathx.Round(float64(union) / n), nil
}

// ProbabilityAnd returns P(b) · ProbabilityGiven(a, b), rounded to
// mathx.Digits decimal places.
func ProbabilityAnd[T comparable](a, b *Event[T]) (float64, error) {
	given, err := ProbabilityGiven(a, b)
	if err != nil {
		return 0, err
	}
	return mathx.Round(Probability(b) * given), nil
}

// IsDisjointUnion reports whether events are pairwise disjoint, that
// is, whether the sum of their cardinalities equals the cardinality
// of their union.
func IsDisjointUnion[T comparable](events ...*Event[T]) bool {
	total := 0
	seen := make(map[T]struct{})
	for _, e := range events {
		total += e.Cardinality()
		for _, x := range e.elems.order {
			seen[x] = struct{}{}
		}
	}
	return total == len(seen)
}
