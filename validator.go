// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package clamp

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Validator is a pure predicate over a value type: nil means valid, an
// error carries the reason. A validator holds no mutable state and must
// return the same result for the same input however many times it is
// asked, so callers are free to re-validate at will.
//
// [Limits] implements Validator, so a plain range can validate a [View].
type Validator[T any] interface {
	Validate(item T) error
}

// ValidatorFunc adapts a function to the [Validator] interface.
type ValidatorFunc[T any] func(item T) error

// Validate calls f(item).
func (f ValidatorFunc[T]) Validate(item T) error { return f(item) }

// RangeSet is a discontinuous membership validator: a value is valid if
// it equals one of the exact values or lies within one of the inclusive
// ranges. It expresses constraints a single [Limits] cannot, such as
// "below 10, or between 1000 and 2000".
type RangeSet[T constraints.Integer] struct {
	exacts []T
	ranges []Limits[T]
}

// NewRangeSet builds a RangeSet from inclusive ranges.
func NewRangeSet[T constraints.Integer](ranges ...Limits[T]) RangeSet[T] {
	return RangeSet[T]{ranges: ranges}
}

// WithExact returns a copy of the set that additionally admits the
// given exact values.
func (s RangeSet[T]) WithExact(values ...T) RangeSet[T] {
	exacts := make([]T, 0, len(s.exacts)+len(values))
	exacts = append(exacts, s.exacts...)
	exacts = append(exacts, values...)
	return RangeSet[T]{exacts: exacts, ranges: s.ranges}
}

// Contains reports whether v is admitted by the set.
func (s RangeSet[T]) Contains(v T) bool {
	for _, e := range s.exacts {
		if v == e {
			return true
		}
	}
	for _, r := range s.ranges {
		if r.Contains(v) {
			return true
		}
	}
	return false
}

// Validate implements [Validator].
func (s RangeSet[T]) Validate(item T) error {
	if !s.Contains(item) {
		return fmt.Errorf("clamp: value %v not admitted by range set", item)
	}
	return nil
}
