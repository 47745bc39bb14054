// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package clamp

import (
	"fmt"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Limits is an immutable inclusive range over an integer type.
// The zero value is the degenerate range [0, 0]. Limits are fixed at
// construction; a clamp never mutates its limits afterwards.
//
// Limits implements [Validator], so a range can be used directly as the
// validator of a [View].
type Limits[T constraints.Integer] struct {
	lower T
	upper T
}

// NewLimits builds the inclusive range [lower, upper].
// A lower bound above the upper bound is a configuration error and is
// rejected here with a *ConfigError.
func NewLimits[T constraints.Integer](lower, upper T) (Limits[T], error) {
	if lower > upper {
		return Limits[T]{}, &ConfigError[T]{Lower: lower, Upper: upper}
	}
	return Limits[T]{lower: lower, upper: upper}, nil
}

// MustLimits is like [NewLimits] but panics on invalid bounds.
// Intended for limits written as literals.
func MustLimits[T constraints.Integer](lower, upper T) Limits[T] {
	lim, err := NewLimits(lower, upper)
	if err != nil {
		panic(err.Error())
	}
	return lim
}

// FullRange returns the limits covering every value of T,
// from the minimum of the type to its maximum.
func FullRange[T constraints.Integer]() Limits[T] {
	return Limits[T]{lower: minOf[T](), upper: maxOf[T]()}
}

// Lower returns the inclusive lower bound.
func (l Limits[T]) Lower() T { return l.lower }

// Upper returns the inclusive upper bound.
func (l Limits[T]) Upper() T { return l.upper }

// Contains reports whether v lies within the range.
func (l Limits[T]) Contains(v T) bool {
	return v >= l.lower && v <= l.upper
}

// Validate returns nil if v lies within the range, or a
// *OutOfBoundsError carrying the value and both bounds.
func (l Limits[T]) Validate(v T) error {
	if !l.Contains(v) {
		return &OutOfBoundsError[T]{Value: v, Lower: l.lower, Upper: l.upper}
	}
	return nil
}

// Clamp returns v forced into the range: the nearest bound if v lies
// outside, v itself otherwise.
func (l Limits[T]) Clamp(v T) T {
	if v < l.lower {
		return l.lower
	}
	if v > l.upper {
		return l.upper
	}
	return v
}

// Default resolves the default value for the range: zero if zero is
// representable within it, the lower bound otherwise.
func (l Limits[T]) Default() T {
	var zero T
	if l.Contains(zero) {
		return zero
	}
	return l.lower
}

func (l Limits[T]) String() string {
	return fmt.Sprintf("[%v, %v]", l.lower, l.upper)
}

// isSigned reports whether T is a signed integer type.
// For signed types all-ones is -1, below zero.
func isSigned[T constraints.Integer]() bool {
	var zero T
	return ^zero < zero
}

// minOf returns the minimum representable value of T.
func minOf[T constraints.Integer]() T {
	var zero T
	if !isSigned[T]() {
		return zero
	}
	// Sign bit only: shifting wraps to the most negative value.
	return T(1) << (unsafe.Sizeof(zero)*8 - 1)
}

// maxOf returns the maximum representable value of T.
func maxOf[T constraints.Integer]() T {
	var zero T
	if !isSigned[T]() {
		return ^zero
	}
	return ^minOf[T]()
}
