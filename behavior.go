// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package clamp

import "fmt"

// Behavior is the policy applied when an arithmetic result would leave
// the declared limits. It is a type parameter of the clamp types, not a
// per-call argument: two clamps over the same T and limits but different
// behaviors are distinct types with no implicit conversion between them.
//
// The unexported wrap hook closes the interface to the two policies
// shipped by this package, [Saturating] and [Panicking].
type Behavior[T any] interface {
	// ResolveOverflow resolves a representable result above the upper
	// bound: a replacement in-range value, or no return at all.
	ResolveOverflow(raw, upper T) T

	// ResolveUnderflow resolves a representable result below the lower
	// bound.
	ResolveUnderflow(raw, lower T) T

	// resolveWrap resolves a result that wrapped the machine word.
	// A wrapped-high result necessarily exceeds the upper bound and a
	// wrapped-low result is necessarily below the lower bound, so the
	// violated side is known even though the raw value is not
	// representable.
	resolveWrap(high bool, lower, upper T) T
}

// Saturating resolves every violation to the nearest bound and never
// fails. Callers relying on Saturating observe errors only from the
// explicit validating entry points, never from ordinary arithmetic.
type Saturating[T any] struct{}

func (Saturating[T]) ResolveOverflow(raw, upper T) T  { return upper }
func (Saturating[T]) ResolveUnderflow(raw, lower T) T { return lower }

func (Saturating[T]) resolveWrap(high bool, lower, upper T) T {
	if high {
		return upper
	}
	return lower
}

// Panicking treats every violation as a fatal programming error: the
// operation must not silently produce an out-of-range or garbage value,
// so it panics instead of returning.
type Panicking[T any] struct{}

func (Panicking[T]) ResolveOverflow(raw, upper T) T {
	panic(fmt.Sprintf("clamp: result %v above upper bound %v", raw, upper))
}

func (Panicking[T]) ResolveUnderflow(raw, lower T) T {
	panic(fmt.Sprintf("clamp: result %v below lower bound %v", raw, lower))
}

func (Panicking[T]) resolveWrap(high bool, lower, upper T) T {
	panic(ErrMachineOverflow.Error())
}
