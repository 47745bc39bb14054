// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package clamp

import "reflect"

// View generalizes the clamp idea to arbitrary value types: it pairs an
// item with a [Validator] and exposes the same check/guard protocol as
// the clamp types, without bounding the item itself. No invariant ties
// the item to the validator — a View may legitimately hold an invalid
// item; validity is checked on demand and enforced only where a guard
// commits.
type View[T any, V Validator[T]] struct {
	item      T
	validator V
	guarded   bool
}

// NewView pairs item with validator. It always succeeds, whether or not
// the item is currently valid.
func NewView[T any, V Validator[T]](item T, validator V) View[T, V] {
	return View[T, V]{item: item, validator: validator}
}

func (v View[T, V]) ensureUnguarded() {
	if v.guarded {
		panic("clamp: value is leased to an open guard")
	}
}

// Get returns the current item.
func (v View[T, V]) Get() T {
	v.ensureUnguarded()
	return v.item
}

// Set replaces the item without validation; views never enforce
// validity on mutation.
func (v *View[T, V]) Set(item T) {
	v.ensureUnguarded()
	v.item = item
}

// Validator returns the view's validator.
func (v View[T, V]) Validator() V { return v.validator }

// IsValid reports whether the item currently satisfies the validator.
func (v View[T, V]) IsValid() bool {
	return v.Check() == nil
}

// Check re-validates the item, returning the validator's reason on
// failure. Non-consuming; may be called any number of times.
func (v View[T, V]) Check() error {
	v.ensureUnguarded()
	return v.validator.Validate(v.item)
}

// Modify opens a [Guard] staged with the current item, leasing the view
// to it. Commit delegates final validation to the validator; an invalid
// staged item leaves the view's item untouched.
func (v *View[T, V]) Modify() *Guard[T] {
	if v.guarded {
		panic("clamp: a guard is already open on this value")
	}
	v.guarded = true
	return &Guard[T]{staged: v.item, snapshot: v.item, owner: v, eq: eqDeep[T]}
}

func (v *View[T, V]) validateStaged(item T) error { return v.validator.Validate(item) }
func (v *View[T, V]) acceptStaged(item T)         { v.item = item }
func (v *View[T, V]) releaseGuard()               { v.guarded = false }

// TryUnwrap returns the inner item if it is currently valid. If it is
// invalid, the item stays in the view — value and validator intact — so
// the caller can inspect it, repair it through a new Modify, or discard
// the view; the returned error is the validator's reason.
func (v View[T, V]) TryUnwrap() (T, error) {
	v.ensureUnguarded()
	if err := v.validator.Validate(v.item); err != nil {
		var zero T
		return zero, err
	}
	return v.item, nil
}

// Unwrap returns the inner item, panicking if it is currently invalid.
func (v View[T, V]) Unwrap() T {
	item, err := v.TryUnwrap()
	if err != nil {
		panic(err.Error())
	}
	return item
}

// Cancel destructively discards the item, resetting it to the zero
// value of T. Typically used after TryUnwrap reports an invalid item
// the caller decides not to repair.
func (v *View[T, V]) Cancel() {
	v.ensureUnguarded()
	var zero T
	v.item = zero
}

// eqDeep is the change predicate for view guards. Items of arbitrary
// type need not be comparable with ==, so divergence from the snapshot
// is decided structurally.
func eqDeep[T any](a, b T) bool { return reflect.DeepEqual(a, b) }
