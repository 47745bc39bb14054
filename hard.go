// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package clamp

import "golang.org/x/exp/constraints"

// HardClamp is an integer whose observable value is always within its
// limits. Construction rejects out-of-range values, arithmetic routes
// every violation through the behavior policy B, and the only other
// write path is a committed [Guard]. The one place the invariant may be
// suspended is the staging buffer of an open guard, which is not
// observable through the clamp.
//
// HardClamp is a plain value type: copying it copies the value and its
// limits. The zero value is the degenerate clamp 0 in [0, 0].
type HardClamp[T constraints.Integer, B Behavior[T]] struct {
	value   T
	limits  Limits[T]
	guarded bool
}

// NewHard builds a HardClamp holding value. It fails with a
// *OutOfBoundsError iff value lies outside lim; there is no silent
// clamping on construction.
func NewHard[T constraints.Integer, B Behavior[T]](value T, lim Limits[T]) (HardClamp[T, B], error) {
	if err := lim.Validate(value); err != nil {
		return HardClamp[T, B]{}, err
	}
	return HardClamp[T, B]{value: value, limits: lim}, nil
}

// MustHard is like [NewHard] but panics on an out-of-range value.
func MustHard[T constraints.Integer, B Behavior[T]](value T, lim Limits[T]) HardClamp[T, B] {
	c, err := NewHard[T, B](value, lim)
	if err != nil {
		panic(err.Error())
	}
	return c
}

// DefaultHard builds a HardClamp holding the limits' default value:
// zero if representable within the range, the lower bound otherwise.
func DefaultHard[T constraints.Integer, B Behavior[T]](lim Limits[T]) HardClamp[T, B] {
	return HardClamp[T, B]{value: lim.Default(), limits: lim}
}

// NewSaturated builds a Saturating HardClamp from any value by forcing
// it to the nearest bound first. Only the Saturating policy admits a
// constructor that silently clamps.
func NewSaturated[T constraints.Integer](value T, lim Limits[T]) HardClamp[T, Saturating[T]] {
	return HardClamp[T, Saturating[T]]{value: lim.Clamp(value), limits: lim}
}

func (c HardClamp[T, B]) ensureUnguarded() {
	if c.guarded {
		panic("clamp: value is leased to an open guard")
	}
}

// Get returns the current value. Total and infallible.
func (c HardClamp[T, B]) Get() T {
	c.ensureUnguarded()
	return c.value
}

// Limits returns the range this clamp enforces.
func (c HardClamp[T, B]) Limits() Limits[T] { return c.limits }

// Behavior returns the clamp's static overflow policy.
func (c HardClamp[T, B]) Behavior() Behavior[T] {
	var b B
	return b
}

// Validate checks a candidate value against the clamp's limits without
// constructing or mutating anything.
func (c HardClamp[T, B]) Validate(value T) error {
	return c.limits.Validate(value)
}

// Set replaces the value, failing with a *OutOfBoundsError if the
// candidate is out of range. The clamp is unchanged on failure.
func (c *HardClamp[T, B]) Set(value T) error {
	c.ensureUnguarded()
	if err := c.limits.Validate(value); err != nil {
		return err
	}
	c.value = value
	return nil
}

// Modify opens a [Guard] staged with the current value and leases the
// clamp to it: until the guard commits or cancels, every other access
// panics, and a second Modify panics. A guard that is abandoned without
// a terminal call never touches the clamp's value but keeps the lease;
// resolving guards explicitly is part of the protocol.
func (c *HardClamp[T, B]) Modify() *Guard[T] {
	if c.guarded {
		panic("clamp: a guard is already open on this value")
	}
	c.guarded = true
	return &Guard[T]{staged: c.value, snapshot: c.value, owner: c, eq: eqOrdered[T]}
}

func (c *HardClamp[T, B]) validateStaged(v T) error { return c.limits.Validate(v) }
func (c *HardClamp[T, B]) acceptStaged(v T)         { c.value = v }
func (c *HardClamp[T, B]) releaseGuard()            { c.guarded = false }

// Arithmetic. Each operation computes the raw result with checked
// machine arithmetic, then routes any violation of the limits through
// the behavior policy; the value is only ever written back in range.
// Division or remainder by zero panics regardless of policy. For an
// operand held in another clamp, pass other.Get().

// Add adds rhs to the value.
func (c *HardClamp[T, B]) Add(rhs T) {
	c.ensureUnguarded()
	r, st := checkedAdd(c.value, rhs)
	c.value = resolve[T, B](r, st, c.limits)
}

// Sub subtracts rhs from the value.
func (c *HardClamp[T, B]) Sub(rhs T) {
	c.ensureUnguarded()
	r, st := checkedSub(c.value, rhs)
	c.value = resolve[T, B](r, st, c.limits)
}

// Mul multiplies the value by rhs.
func (c *HardClamp[T, B]) Mul(rhs T) {
	c.ensureUnguarded()
	r, st := checkedMul(c.value, rhs)
	c.value = resolve[T, B](r, st, c.limits)
}

// Div divides the value by rhs.
func (c *HardClamp[T, B]) Div(rhs T) {
	c.ensureUnguarded()
	r, st := checkedDiv(c.value, rhs)
	c.value = resolve[T, B](r, st, c.limits)
}

// Mod replaces the value with its remainder modulo rhs.
func (c *HardClamp[T, B]) Mod(rhs T) {
	c.ensureUnguarded()
	r, st := checkedRem(c.value, rhs)
	c.value = resolve[T, B](r, st, c.limits)
}

// And applies bitwise AND with rhs.
func (c *HardClamp[T, B]) And(rhs T) {
	c.ensureUnguarded()
	c.value = resolve[T, B](c.value&rhs, opOK, c.limits)
}

// Or applies bitwise OR with rhs.
func (c *HardClamp[T, B]) Or(rhs T) {
	c.ensureUnguarded()
	c.value = resolve[T, B](c.value|rhs, opOK, c.limits)
}

// Xor applies bitwise XOR with rhs.
func (c *HardClamp[T, B]) Xor(rhs T) {
	c.ensureUnguarded()
	c.value = resolve[T, B](c.value^rhs, opOK, c.limits)
}

// Shl shifts the value left by n bits.
func (c *HardClamp[T, B]) Shl(n uint) {
	c.ensureUnguarded()
	r, st := checkedShl(c.value, n)
	c.value = resolve[T, B](r, st, c.limits)
}

// Shr shifts the value right by n bits.
func (c *HardClamp[T, B]) Shr(n uint) {
	c.ensureUnguarded()
	r, st := checkedShr(c.value, n)
	c.value = resolve[T, B](r, st, c.limits)
}

// Neg negates the value.
func (c *HardClamp[T, B]) Neg() {
	c.ensureUnguarded()
	r, st := checkedNeg(c.value)
	c.value = resolve[T, B](r, st, c.limits)
}

// Not replaces the value with its bitwise complement.
func (c *HardClamp[T, B]) Not() {
	c.ensureUnguarded()
	c.value = resolve[T, B](^c.value, opOK, c.limits)
}
