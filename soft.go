// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package clamp

import "golang.org/x/exp/constraints"

// SoftClamp carries the same limits and behavior parameters as
// [HardClamp] but no representation invariant: the raw value may drift
// outside the range. The behavior-mediated paths — [SoftClamp.Set] and
// arithmetic — resolve violations like a HardClamp would, while
// [SoftClamp.SetUnchecked] stores any value verbatim, and the value then
// stays out of range until the next resolved write. [SoftClamp.IsValid]
// reports current compliance, recomputed on every call.
type SoftClamp[T constraints.Integer, B Behavior[T]] struct {
	value   T
	limits  Limits[T]
	guarded bool
}

// NewSoft builds a SoftClamp holding value verbatim, even out of range.
// It always succeeds.
func NewSoft[T constraints.Integer, B Behavior[T]](value T, lim Limits[T]) SoftClamp[T, B] {
	return SoftClamp[T, B]{value: value, limits: lim}
}

// DefaultSoft builds a SoftClamp holding the limits' default value.
func DefaultSoft[T constraints.Integer, B Behavior[T]](lim Limits[T]) SoftClamp[T, B] {
	return SoftClamp[T, B]{value: lim.Default(), limits: lim}
}

func (c SoftClamp[T, B]) ensureUnguarded() {
	if c.guarded {
		panic("clamp: value is leased to an open guard")
	}
}

// Get returns the raw value, in or out of range.
func (c SoftClamp[T, B]) Get() T {
	c.ensureUnguarded()
	return c.value
}

// Checked returns the value if it currently lies within the limits, or
// a *OutOfBoundsError describing the violation.
func (c SoftClamp[T, B]) Checked() (T, error) {
	c.ensureUnguarded()
	if err := c.limits.Validate(c.value); err != nil {
		return 0, err
	}
	return c.value, nil
}

// IsValid reports whether the value currently lies within the limits.
func (c SoftClamp[T, B]) IsValid() bool {
	c.ensureUnguarded()
	return c.limits.Contains(c.value)
}

// Limits returns the range this clamp checks against.
func (c SoftClamp[T, B]) Limits() Limits[T] { return c.limits }

// Behavior returns the clamp's static overflow policy.
func (c SoftClamp[T, B]) Behavior() Behavior[T] {
	var b B
	return b
}

// Validate checks a candidate value against the clamp's limits.
func (c SoftClamp[T, B]) Validate(value T) error {
	return c.limits.Validate(value)
}

// Set stores value through the behavior policy: Saturating forces an
// out-of-range candidate to the nearest bound, Panicking treats it as
// fatal. This is the resolved write path; use [SoftClamp.SetUnchecked]
// to bypass it.
func (c *SoftClamp[T, B]) Set(value T) {
	c.ensureUnguarded()
	c.value = resolve[T, B](value, opOK, c.limits)
}

// SetUnchecked stores value verbatim, bypassing behavior resolution.
// The clamp may be invalid afterwards; IsValid will say so.
func (c *SoftClamp[T, B]) SetUnchecked(value T) {
	c.ensureUnguarded()
	c.value = value
}

// Modify opens a [Guard] staged with the current raw value, leasing the
// clamp exactly as [HardClamp.Modify] does. Soft commit accepts any
// staged value as-is: softness means the guard protocol does not
// enforce the range either.
func (c *SoftClamp[T, B]) Modify() *Guard[T] {
	if c.guarded {
		panic("clamp: a guard is already open on this value")
	}
	c.guarded = true
	return &Guard[T]{staged: c.value, snapshot: c.value, owner: c, eq: eqOrdered[T]}
}

func (c *SoftClamp[T, B]) validateStaged(T) error { return nil }
func (c *SoftClamp[T, B]) acceptStaged(v T)       { c.value = v }
func (c *SoftClamp[T, B]) releaseGuard()          { c.guarded = false }

// Arithmetic: same behavior-mediated engine as HardClamp. A SoftClamp
// holding an out-of-range value (via SetUnchecked) re-enters the range
// on the first resolved operation under Saturating.

// Add adds rhs to the value.
func (c *SoftClamp[T, B]) Add(rhs T) {
	c.ensureUnguarded()
	r, st := checkedAdd(c.value, rhs)
	c.value = resolve[T, B](r, st, c.limits)
}

// Sub subtracts rhs from the value.
func (c *SoftClamp[T, B]) Sub(rhs T) {
	c.ensureUnguarded()
	r, st := checkedSub(c.value, rhs)
	c.value = resolve[T, B](r, st, c.limits)
}

// Mul multiplies the value by rhs.
func (c *SoftClamp[T, B]) Mul(rhs T) {
	c.ensureUnguarded()
	r, st := checkedMul(c.value, rhs)
	c.value = resolve[T, B](r, st, c.limits)
}

// Div divides the value by rhs.
func (c *SoftClamp[T, B]) Div(rhs T) {
	c.ensureUnguarded()
	r, st := checkedDiv(c.value, rhs)
	c.value = resolve[T, B](r, st, c.limits)
}

// Mod replaces the value with its remainder modulo rhs.
func (c *SoftClamp[T, B]) Mod(rhs T) {
	c.ensureUnguarded()
	r, st := checkedRem(c.value, rhs)
	c.value = resolve[T, B](r, st, c.limits)
}

// And applies bitwise AND with rhs.
func (c *SoftClamp[T, B]) And(rhs T) {
	c.ensureUnguarded()
	c.value = resolve[T, B](c.value&rhs, opOK, c.limits)
}

// Or applies bitwise OR with rhs.
func (c *SoftClamp[T, B]) Or(rhs T) {
	c.ensureUnguarded()
	c.value = resolve[T, B](c.value|rhs, opOK, c.limits)
}

// Xor applies bitwise XOR with rhs.
func (c *SoftClamp[T, B]) Xor(rhs T) {
	c.ensureUnguarded()
	c.value = resolve[T, B](c.value^rhs, opOK, c.limits)
}

// Shl shifts the value left by n bits.
func (c *SoftClamp[T, B]) Shl(n uint) {
	c.ensureUnguarded()
	r, st := checkedShl(c.value, n)
	c.value = resolve[T, B](r, st, c.limits)
}

// Shr shifts the value right by n bits.
func (c *SoftClamp[T, B]) Shr(n uint) {
	c.ensureUnguarded()
	r, st := checkedShr(c.value, n)
	c.value = resolve[T, B](r, st, c.limits)
}

// Neg negates the value.
func (c *SoftClamp[T, B]) Neg() {
	c.ensureUnguarded()
	r, st := checkedNeg(c.value)
	c.value = resolve[T, B](r, st, c.limits)
}

// Not replaces the value with its bitwise complement.
func (c *SoftClamp[T, B]) Not() {
	c.ensureUnguarded()
	c.value = resolve[T, B](^c.value, opOK, c.limits)
}
