// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package clamp

import (
	"errors"
	"fmt"
)

// Sentinel errors for conditions that no Behavior can resolve.
// Both are unconditional: they are reported the same way under
// Saturating and Panicking alike.
var (
	// ErrDivideByZero reports a division or remainder with a zero divisor.
	ErrDivideByZero = errors.New("clamp: division by zero")

	// ErrMachineOverflow reports a raw result that cannot be represented
	// in the machine word of the operand type, as opposed to a result
	// that is representable but outside the declared limits.
	ErrMachineOverflow = errors.New("clamp: result overflows the machine word")
)

// OutOfBoundsError reports a value outside its declared limits.
// It is returned by the validating entry points: construction, Set,
// Validate, guard Commit, and deserialization.
type OutOfBoundsError[T any] struct {
	Value T
	Lower T
	Upper T
}

func (e *OutOfBoundsError[T]) Error() string {
	return fmt.Sprintf("clamp: value %v outside bounds [%v, %v]", e.Value, e.Lower, e.Upper)
}

// ConfigError reports limits whose lower bound exceeds the upper bound.
// It is returned at the point the limits are fixed, never deferred to
// first use.
type ConfigError[T any] struct {
	Lower T
	Upper T
}

func (e *ConfigError[T]) Error() string {
	return fmt.Sprintf("clamp: invalid limits: lower bound %v above upper bound %v", e.Lower, e.Upper)
}

// ParseError reports text that could not be parsed as the primitive type.
// Malformed text is distinct from an out-of-range value: a well-formed
// number outside the limits yields an OutOfBoundsError instead. Text that
// parses but cannot fit the machine word wraps ErrMachineOverflow.
type ParseError struct {
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("clamp: cannot parse %q: %v", e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
