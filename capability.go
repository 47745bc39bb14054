// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package clamp

import (
	"encoding"

	"golang.org/x/exp/constraints"
)

// Capability surfaces consumed by wrapper generators built on top of
// this package. Code that emits concrete clamp-backed struct or enum
// wrappers targets exactly these three interfaces; they are the stable
// boundary of the core. Both *HardClamp and *SoftClamp satisfy all
// three.

// Bounded is the bounds capability: expose the enforced (or checked)
// range of a wrapped value.
type Bounded[T constraints.Integer] interface {
	Limits() Limits[T]
}

// Behaved is the behavior capability: expose the owner's static
// overflow policy.
type Behaved[T constraints.Integer] interface {
	Behavior() Behavior[T]
}

// Converter is the conversion capability: a bidirectional mapping
// between the wrapper and its raw integer type. Wrapper to raw is Get;
// raw to wrapper is the text codec, which runs the owner's own
// validation path.
type Converter[T constraints.Integer] interface {
	Get() T
	encoding.TextMarshaler
	encoding.TextUnmarshaler
}

var (
	_ Bounded[uint8]   = (*HardClamp[uint8, Saturating[uint8]])(nil)
	_ Behaved[uint8]   = (*HardClamp[uint8, Saturating[uint8]])(nil)
	_ Converter[uint8] = (*HardClamp[uint8, Saturating[uint8]])(nil)
	_ Bounded[uint8]   = (*SoftClamp[uint8, Saturating[uint8]])(nil)
	_ Behaved[uint8]   = (*SoftClamp[uint8, Saturating[uint8]])(nil)
	_ Converter[uint8] = (*SoftClamp[uint8, Saturating[uint8]])(nil)
)
