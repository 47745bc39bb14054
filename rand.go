// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package clamp

import (
	"math"
	"math/rand/v2"

	"golang.org/x/exp/constraints"
)

// RandHard builds a HardClamp holding a value sampled uniformly within
// lim, drawn from the process-wide random source.
func RandHard[T constraints.Integer, B Behavior[T]](lim Limits[T]) HardClamp[T, B] {
	return HardClamp[T, B]{value: randIn(lim), limits: lim}
}

// RandSoft builds a SoftClamp holding a value sampled uniformly within
// lim.
func RandSoft[T constraints.Integer, B Behavior[T]](lim Limits[T]) SoftClamp[T, B] {
	return SoftClamp[T, B]{value: randIn(lim), limits: lim}
}

// randIn samples uniformly from [lim.lower, lim.upper]. The span and
// the offset addition are computed modulo the word size; the result is
// in range by construction, so the wraparound is exact.
func randIn[T constraints.Integer](lim Limits[T]) T {
	span := uint64(lim.upper) - uint64(lim.lower)
	var n uint64
	if span == math.MaxUint64 {
		n = rand.Uint64()
	} else {
		n = rand.Uint64N(span + 1)
	}
	return lim.lower + T(n)
}
