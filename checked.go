// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package clamp

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Checked arithmetic over machine integers. Every operation reports
// whether the true mathematical result left the representable range of
// T, and in which direction. Direction matters: the limits of a clamp
// always lie inside the machine range, so a wrapped-high result has
// violated the upper bound and a wrapped-low result the lower bound,
// whatever the wrapped bit pattern says.
//
// Bitwise and/or/xor and complement cannot leave the machine range and
// have no checked form.

// opStatus classifies the outcome of a raw machine operation.
type opStatus uint8

const (
	opOK      opStatus = iota // result exact and representable
	opHigh                    // true result above the machine maximum
	opLow                     // true result below the machine minimum
	opDivZero                 // zero divisor
)

func (st opStatus) err() error {
	switch st {
	case opHigh, opLow:
		return ErrMachineOverflow
	case opDivZero:
		return ErrDivideByZero
	}
	return nil
}

func checkedAdd[T constraints.Integer](a, b T) (T, opStatus) {
	r := a + b
	if b > 0 && r < a {
		return r, opHigh
	}
	if b < 0 && r > a {
		return r, opLow
	}
	return r, opOK
}

func checkedSub[T constraints.Integer](a, b T) (T, opStatus) {
	r := a - b
	if b > 0 && r > a {
		return r, opLow
	}
	if b < 0 && r < a {
		return r, opHigh
	}
	return r, opOK
}

func checkedMul[T constraints.Integer](a, b T) (T, opStatus) {
	if a == 0 || b == 0 {
		return 0, opOK
	}
	// Signed-only: the most negative value times -1 wraps to itself and
	// slips past the quotient test below.
	if isSigned[T]() {
		negOne := ^T(0)
		if (a == minOf[T]() && b == negOne) || (b == minOf[T]() && a == negOne) {
			return a * b, opHigh
		}
	}
	r := a * b
	if r/b != a {
		if (a > 0) == (b > 0) {
			return r, opHigh
		}
		return r, opLow
	}
	return r, opOK
}

func checkedDiv[T constraints.Integer](a, b T) (T, opStatus) {
	if b == 0 {
		return 0, opDivZero
	}
	if isSigned[T]() && a == minOf[T]() && b == ^T(0) {
		return a, opHigh
	}
	return a / b, opOK
}

func checkedRem[T constraints.Integer](a, b T) (T, opStatus) {
	if b == 0 {
		return 0, opDivZero
	}
	if isSigned[T]() && a == minOf[T]() && b == ^T(0) {
		return 0, opOK
	}
	return a % b, opOK
}

func checkedNeg[T constraints.Integer](a T) (T, opStatus) {
	if a == 0 {
		return 0, opOK
	}
	if !isSigned[T]() {
		// The true result of negating a positive unsigned value is
		// negative, below any unsigned range.
		return -a, opLow
	}
	if a == minOf[T]() {
		return a, opHigh
	}
	return -a, opOK
}

func checkedShl[T constraints.Integer](a T, n uint) (T, opStatus) {
	if a == 0 {
		return 0, opOK
	}
	if n >= uint(bitsOf[T]()) {
		if a > 0 {
			return 0, opHigh
		}
		return 0, opLow
	}
	r := a << n
	if r>>n != a {
		if a > 0 {
			return r, opHigh
		}
		return r, opLow
	}
	return r, opOK
}

func checkedShr[T constraints.Integer](a T, n uint) (T, opStatus) {
	if n >= uint(bitsOf[T]()) {
		if isSigned[T]() && a < 0 {
			return ^T(0), opOK
		}
		return 0, opOK
	}
	return a >> n, opOK
}

// CheckedAdd returns a+b, or ErrMachineOverflow if the sum is not
// representable in T.
func CheckedAdd[T constraints.Integer](a, b T) (T, error) {
	r, st := checkedAdd(a, b)
	if err := st.err(); err != nil {
		return 0, err
	}
	return r, nil
}

// CheckedSub returns a-b, or ErrMachineOverflow.
func CheckedSub[T constraints.Integer](a, b T) (T, error) {
	r, st := checkedSub(a, b)
	if err := st.err(); err != nil {
		return 0, err
	}
	return r, nil
}

// CheckedMul returns a*b, or ErrMachineOverflow.
func CheckedMul[T constraints.Integer](a, b T) (T, error) {
	r, st := checkedMul(a, b)
	if err := st.err(); err != nil {
		return 0, err
	}
	return r, nil
}

// CheckedDiv returns a/b. Division by zero yields ErrDivideByZero;
// dividing the most negative value by -1 yields ErrMachineOverflow.
func CheckedDiv[T constraints.Integer](a, b T) (T, error) {
	r, st := checkedDiv(a, b)
	if err := st.err(); err != nil {
		return 0, err
	}
	return r, nil
}

// CheckedRem returns a%b, or ErrDivideByZero for a zero divisor.
func CheckedRem[T constraints.Integer](a, b T) (T, error) {
	r, st := checkedRem(a, b)
	if err := st.err(); err != nil {
		return 0, err
	}
	return r, nil
}

// CheckedNeg returns -a, or ErrMachineOverflow when the negation is not
// representable (any positive unsigned value, or the signed minimum).
func CheckedNeg[T constraints.Integer](a T) (T, error) {
	r, st := checkedNeg(a)
	if err := st.err(); err != nil {
		return 0, err
	}
	return r, nil
}

// CheckedShl returns a<<n, or ErrMachineOverflow if set bits are
// discarded.
func CheckedShl[T constraints.Integer](a T, n uint) (T, error) {
	r, st := checkedShl(a, n)
	if err := st.err(); err != nil {
		return 0, err
	}
	return r, nil
}

// CheckedShr returns a>>n. Shifting never overflows; counts at or past
// the word width drain to zero (or the sign fill for negative values).
func CheckedShr[T constraints.Integer](a T, n uint) (T, error) {
	r, _ := checkedShr(a, n)
	return r, nil
}

// resolve routes a checked result through the limits and the behavior
// policy B. This is the single resolution path shared by all clamp
// arithmetic: exact in-range results pass through, representable
// violations go to ResolveOverflow/ResolveUnderflow, wraps to the wrap
// hook, and a zero divisor fails unconditionally.
func resolve[T constraints.Integer, B Behavior[T]](r T, st opStatus, lim Limits[T]) T {
	var b B
	switch st {
	case opDivZero:
		panic(ErrDivideByZero.Error())
	case opHigh:
		return b.resolveWrap(true, lim.lower, lim.upper)
	case opLow:
		return b.resolveWrap(false, lim.lower, lim.upper)
	}
	if r > lim.upper {
		return b.ResolveOverflow(r, lim.upper)
	}
	if r < lim.lower {
		return b.ResolveUnderflow(r, lim.lower)
	}
	return r
}

// bitsOf returns the width of T in bits.
func bitsOf[T constraints.Integer]() int {
	var zero T
	return int(unsafe.Sizeof(zero) * 8)
}
