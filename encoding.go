// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package clamp

import (
	"encoding/json"
	"errors"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Serialization carries only the raw inner value: no limits, behavior,
// or validator metadata is persisted. Decoding therefore targets a
// configured receiver — one built by a constructor, whose limits or
// validator govern re-validation — and runs the same validation as
// construction: an out-of-range value fails a HardClamp decode, while
// SoftClamp and View decodes always succeed, consistent with their soft
// construction semantics.

// ParseHard parses the primitive representation of T and applies the
// same validation path as [NewHard]. Malformed text yields a
// *ParseError, distinct from the *OutOfBoundsError of a well-formed but
// out-of-range value.
func ParseHard[T constraints.Integer, B Behavior[T]](s string, lim Limits[T]) (HardClamp[T, B], error) {
	v, err := parseInt[T](s)
	if err != nil {
		return HardClamp[T, B]{}, err
	}
	return NewHard[T, B](v, lim)
}

// ParseSoft parses the primitive representation of T into a SoftClamp,
// storing the value verbatim. Only malformed text fails.
func ParseSoft[T constraints.Integer, B Behavior[T]](s string, lim Limits[T]) (SoftClamp[T, B], error) {
	v, err := parseInt[T](s)
	if err != nil {
		return SoftClamp[T, B]{}, err
	}
	return NewSoft[T, B](v, lim), nil
}

// MarshalJSON encodes the raw value only.
func (c HardClamp[T, B]) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Get())
}

// UnmarshalJSON decodes a raw value and re-validates it against the
// receiver's limits; an out-of-range value is a decode failure and
// leaves the clamp unchanged.
func (c *HardClamp[T, B]) UnmarshalJSON(data []byte) error {
	c.ensureUnguarded()
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return &ParseError{Text: string(data), Err: err}
	}
	if err := c.limits.Validate(v); err != nil {
		return err
	}
	c.value = v
	return nil
}

// MarshalText encodes the raw value in decimal.
func (c HardClamp[T, B]) MarshalText() ([]byte, error) {
	return []byte(formatInt(c.Get())), nil
}

// UnmarshalText parses a decimal value and re-validates it against the
// receiver's limits, mirroring [ParseHard].
func (c *HardClamp[T, B]) UnmarshalText(text []byte) error {
	c.ensureUnguarded()
	v, err := parseInt[T](string(text))
	if err != nil {
		return err
	}
	if err := c.limits.Validate(v); err != nil {
		return err
	}
	c.value = v
	return nil
}

// MarshalJSON encodes the raw value only.
func (c SoftClamp[T, B]) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Get())
}

// UnmarshalJSON decodes a raw value verbatim; the result may be
// invalid, as IsValid will report.
func (c *SoftClamp[T, B]) UnmarshalJSON(data []byte) error {
	c.ensureUnguarded()
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return &ParseError{Text: string(data), Err: err}
	}
	c.value = v
	return nil
}

// MarshalText encodes the raw value in decimal.
func (c SoftClamp[T, B]) MarshalText() ([]byte, error) {
	return []byte(formatInt(c.Get())), nil
}

// UnmarshalText parses a decimal value and stores it verbatim.
func (c *SoftClamp[T, B]) UnmarshalText(text []byte) error {
	c.ensureUnguarded()
	v, err := parseInt[T](string(text))
	if err != nil {
		return err
	}
	c.value = v
	return nil
}

// MarshalJSON encodes the inner item only; the validator is never
// persisted.
func (v View[T, V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Get())
}

// UnmarshalJSON decodes the inner item verbatim. The decoded item may
// be invalid, as Check will report.
func (v *View[T, V]) UnmarshalJSON(data []byte) error {
	v.ensureUnguarded()
	return json.Unmarshal(data, &v.item)
}

// parseInt parses the decimal representation of any integer type,
// sized and signed per T. Text that parses but cannot fit the machine
// word wraps ErrMachineOverflow inside the *ParseError.
func parseInt[T constraints.Integer](s string) (T, error) {
	if isSigned[T]() {
		n, err := strconv.ParseInt(s, 10, bitsOf[T]())
		if err != nil {
			return 0, wrapParseErr(s, err)
		}
		return T(n), nil
	}
	n, err := strconv.ParseUint(s, 10, bitsOf[T]())
	if err != nil {
		return 0, wrapParseErr(s, err)
	}
	return T(n), nil
}

func wrapParseErr(s string, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return &ParseError{Text: s, Err: ErrMachineOverflow}
	}
	return &ParseError{Text: s, Err: err}
}

// formatInt renders any integer type in decimal.
func formatInt[T constraints.Integer](v T) string {
	if isSigned[T]() {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}
