// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package clamp provides bounded value types that make invalid numeric
// states unrepresentable, plus a transactional stage/validate/commit
// mutation protocol for changes that might violate those constraints.
//
// It targets library authors who want domain invariants — bounded
// counters, clamped scales, validated configuration fields — encoded in
// the data model itself rather than re-checked ad hoc at every call
// site.
//
// # Limits and Behavior
//
// A [Limits] is an immutable inclusive range, fixed at construction:
//
//   - [NewLimits], [MustLimits]: build a range, rejecting lower > upper
//   - [FullRange]: the whole representable range of the type
//   - [Limits.Contains], [Limits.Validate], [Limits.Clamp]: membership
//   - [Limits.Default]: zero if representable, else the lower bound
//
// A [Behavior] is the static policy applied when an arithmetic result
// would leave the range. It is a type parameter of the clamp types, so
// the policy is part of the type, never a per-call argument:
//
//   - [Saturating]: resolve to the violated bound, never fail
//   - [Panicking]: treat the violation as a fatal programming error
//
// # Hard and soft clamps
//
// A [HardClamp] is always within its limits at every observable point;
// a [SoftClamp] may drift out of range and answers [SoftClamp.IsValid]
// instead:
//
//   - [NewHard], [MustHard], [DefaultHard], [NewSaturated], [RandHard]
//   - [NewSoft], [DefaultSoft], [RandSoft]
//   - Arithmetic (Add, Sub, Mul, Div, Mod, And, Or, Xor, Shl, Shr, Neg,
//     Not) computes the raw result with checked machine arithmetic and
//     routes violations through the behavior policy
//   - [SoftClamp.SetUnchecked] is the soft bypass: stores verbatim
//
// # The guard protocol
//
// Modify on a clamp or view opens a [Guard]: a short-lived handle over
// a staged scratch copy, reconciled with the owner only on an explicit
// terminal call. While a guard is open the owner is leased: any other
// access, including a second Modify, panics.
//
//   - [Guard.Get], [Guard.Set], [Guard.Update]: staged access
//   - [Guard.Check]: derived [GuardState], equality against the
//     snapshot
//   - [Guard.Validate]: peek at what Commit would decide
//   - [Guard.Commit]: re-validate, then atomically replace the owner's
//     value; on failure the owner is untouched and the guard stays open
//   - [Guard.Cancel]: discard unconditionally
//
// Commit and Cancel spend the guard; using a spent guard panics. An
// abandoned guard never touches its owner but keeps the lease, so
// resolving guards explicitly is part of the protocol.
//
// # Validators and views
//
// A [Validator] generalizes limits to arbitrary value types, and a
// [View] pairs an item with one, exposing the same check/guard
// protocol without bounding the item:
//
//   - [NewView], [View.IsValid], [View.Check], [View.Modify]
//   - [View.TryUnwrap]: the item if valid; otherwise the view stays
//     intact so nothing is lost
//   - [ValidatorFunc]: func adapter; [Limits] is itself a Validator
//   - [RangeSet]: discontinuous membership (exact values plus ranges)
//
// # Checked arithmetic
//
// The engine underneath the clamp operators is exported for callers
// that want machine-width checking without limits:
//
//   - [CheckedAdd], [CheckedSub], [CheckedMul], [CheckedDiv],
//     [CheckedRem], [CheckedNeg], [CheckedShl], [CheckedShr]
//   - [ErrMachineOverflow]: result not representable in the word
//   - [ErrDivideByZero]: unconditional, whatever the behavior
//
// # Serialization
//
// Clamps and views serialize to and from the raw inner value only; no
// limits, behavior, or validator metadata is persisted. Decoding runs
// the same validation as construction: out-of-range fails a HardClamp
// decode, while SoftClamp and View decodes always succeed. [ParseHard]
// and [ParseSoft] parse text through the same path, with malformed text
// ([ParseError]) distinct from out-of-range ([OutOfBoundsError]).
//
// # Capability surfaces
//
// Wrapper generators target three stable interfaces: [Bounded],
// [Behaved], and [Converter]. Both clamp types satisfy all three.
//
// # Example
//
//	lim := clamp.MustLimits[uint8](0, 10)
//	c := clamp.MustHard[uint8, clamp.Saturating[uint8]](5, lim)
//
//	c.Add(20) // saturates at 10
//
//	g := c.Modify()
//	g.Set(15)
//	if err := g.Commit(); err != nil {
//		g.Set(10)
//		g.MustCommit() // owner now reads 10
//	}
package clamp
