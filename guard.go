// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package clamp

// GuardState is the derived state of an open guard: whether the staged
// value currently diverges from the snapshot taken at guard creation.
type GuardState uint8

const (
	// GuardUnchanged means the staged value equals the snapshot.
	GuardUnchanged GuardState = iota
	// GuardChanged means the staged value diverges from the snapshot.
	GuardChanged
)

func (s GuardState) String() string {
	if s == GuardChanged {
		return "Changed"
	}
	return "Unchanged"
}

// guardOwner is what a Guard needs from the value it was opened on:
// commit-time validation, the unconditional write-back, and the lease
// release. HardClamp validates against its limits, SoftClamp accepts any
// staged value, View delegates to its validator.
type guardOwner[T any] interface {
	validateStaged(v T) error
	acceptStaged(v T)
	releaseGuard()
}

// Guard is a staged-mutation handle over a clamp or view. It holds a
// scratch copy of the owner's value; the owner itself is leased for the
// guard's lifetime and is reconciled only by an explicit terminal call.
//
// A guard reaches exactly one terminal outcome: [Guard.Commit]
// re-validates the staged value and atomically replaces the owner's
// value on success, and [Guard.Cancel] discards the staged value
// unconditionally. Either way the lease is released and the guard is
// spent; using a spent guard panics, in the manner of a one-shot
// continuation resumed twice.
//
// A failed Commit is not terminal: the owner keeps its pre-guard value,
// the error is returned, and the guard stays open so the caller can fix
// the staged value and retry, or cancel.
type Guard[T any] struct {
	staged   T
	snapshot T
	owner    guardOwner[T]
	eq       func(a, b T) bool
	spent    bool
}

func (g *Guard[T]) ensureOpen() {
	if g.spent {
		panic("clamp: guard used after commit or cancel")
	}
}

// Get returns the staged value.
func (g *Guard[T]) Get() T {
	g.ensureOpen()
	return g.staged
}

// Set replaces the staged value. The owner is untouched; only Commit
// publishes the staged value. Setting the staged value back to the
// snapshot returns the guard to the Unchanged state: divergence is
// equality-based, not edit-counted.
func (g *Guard[T]) Set(v T) {
	g.ensureOpen()
	g.staged = v
}

// Update applies f to the staged value.
func (g *Guard[T]) Update(f func(T) T) {
	g.ensureOpen()
	g.staged = f(g.staged)
}

// Check peeks at the derived state without transitioning: GuardChanged
// iff the staged value differs from the snapshot.
func (g *Guard[T]) Check() GuardState {
	g.ensureOpen()
	if g.eq(g.staged, g.snapshot) {
		return GuardUnchanged
	}
	return GuardChanged
}

// Validate reports what Commit would decide for the current staged
// value, without committing or transitioning.
func (g *Guard[T]) Validate() error {
	g.ensureOpen()
	return g.owner.validateStaged(g.staged)
}

// Commit re-validates the staged value and, on success, replaces the
// owner's value with it, releases the lease, and spends the guard.
// On failure the owner is left exactly at its pre-guard value and the
// guard remains open. Commit never partially applies the staged value.
func (g *Guard[T]) Commit() error {
	g.ensureOpen()
	if err := g.owner.validateStaged(g.staged); err != nil {
		return err
	}
	g.owner.acceptStaged(g.staged)
	g.owner.releaseGuard()
	g.spent = true
	return nil
}

// MustCommit is like [Guard.Commit] but panics on a validation failure.
func (g *Guard[T]) MustCommit() {
	if err := g.Commit(); err != nil {
		panic(err.Error())
	}
}

// Cancel discards the staged value unconditionally, releases the lease,
// and spends the guard. The owner is unchanged.
func (g *Guard[T]) Cancel() {
	g.ensureOpen()
	g.owner.releaseGuard()
	g.spent = true
}

// eqOrdered is the change predicate for integer-valued guards.
func eqOrdered[T comparable](a, b T) bool { return a == b }
