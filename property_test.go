// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package clamp_test

import (
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/clamp"
)

const propertyN = 4096

func TestPropertyHardStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	lim := clamp.MustLimits[int16](-300, 900)
	c := clamp.DefaultHard[int16, clamp.Saturating[int16]](lim)
	for range propertyN {
		rhs := int16(rng.IntN(1<<16) - 1<<15)
		switch rng.IntN(8) {
		case 0:
			c.Add(rhs)
		case 1:
			c.Sub(rhs)
		case 2:
			c.Mul(rhs)
		case 3:
			if rhs != 0 {
				c.Div(rhs)
			}
		case 4:
			if rhs != 0 {
				c.Mod(rhs)
			}
		case 5:
			c.Xor(rhs)
		case 6:
			c.Shl(uint(rng.IntN(20)))
		case 7:
			c.Neg()
		}
		if got := c.Get(); !lim.Contains(got) {
			t.Fatalf("value %d escaped [%d, %d]", got, lim.Lower(), lim.Upper())
		}
	}
}

func TestPropertySaturationIdempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1))
	lim := clamp.MustLimits[uint8](10, 200)
	for range propertyN {
		c := clamp.MustHard[uint8, clamp.Saturating[uint8]](lim.Upper(), lim)
		rhs := uint8(rng.IntN(256))
		c.Add(rhs)
		if c.Get() != lim.Upper() {
			t.Fatalf("add %d at upper bound: got %d, want %d", rhs, c.Get(), lim.Upper())
		}
		c.Set(lim.Lower())
		c.Sub(rhs)
		if c.Get() != lim.Lower() {
			t.Fatalf("sub %d at lower bound: got %d, want %d", rhs, c.Get(), lim.Lower())
		}
	}
}

func TestPropertySoftSetMatchesClamp(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 2))
	lim := clamp.MustLimits[int32](-1000, 1000)
	c := clamp.DefaultSoft[int32, clamp.Saturating[int32]](lim)
	for range propertyN {
		v := rng.Int32()
		c.Set(v)
		if c.Get() != lim.Clamp(v) {
			t.Fatalf("set %d: got %d, want %d", v, c.Get(), lim.Clamp(v))
		}
	}
}

func TestPropertyGuardCancelPreservesOwner(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 3))
	lim := clamp.MustLimits[int](0, 1_000_000)
	c := clamp.MustHard[int, clamp.Panicking[int]](500, lim)
	for range propertyN {
		before := c.Get()
		g := c.Modify()
		g.Set(rng.Int())
		g.Cancel()
		if c.Get() != before {
			t.Fatalf("cancel changed owner: %d -> %d", before, c.Get())
		}
	}
}

func TestPropertyGuardCommitNeverAdmitsInvalid(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 4))
	lim := clamp.MustLimits[int](100, 200)
	c := clamp.MustHard[int, clamp.Panicking[int]](150, lim)
	for range propertyN {
		g := c.Modify()
		g.Set(rng.IntN(1000))
		if err := g.Commit(); err != nil {
			g.Cancel()
		}
		if got := c.Get(); !lim.Contains(got) {
			t.Fatalf("committed value %d escaped [%d, %d]", got, lim.Lower(), lim.Upper())
		}
	}
}

func TestPropertyRandWithinLimits(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 5))
	for range propertyN {
		lo := int8(rng.IntN(1<<8) - 1<<7)
		hi := int8(rng.IntN(1<<8) - 1<<7)
		if lo > hi {
			lo, hi = hi, lo
		}
		lim := clamp.MustLimits(lo, hi)
		c := clamp.RandHard[int8, clamp.Panicking[int8]](lim)
		if got := c.Get(); !lim.Contains(got) {
			t.Fatalf("random value %d escaped [%d, %d]", got, lo, hi)
		}
	}
}

func TestPropertyCheckedAddMatchesWide(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 6))
	for range propertyN {
		a := int8(rng.IntN(1<<8) - 1<<7)
		b := int8(rng.IntN(1<<8) - 1<<7)
		wide := int64(a) + int64(b)
		got, err := clamp.CheckedAdd(a, b)
		if wide >= -128 && wide <= 127 {
			if err != nil {
				t.Fatalf("%d + %d: unexpected error %v", a, b, err)
			}
			if int64(got) != wide {
				t.Fatalf("%d + %d: got %d, want %d", a, b, got, wide)
			}
		} else if err == nil {
			t.Fatalf("%d + %d: overflow not reported", a, b)
		}
	}
}

func TestPropertyCheckedMulMatchesWide(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	for range propertyN {
		a := int8(rng.IntN(1<<8) - 1<<7)
		b := int8(rng.IntN(1<<8) - 1<<7)
		wide := int64(a) * int64(b)
		got, err := clamp.CheckedMul(a, b)
		if wide >= -128 && wide <= 127 {
			if err != nil {
				t.Fatalf("%d * %d: unexpected error %v", a, b, err)
			}
			if int64(got) != wide {
				t.Fatalf("%d * %d: got %d, want %d", a, b, got, wide)
			}
		} else if err == nil {
			t.Fatalf("%d * %d: overflow not reported", a, b)
		}
	}
}
