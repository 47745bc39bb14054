// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package clamp_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/clamp"
)

var errSeven = errors.New("value must not be 7")

func notSeven() clamp.ValidatorFunc[int] {
	return func(item int) error {
		if item == 7 {
			return errSeven
		}
		return nil
	}
}

func TestViewHoldsInvalidItems(t *testing.T) {
	v := clamp.NewView[int](7, notSeven())
	assert.Equal(t, 7, v.Get())
	assert.False(t, v.IsValid())
	assert.ErrorIs(t, v.Check(), errSeven)

	v.Set(3)
	assert.True(t, v.IsValid())
	require.NoError(t, v.Check())
}

func TestViewGuardRejectsInvalidCommit(t *testing.T) {
	v := clamp.NewView[int](3, notSeven())

	g := v.Modify()
	g.Set(7)
	assert.Equal(t, clamp.GuardChanged, g.Check())

	err := g.Commit()
	assert.ErrorIs(t, err, errSeven)

	g.Cancel()
	assert.Equal(t, 3, v.Get(), "owner's item remains at its pre-guard value")
}

func TestViewGuardCommitsValidItem(t *testing.T) {
	v := clamp.NewView[int](3, notSeven())

	g := v.Modify()
	g.Set(12)
	require.NoError(t, g.Commit())
	assert.Equal(t, 12, v.Get())
}

func TestViewTryUnwrap(t *testing.T) {
	v := clamp.NewView[int](3, notSeven())
	item, err := v.TryUnwrap()
	require.NoError(t, err)
	assert.Equal(t, 3, item)

	v.Set(7)
	_, err = v.TryUnwrap()
	assert.ErrorIs(t, err, errSeven)

	// Nothing was lost: same item, same validator.
	assert.Equal(t, 7, v.Get())
	assert.ErrorIs(t, v.Validator().Validate(v.Get()), errSeven)

	// Repair through a fresh guard, then unwrap.
	g := v.Modify()
	g.Set(8)
	require.NoError(t, g.Commit())
	item, err = v.TryUnwrap()
	require.NoError(t, err)
	assert.Equal(t, 8, item)
}

func TestViewUnwrapPanicsOnInvalid(t *testing.T) {
	v := clamp.NewView[int](7, notSeven())
	assert.Panics(t, func() { v.Unwrap() })

	v.Set(1)
	assert.Equal(t, 1, v.Unwrap())
}

func TestViewCancelDiscardsItem(t *testing.T) {
	v := clamp.NewView[int](7, notSeven())
	v.Cancel()
	assert.Equal(t, 0, v.Get())
}

func TestViewLease(t *testing.T) {
	v := clamp.NewView[int](3, notSeven())
	g := v.Modify()

	assert.Panics(t, func() { v.Get() })
	assert.Panics(t, func() { v.Set(1) })
	assert.Panics(t, func() { v.Modify() })

	g.Cancel()
	assert.Equal(t, 3, v.Get())
}

func TestLimitsAsValidator(t *testing.T) {
	v := clamp.NewView[int](5, clamp.MustLimits[int](0, 10))
	assert.True(t, v.IsValid())

	g := v.Modify()
	g.Set(15)
	err := g.Commit()
	require.Error(t, err)

	var oob *clamp.OutOfBoundsError[int]
	assert.True(t, errors.As(err, &oob))
	g.Cancel()
	assert.Equal(t, 5, v.Get())
}

func TestValidatorFuncComposite(t *testing.T) {
	checked := clamp.ValidatorFunc[int](func(item int) error {
		switch {
		case item < 0:
			return errors.New("value must be positive")
		case item%2 == 0 && item != 0 && item <= 10:
			return errors.New("value must be odd, or zero, or greater than 10")
		case item == 7:
			return errSeven
		default:
			return nil
		}
	})

	v := clamp.NewView[int](0, checked)
	assert.True(t, v.IsValid())

	v.Set(1)
	require.NoError(t, v.Check())

	v.Set(-1)
	require.Error(t, v.Check())

	v.Set(12)
	require.NoError(t, v.Check())

	v.Set(7)
	_, err := v.TryUnwrap()
	require.Error(t, err)
	assert.Equal(t, 7, v.Get())

	v.Cancel()
}

func TestRangeSetMembership(t *testing.T) {
	rs := clamp.NewRangeSet(
		clamp.MustLimits[int](0, 9),
		clamp.MustLimits[int](1000, 2000),
	).WithExact(500)

	assert.True(t, rs.Contains(5))
	assert.True(t, rs.Contains(1500))
	assert.True(t, rs.Contains(500))
	assert.False(t, rs.Contains(10))
	assert.False(t, rs.Contains(999))
	assert.False(t, rs.Contains(2001))

	require.NoError(t, rs.Validate(0))
	require.Error(t, rs.Validate(400))
}

func TestRangeSetAsViewValidator(t *testing.T) {
	rs := clamp.NewRangeSet(clamp.MustLimits[int](0, 9), clamp.MustLimits[int](1000, 2000))
	v := clamp.NewView[int](5, rs)

	g := v.Modify()
	g.Set(1008)
	require.NoError(t, g.Commit())
	assert.Equal(t, 1008, v.Get())

	g = v.Modify()
	g.Set(400)
	require.Error(t, g.Commit())
	g.Cancel()
	assert.Equal(t, 1008, v.Get())
}

type draft struct {
	Title string
	Tags  []string
}

func TestViewOverNonComparableItem(t *testing.T) {
	maxTwoTags := clamp.ValidatorFunc[draft](func(d draft) error {
		if len(d.Tags) > 2 {
			return errors.New("too many tags")
		}
		return nil
	})

	v := clamp.NewView(draft{Title: "a"}, maxTwoTags)
	g := v.Modify()
	assert.Equal(t, clamp.GuardUnchanged, g.Check())

	g.Update(func(d draft) draft {
		d.Tags = append(d.Tags, "x", "y", "z")
		return d
	})
	assert.Equal(t, clamp.GuardChanged, g.Check())
	require.Error(t, g.Commit())

	g.Update(func(d draft) draft {
		d.Tags = d.Tags[:2]
		return d
	})
	require.NoError(t, g.Commit())
	assert.Equal(t, []string{"x", "y"}, v.Get().Tags)
}
