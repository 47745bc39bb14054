// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package clamp_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/clamp"
)

func TestNewLimitsRejectsInvertedBounds(t *testing.T) {
	_, err := clamp.NewLimits[int](10, 0)
	require.Error(t, err)

	var cfg *clamp.ConfigError[int]
	require.True(t, errors.As(err, &cfg))
	assert.Equal(t, 10, cfg.Lower)
	assert.Equal(t, 0, cfg.Upper)
}

func TestNewLimitsAcceptsDegenerateRange(t *testing.T) {
	lim, err := clamp.NewLimits[int](7, 7)
	require.NoError(t, err)
	assert.True(t, lim.Contains(7))
	assert.False(t, lim.Contains(8))
}

func TestMustLimitsPanicsOnInvertedBounds(t *testing.T) {
	assert.Panics(t, func() { clamp.MustLimits[int](1, 0) })
}

func TestFullRangeCoversTheType(t *testing.T) {
	u8 := clamp.FullRange[uint8]()
	assert.Equal(t, uint8(0), u8.Lower())
	assert.Equal(t, uint8(math.MaxUint8), u8.Upper())

	i8 := clamp.FullRange[int8]()
	assert.Equal(t, int8(math.MinInt8), i8.Lower())
	assert.Equal(t, int8(math.MaxInt8), i8.Upper())

	i64 := clamp.FullRange[int64]()
	assert.Equal(t, int64(math.MinInt64), i64.Lower())
	assert.Equal(t, int64(math.MaxInt64), i64.Upper())

	u64 := clamp.FullRange[uint64]()
	assert.Equal(t, uint64(math.MaxUint64), u64.Upper())
}

func TestLimitsValidateReportsBothBounds(t *testing.T) {
	lim := clamp.MustLimits[uint8](2, 10)

	err := lim.Validate(15)
	var oob *clamp.OutOfBoundsError[uint8]
	require.True(t, errors.As(err, &oob))
	assert.Equal(t, uint8(15), oob.Value)
	assert.Equal(t, uint8(2), oob.Lower)
	assert.Equal(t, uint8(10), oob.Upper)

	require.NoError(t, lim.Validate(2))
	require.NoError(t, lim.Validate(10))
	require.Error(t, lim.Validate(1))
}

func TestLimitsClamp(t *testing.T) {
	lim := clamp.MustLimits[int](-5, 5)
	assert.Equal(t, -5, lim.Clamp(-100))
	assert.Equal(t, 5, lim.Clamp(100))
	assert.Equal(t, 3, lim.Clamp(3))
}

func TestLimitsDefaultResolution(t *testing.T) {
	// Zero representable: default is zero.
	assert.Equal(t, 0, clamp.MustLimits[int](-5, 5).Default())
	// Zero below the range: default is the lower bound.
	assert.Equal(t, 5, clamp.MustLimits[int](5, 10).Default())
	// Zero above the range: still the lower bound.
	assert.Equal(t, -10, clamp.MustLimits[int](-10, -5).Default())
}

func TestLimitsString(t *testing.T) {
	assert.Equal(t, "[0, 10]", clamp.MustLimits[uint8](0, 10).String())
}
