// Copyright 2013 Travis Keep. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or
// at http://opensource.org/licenses/BSD-3-Clause.

package checked

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	got, err := Add(40, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got)

	_, err = Add(math.MaxInt64, 1)
	assert.ErrorIs(t, err, ErrOverflow)
	_, err = Add(math.MinInt64, -1)
	assert.ErrorIs(t, err, ErrOverflow)

	got, err = Add(math.MaxInt64, -1)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64-1), got)
}

func TestSub(t *testing.T) {
	got, err := Sub(10, 13)
	require.NoError(t, err)
	assert.Equal(t, int64(-3), got)

	_, err = Sub(math.MinInt64, 1)
	assert.ErrorIs(t, err, ErrOverflow)
	_, err = Sub(math.MaxInt64, -1)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestMul(t *testing.T) {
	tests := []struct {
		a, b int64
		want int64
		ok   bool
	}{
		{0, math.MaxInt64, 0, true},
		{18, 900_000_000_000_000_000, 0, false},
		{11, 900_000_000_000_000_000, 0, false},
		{10, 900_000_000_000_000_000, 9_000_000_000_000_000_000, true},
		{9, 1_000_000_000_000_000_000, 9_000_000_000_000_000_000, true},
		{-1, math.MinInt64, 0, false},
		{math.MinInt64, -1, 0, false},
		{-3, 7, -21, true},
	}
	for _, tt := range tests {
		got, err := Mul(tt.a, tt.b)
		if !tt.ok {
			assert.ErrorIs(t, err, ErrOverflow, "%d * %d", tt.a, tt.b)
			continue
		}
		require.NoError(t, err, "%d * %d", tt.a, tt.b)
		assert.Equal(t, tt.want, got)
	}
}

func TestPow10(t *testing.T) {
	got, err := Pow10(0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)

	got, err = Pow10(18)
	require.NoError(t, err)
	assert.Equal(t, int64(1_000_000_000_000_000_000), got)

	_, err = Pow10(19)
	assert.ErrorIs(t, err, ErrOverflow)
	_, err = Pow10(-1)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestNumDigits(t *testing.T) {
	assert.Equal(t, 1, NumDigits(0))
	assert.Equal(t, 1, NumDigits(9))
	assert.Equal(t, 2, NumDigits(10))
	assert.Equal(t, 3, NumDigits(999))
	assert.Equal(t, MaxDigits, NumDigits(math.MaxInt64))
}

func TestParseDigits(t *testing.T) {
	got, err := ParseDigits("007")
	require.NoError(t, err)
	assert.Equal(t, int64(7), got)

	got, err = ParseDigits("9223372036854775807")
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), got)

	_, err = ParseDigits("9223372036854775808")
	assert.ErrorIs(t, err, ErrOverflow)
	_, err = ParseDigits("00000000000000000000000000012")
	assert.NoError(t, err)

	_, err = ParseDigits("")
	assert.ErrorIs(t, err, ErrSyntax)
	_, err = ParseDigits("12a")
	assert.ErrorIs(t, err, ErrSyntax)
	_, err = ParseDigits("-1")
	assert.ErrorIs(t, err, ErrSyntax)
}
