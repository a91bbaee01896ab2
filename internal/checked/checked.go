// Copyright 2013 Travis Keep. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or
// at http://opensource.org/licenses/BSD-3-Clause.

// Package checked provides int64 arithmetic that reports overflow instead
// of wrapping.
package checked

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrOverflow is returned when a result does not fit in an int64.
	ErrOverflow = errors.New("checked: int64 overflow")

	// ErrSyntax is returned by ParseDigits for empty or non-digit input.
	ErrSyntax = errors.New("checked: not a digit string")
)

// MaxDigits is the number of decimal digits in math.MaxInt64.
const MaxDigits = 19

// Add returns a + b.
func Add(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return a + b, nil
}

// Sub returns a - b.
func Sub(a, b int64) (int64, error) {
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		return 0, fmt.Errorf("%w: %d - %d", ErrOverflow, a, b)
	}
	return a - b, nil
}

// Mul returns a * b.
func Mul(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	c := a * b
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) || c/b != a {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}
	return c, nil
}

// Pow10 returns 10^e for 0 <= e < MaxDigits.
func Pow10(e int) (int64, error) {
	if e < 0 || e >= MaxDigits {
		return 0, fmt.Errorf("%w: 10^%d", ErrOverflow, e)
	}
	result := int64(1)
	for ; e > 0; e-- {
		result *= 10
	}
	return result, nil
}

// NumDigits returns the number of decimal digits in n. n must be
// non-negative; NumDigits(0) is 1.
func NumDigits(n int64) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

// ParseDigits converts a string of decimal digits to an int64. Leading
// zeros are allowed and ignored, so "007" parses as 7.
func ParseDigits(s string) (int64, error) {
	if s == "" {
		return 0, ErrSyntax
	}
	var n int64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q at offset %d", ErrSyntax, c, i)
		}
		d := int64(c - '0')
		if n > (math.MaxInt64-d)/10 {
			return 0, fmt.Errorf("%w: %q", ErrOverflow, s)
		}
		n = n*10 + d
	}
	return n, nil
}
