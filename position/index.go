// Copyright 2013 Travis Keep. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or
// at http://opensource.org/licenses/BSD-3-Clause.

package position

import (
	"fmt"

	"github.com/keep94/digitseq/internal/checked"
)

// IndexOf returns the 0-based position of the first digit of n in the
// sequence. IndexOf(1) is 0, IndexOf(10) is 9 and IndexOf(100) is 189.
// IndexOf returns ErrNonPositive if n < 1 and ErrOverflow if the position
// does not fit in an int64.
func IndexOf(n int64) (int64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrNonPositive, n)
	}
	d := checked.NumDigits(n)

	// Digits contributed by every integer with fewer than d digits. There
	// are 9*10^(i-1) integers with exactly i digits.
	var offset int64
	count := int64(9)
	for i := 1; i < d; i++ {
		block, err := checked.Mul(int64(i), count)
		if err != nil {
			return 0, err
		}
		if offset, err = checked.Add(offset, block); err != nil {
			return 0, err
		}
		count *= 10
	}

	first, err := checked.Pow10(d - 1)
	if err != nil {
		return 0, err
	}
	tail, err := checked.Mul(n-first, int64(d))
	if err != nil {
		return 0, err
	}
	return checked.Add(offset, tail)
}

// indexPlus parses digits as an integer k and returns IndexOf(k) + delta.
func indexPlus(digits string, delta int) (int64, error) {
	k, err := checked.ParseDigits(digits)
	if err != nil {
		return 0, err
	}
	idx, err := IndexOf(k)
	if err != nil {
		return 0, err
	}
	return checked.Add(idx, int64(delta))
}
