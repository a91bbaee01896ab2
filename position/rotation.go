// Copyright 2013 Travis Keep. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or
// at http://opensource.org/licenses/BSD-3-Clause.

package position

import (
	"strconv"

	"github.com/keep94/digitseq/internal/checked"
)

// rotations assumes s straddles the boundary between K and K+1 at every
// split point, with the left part the tail of K and the right part the
// head of K+1, and rebuilds K as right followed by what remains of left
// once the overlap between the two is squished out. abcwxyzabc split as
// abcwx|yzabc gives K = yzabcwx rather than yzabcabcwx:
//
//	...yzabcwx|yzabcw(x+1)...
//	     ^ abcwxyzabc
func rotations(s string, c *collector) {
	for i := 1; i < len(s); i++ {
		left, right := s[:i], s[i:]
		if right[0] == '0' {
			continue
		}
		j := squish(left, right)
		pos, err := indexPlus(right+left[j:], len(right)-j)
		c.add(Rotation, pos, err)
	}
}

// squish returns the largest j such that the first j digits of left are
// the last j digits of right and the rest of left is not all 9s. A rest
// of 9s belongs to a carry, not to a repetition.
func squish(left, right string) int {
	for j := min(len(left), len(right)); j > 0; j-- {
		if left[:j] == right[len(right)-j:] && !allRun(left[j:], '9') {
			return j
		}
	}
	return 0
}

// carriedRotations covers the boundaries rotations misses because K+1
// carried into its head, as in 19|20 for the query 92. For each split the
// head of K is either right itself or right minus one, and every overlap
// between that head and left is tried.
func carriedRotations(s string, c *collector) {
	for i := 1; i < len(s); i++ {
		left, right := s[:i], s[i:]
		if right[0] == '0' {
			continue
		}
		heads := []string{right}
		r, err := checked.ParseDigits(right)
		if err != nil {
			c.fail(err)
		} else if r > 1 {
			heads = append(heads, strconv.FormatInt(r-1, 10))
		}
		for _, head := range heads {
			for j := 0; j <= min(len(left), len(head)); j++ {
				if left[:j] != head[len(head)-j:] {
					continue
				}
				k := head + left[j:]
				pos, err := indexPlus(k, len(k)-len(left))
				c.add(CarriedRotation, pos, err)
			}
		}
	}
}
