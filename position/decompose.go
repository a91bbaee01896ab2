// Copyright 2013 Travis Keep. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or
// at http://opensource.org/licenses/BSD-3-Clause.

package position

import (
	"strconv"
	"strings"

	"github.com/keep94/digitseq/internal/checked"
)

// decompose looks for an integer start of check digits, preceded by skip
// digits that end start-1, such that start, start+1, start+2, ... spell
// out the rest of s. check grows from 1 to len(s); for each check, skip
// runs from 0 to check-1. The first match wins. ok is false when nothing
// matches; err reports an overflow seen along the way.
func decompose(s string) (pos int64, ok bool, err error) {
	for check := 1; check <= len(s); check++ {
		for skip := 0; skip < check && skip < len(s); skip++ {
			lead, rest := s[:skip], s[skip:]
			start, perr := checked.ParseDigits(rest[:min(check, len(rest))])
			if perr != nil {
				err = perr
				continue
			}
			if start == 0 || !growsInto(start, rest) {
				continue
			}
			if !strings.HasSuffix(strconv.FormatInt(start-1, 10), lead) {
				continue
			}
			pos, err = IndexOf(start)
			if err == nil {
				pos, err = checked.Sub(pos, int64(skip))
			}
			return pos, true, err
		}
	}
	return 0, false, err
}

// growsInto reports whether the digits of start, start+1, start+2, ...
// truncated to len(rest) equal rest.
func growsInto(start int64, rest string) bool {
	var buf [checked.MaxDigits]byte
	for i := 0; i < len(rest); start++ {
		if start <= 0 {
			return false
		}
		digits := strconv.AppendInt(buf[:0], start, 10)
		n := min(len(digits), len(rest)-i)
		if rest[i:i+n] != string(digits[:n]) {
			return false
		}
		i += n
	}
	return true
}
