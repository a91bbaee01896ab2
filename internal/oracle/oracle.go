// Copyright 2013 Travis Keep. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or
// at http://opensource.org/licenses/BSD-3-Clause.

// Package oracle locates digit strings in the sequence 123456789101112...
// by brute force. It is slow and shares no code with package position,
// which makes it useful for checking position's answers.
package oracle

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/coregx/ahocorasick"
	"github.com/keep94/digitseq/internal/checked"
)

var (
	// ErrNotFound is returned when Search finds no occurrence.
	ErrNotFound = errors.New("oracle: not found")

	// ErrTooLong is returned by FirstOccurrences for lengths whose table
	// would not fit in memory.
	ErrTooLong = errors.New("oracle: length too large")
)

// MaxTableLength is the largest length FirstOccurrences accepts.
const MaxTableLength = 7

// Search returns the smallest position of s in the sequence. For every
// length l, starting at 1, and every way of cutting the first l digits of
// s into a prefix p and a suffix q, it assumes s starts at the end of an
// integer c spelled q+p (or (q-1)+p when the next integer carried), grows
// c, c+1, c+2, ... to len(s)+l digits and scans the result for s. The
// first l that finds s at all yields the answer.
func Search(s string) (int64, error) {
	if s == "" {
		return 0, ErrNotFound
	}
	if isZeros(s) {
		return indexPlus("1"+s, 1)
	}
	matcher, err := newMatcher(s)
	if err != nil {
		return 0, err
	}
	for l := 1; l <= len(s); l++ {
		best := int64(-1)
		for i := 0; i <= l; i++ {
			prefix, end := s[:l-i], s[l-i:l]
			for _, c := range integers(prefix, end) {
				pos, found, err := matcher.scan(c, len(s)+l)
				if err != nil {
					return 0, err
				}
				if found && (best < 0 || pos < best) {
					best = pos
				}
			}
		}
		if best >= 0 {
			return best, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrNotFound, s)
}

// integers returns the integers, as text, that Search grows for one cut.
func integers(prefix, end string) []string {
	result := make([]string, 0, 2)
	add := func(c string) {
		if c != "" && c[0] != '0' {
			result = append(result, c)
		}
	}
	add(end + prefix)
	if end == "" || isZeros(end) {
		return result
	}
	e, err := checked.ParseDigits(end)
	if err != nil {
		return result
	}
	add(strconv.FormatInt(e-1, 10) + prefix)
	return result
}

type matcher struct {
	automaton *ahocorasick.Automaton
}

func newMatcher(s string) (*matcher, error) {
	builder := ahocorasick.NewBuilder()
	builder.AddPattern([]byte(s))
	automaton, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("oracle: building matcher for %q: %w", s, err)
	}
	return &matcher{automaton: automaton}, nil
}

// scan grows the integer spelled by c to at least length digits and
// returns the position of the first match in the sequence.
func (m *matcher) scan(c string, length int) (int64, bool, error) {
	n, err := checked.ParseDigits(c)
	if err != nil {
		return 0, false, err
	}
	grown := []byte(c)
	for next := n + 1; len(grown) < length; next++ {
		grown = strconv.AppendInt(grown, next, 10)
	}
	match := m.automaton.Find(grown, 0)
	if match == nil {
		return 0, false, nil
	}
	idx, err := indexOf(n)
	if err != nil {
		return 0, false, err
	}
	pos, err := checked.Add(idx, int64(match.Start))
	return pos, err == nil, err
}

// FirstOccurrences returns a table t of length 10^length where t[v] is the
// first position in the sequence of the length-digit string spelling v
// with leading zeros.
func FirstOccurrences(length int) ([]int64, error) {
	if length < 1 || length > MaxTableLength {
		return nil, fmt.Errorf("%w: %d", ErrTooLong, length)
	}
	size, _ := checked.Pow10(length)
	table := make([]int64, size)
	seen := roaring.New()

	// Every string of length digits occurs by the time 2*10^length is
	// written out: either as an integer or after a leading 1.
	var (
		buf    [checked.MaxDigits]byte
		window int64
		pos    int64
	)
	for n := int64(1); n <= 2*size && seen.GetCardinality() < uint64(size); n++ {
		for _, ch := range strconv.AppendInt(buf[:0], n, 10) {
			window = (window*10 + int64(ch-'0')) % size
			pos++
			start := pos - int64(length)
			if start >= 0 && seen.CheckedAdd(uint32(window)) {
				table[window] = start
			}
		}
	}
	return table, nil
}

// indexOf counts the digits written before n one block of equal length
// integers at a time.
func indexOf(n int64) (int64, error) {
	var pos int64
	low, digits := int64(1), int64(1)
	for {
		high, err := checked.Mul(low, 10)
		if err != nil || n < high {
			break
		}
		block, err := checked.Mul(high-low, digits)
		if err != nil {
			return 0, err
		}
		if pos, err = checked.Add(pos, block); err != nil {
			return 0, err
		}
		low = high
		digits++
	}
	block, err := checked.Mul(n-low, digits)
	if err != nil {
		return 0, err
	}
	return checked.Add(pos, block)
}

func indexPlus(digits string, delta int64) (int64, error) {
	n, err := checked.ParseDigits(digits)
	if err != nil {
		return 0, err
	}
	idx, err := indexOf(n)
	if err != nil {
		return 0, err
	}
	return checked.Add(idx, delta)
}

func isZeros(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return false
		}
	}
	return true
}
