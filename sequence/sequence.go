// Copyright 2013 Travis Keep. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or
// at http://opensource.org/licenses/BSD-3-Clause.

// Package sequence emits the digits of the infinite sequence
// 123456789101112131415... formed by concatenating the positive integers.
package sequence

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/keep94/digitseq/internal/checked"
)

var (
	// Done indicates that the end of a Stream has been reached
	Done = errors.New("sequence: End of Stream reached.")

	// ErrNegativePosition is returned when a position before the start of
	// the sequence is requested.
	ErrNegativePosition = errors.New("sequence: negative position")

	// ErrNotPositive is returned when a stream is requested to start at an
	// integer less than 1.
	ErrNotPositive = errors.New("sequence: integer must be positive")
)

// Stream is a sequence of emitted digits.
// Each call to Next() emits the next digit as an ASCII byte '0'..'9'.
type Stream interface {
	// Next emits the next digit in this Stream storing it at ptr.
	// If Next returns Done, then the end of the Stream has been reached,
	// and the value ptr points to is unspecified.
	// If Next returns some other error, then the caller should close the
	// Stream with Close.
	Next(ptr *byte) error
	// Close indicates that the caller is finished with this Stream. Callers
	// that do not consume the Stream entirely must call Close on it.
	io.Closer
}

// FromInteger returns a Stream that emits the digits of n, n+1, n+2, ...
// The Stream ends only when the next integer would overflow an int64.
// If caller does not exhaust returned Stream, it must call Close on it.
func FromInteger(n int64) (Stream, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrNotPositive, n)
	}
	return NewGenerator(
		func(e Emitter) {
			var buf [checked.MaxDigits]byte
			for number := n; number > 0; number++ {
				for _, ch := range strconv.AppendInt(buf[:0], number, 10) {
					ptr := e.EmitPtr()
					if ptr == nil {
						return
					}
					*ptr = ch
					e.Return(nil)
				}
			}
		}), nil
}

// Locate returns the integer n whose digits cover position pos of the
// sequence together with the offset of pos within the decimal form of n.
// Locate(0) returns (1, 0); Locate(10) returns (10, 1).
func Locate(pos int64) (n int64, offset int, err error) {
	if pos < 0 {
		return 0, 0, fmt.Errorf("%w: %d", ErrNegativePosition, pos)
	}
	digits, count, first := int64(1), int64(9), int64(1)
	for {
		block, err := checked.Mul(digits, count)
		if err != nil || pos < block {
			break
		}
		pos -= block
		digits++
		count *= 10
		first *= 10
	}
	return first + pos/digits, int(pos % digits), nil
}

// FromPosition returns a Stream that emits the digits of the sequence
// starting at 0-based position pos.
// If caller does not exhaust returned Stream, it must call Close on it.
func FromPosition(pos int64) (Stream, error) {
	n, offset, err := Locate(pos)
	if err != nil {
		return nil, err
	}
	s, err := FromInteger(n)
	if err != nil {
		return nil, err
	}
	return Slice(s, offset, -1), nil
}
