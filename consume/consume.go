// Copyright 2013 Travis Keep. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or
// at http://opensource.org/licenses/BSD-3-Clause.

// Package consume provides useful ways to consume digit streams.
package consume

import (
	"errors"
	"fmt"

	"github.com/keep94/digitseq/sequence"
)

// ErrShortRead is returned by Read when the sequence ends before the
// requested number of digits could be read.
var ErrShortRead = errors.New("consume: sequence ended early")

// Buffer reads digits from a Stream until it either fills up or
// the Stream is exhausted.
type Buffer struct {
	buffer []byte
	err    error
	idx    int
}

// NewBuffer creates a new Buffer. aSlice is used to store digits.
func NewBuffer(aSlice []byte) *Buffer {
	return &Buffer{buffer: aSlice}
}

// Values returns the digits gathered from the last Consume call. The number
// of digits gathered will not exceed the length of the original slice passed
// to NewBuffer. Returned value remains valid until the next call to Consume.
func (b *Buffer) Values() []byte {
	return b.buffer[:b.idx]
}

// String returns Values as a string.
func (b *Buffer) String() string {
	return string(b.Values())
}

// Error returns any error from last call to Consume.
func (b *Buffer) Error() error {
	return b.err
}

// Consume fetches the digits and closes s.
func (b *Buffer) Consume(s sequence.Stream) {
	defer s.Close()
	b.err = nil
	b.idx = 0
	for b.idx < len(b.buffer) {
		if b.err = s.Next(&b.buffer[b.idx]); b.err != nil {
			break
		}
		b.idx++
	}
	if b.err == sequence.Done {
		b.err = nil
	}
}

// FirstOnly reads the first digit from stream storing it in ptr.
// FirstOnly closes the stream.
// FirstOnly returns emptyError if no digits were on stream.
func FirstOnly(stream sequence.Stream, emptyError error, ptr *byte) (err error) {
	defer func() {
		closeError := stream.Close()
		if err == nil {
			err = closeError
		}
	}()
	err = stream.Next(ptr)
	if err == sequence.Done {
		err = emptyError
		return
	}
	return
}

// Read returns count digits of the sequence starting at position pos.
func Read(pos int64, count int) (string, error) {
	stream, err := sequence.FromPosition(pos)
	if err != nil {
		return "", err
	}
	buffer := NewBuffer(make([]byte, count))
	buffer.Consume(stream)
	if err := buffer.Error(); err != nil {
		return "", err
	}
	if len(buffer.Values()) < count {
		return "", fmt.Errorf("%w: wanted %d digits at %d, got %d", ErrShortRead, count, pos, len(buffer.Values()))
	}
	return buffer.String(), nil
}
