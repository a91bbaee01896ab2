// Copyright 2013 Travis Keep. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or
// at http://opensource.org/licenses/BSD-3-Clause.

package sequence

import (
	"errors"
)

// Emitter allows a function to emit digits to an associated Stream.
type Emitter interface {

	// EmitPtr returns the pointer supplied to Next of associated Stream.
	// If associated Stream has been closed, EmitPtr returns nil.
	EmitPtr() *byte

	// Return causes Next of associated Stream to return. Return yields control
	// to the caller of Next blocking until Next on associated Stream is called
	// again or Stream is closed. err is the value that Next should return.
	// err != sequence.Done otherwise Return panics.
	Return(err error)
}

// NewGenerator creates a Stream that emits the digits from emitting
// function f. When f is through emitting digits, it should just return. If
// f gets nil when calling EmitPtr on e it should return immediately as this
// means the Stream was closed.
func NewGenerator(f func(e Emitter)) Stream {
	g := &generator{requests: make(chan *byte), replies: make(chan error)}
	go func() {
		defer func() { g.replies <- Done }()
		g.current = <-g.requests
		f(g)
	}()
	return g
}

// generator hands each pointer passed to Next to the emitting goroutine
// and waits for its reply. A nil pointer asks the goroutine to stop. Only
// the caller's goroutine clears the channels, after the final Done.
type generator struct {
	requests chan *byte
	replies  chan error
	current  *byte
}

func (g *generator) EmitPtr() *byte {
	return g.current
}

func (g *generator) Return(err error) {
	if err == Done {
		panic("sequence: Done passed to Return of Emitter")
	}
	g.replies <- err
	g.current = <-g.requests
}

func (g *generator) Next(ptr *byte) error {
	if g.requests == nil {
		return Done
	}
	g.requests <- ptr
	err := <-g.replies
	if err == Done {
		close(g.requests)
		close(g.replies)
		g.requests, g.replies = nil, nil
	}
	return err
}

func (g *generator) Close() error {
	if g.requests == nil {
		return nil
	}
	g.Next(nil)
	if g.requests != nil {
		return errors.New("sequence: emitting function did not return on Close")
	}
	return nil
}
