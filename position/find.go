// Copyright 2013 Travis Keep. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or
// at http://opensource.org/licenses/BSD-3-Clause.

// Package position finds where a string of digits first occurs in the
// infinite sequence 123456789101112131415... formed by concatenating the
// positive integers.
//
// Several strategies each propose candidate positions: closed forms for
// runs of 9s and 0s, reconstruction of the integer boundary the query
// straddles, and a search for a window onto consecutive integers. Each
// candidate is checked against the sequence itself and the smallest one
// that reproduces the query is the answer.
package position

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	"github.com/keep94/digitseq/consume"
)

// Finder locates digit strings in the sequence. A Finder is safe for
// concurrent use.
type Finder struct {
	logger *slog.Logger
}

// Option configures a Finder.
type Option func(*Finder)

// WithLogger sets the logger that receives a debug record for every
// candidate a Finder considers.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Finder) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// NewFinder returns a new Finder.
func NewFinder(opts ...Option) *Finder {
	f := &Finder{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var defaultFinder = NewFinder()

// Find returns the smallest 0-based position at which s occurs in the
// sequence. s may start with '0'. Find("1") is 0 and Find("0") is 10.
func Find(s string) (int64, error) {
	return defaultFinder.Find(s)
}

// Find returns the smallest 0-based position at which s occurs in the
// sequence. It returns ErrInvalidQuery if s is empty or contains a
// non-digit and ErrOverflow if the position cannot be computed in an int64.
func (f *Finder) Find(s string) (int64, error) {
	candidates, err := f.search(s, true)
	if err != nil {
		return 0, err
	}
	return candidates[0].Position, nil
}

// Explain returns every distinct position proposed for s that actually
// reproduces s, in increasing order. The first element is the answer Find
// returns. When two strategies propose the same position, the one listed
// first in the Strategy constants is reported.
func (f *Finder) Explain(s string) ([]Candidate, error) {
	return f.search(s, false)
}

func (f *Finder) search(s string, firstOnly bool) ([]Candidate, error) {
	if err := validate(s); err != nil {
		return nil, err
	}
	c := collect(s)
	slices.SortStableFunc(c.candidates, func(a, b Candidate) int {
		return cmp.Compare(a.Position, b.Position)
	})
	var result []Candidate
	for i, candidate := range c.candidates {
		if i > 0 && candidate.Position == c.candidates[i-1].Position {
			continue
		}
		if !f.verify(s, candidate) {
			continue
		}
		result = append(result, candidate)
		if firstOnly {
			break
		}
	}
	if len(result) == 0 {
		if c.overflow != nil {
			return nil, fmt.Errorf("position: locating %q: %w", s, c.overflow)
		}
		panic(fmt.Sprintf("position: no strategy located %q", s))
	}
	return result, nil
}

// collect runs every strategy against s.
func collect(s string) *collector {
	c := &collector{}
	if s == "0" {
		// The first 0 is the second digit of 10.
		pos, err := indexPlus("10", 1)
		c.add(LiteralZero, pos, err)
		return c
	}
	matchShapes(s, c)
	rotations(s, c)
	carriedRotations(s, c)
	if pos, ok, err := decompose(s); ok || err != nil {
		c.add(Decomposition, pos, err)
	}
	return c
}

// verify reports whether the sequence read from candidate's position
// spells s.
func (f *Finder) verify(s string, candidate Candidate) bool {
	if candidate.Position < 0 {
		f.logger.Debug("candidate rejected",
			"query", s,
			"position", candidate.Position,
			"strategy", candidate.Strategy,
		)
		return false
	}
	got, err := consume.Read(candidate.Position, len(s))
	if err != nil {
		f.logger.Debug("candidate unreadable",
			"query", s,
			"position", candidate.Position,
			"strategy", candidate.Strategy,
			"error", err,
		)
		return false
	}
	ok := got == s
	f.logger.Debug("candidate checked",
		"query", s,
		"position", candidate.Position,
		"strategy", candidate.Strategy,
		"found", got,
		"valid", ok,
	)
	return ok
}

func validate(s string) error {
	if s == "" {
		return ErrInvalidQuery
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return fmt.Errorf("%w: %q at offset %d", ErrInvalidQuery, s[i], i)
		}
	}
	return nil
}
