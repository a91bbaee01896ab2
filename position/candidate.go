// Copyright 2013 Travis Keep. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or
// at http://opensource.org/licenses/BSD-3-Clause.

package position

import (
	"errors"
	"fmt"
)

// Strategy identifies the search strategy that proposed a Candidate.
type Strategy int

const (
	// LiteralZero is the answer for the query "0".
	LiteralZero Strategy = iota
	// Carry is a run of 9s rolling over into an incremented digit
	// followed by zeros.
	Carry
	// TrailingNines is a query made entirely of 9s.
	TrailingNines
	// FlankedZero is a query that starts with zeros.
	FlankedZero
	// Rotation splits the query into the tail of an integer and the head
	// of the next one.
	Rotation
	// CarriedRotation is Rotation allowing the next integer to carry into
	// its head.
	CarriedRotation
	// Decomposition treats the query as a window onto consecutive
	// integers.
	Decomposition
)

var strategyNames = [...]string{
	LiteralZero:     "literal-zero",
	Carry:           "carry",
	TrailingNines:   "trailing-nines",
	FlankedZero:     "flanked-zero",
	Rotation:        "rotation",
	CarriedRotation: "carried-rotation",
	Decomposition:   "decomposition",
}

func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return "unknown"
	}
	return strategyNames[s]
}

// MarshalText lets a Strategy appear by name in JSON and YAML output.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a name returned by String.
func (s *Strategy) UnmarshalText(text []byte) error {
	for i, name := range strategyNames {
		if name == string(text) {
			*s = Strategy(i)
			return nil
		}
	}
	return fmt.Errorf("position: unknown strategy %q", text)
}

// Candidate is a position proposed by one strategy.
type Candidate struct {
	Position int64    `json:"position" yaml:"position"`
	Strategy Strategy `json:"strategy" yaml:"strategy"`
}

// collector gathers candidates from every strategy. A strategy whose
// arithmetic overflows contributes no candidate; the first such error is
// kept so that Find can report it when nothing else is found.
type collector struct {
	candidates []Candidate
	overflow   error
}

func (c *collector) add(strategy Strategy, pos int64, err error) {
	if err != nil {
		c.fail(err)
		return
	}
	c.candidates = append(c.candidates, Candidate{Position: pos, Strategy: strategy})
}

func (c *collector) fail(err error) {
	if c.overflow == nil && errors.Is(err, ErrOverflow) {
		c.overflow = err
	}
}
