// Copyright 2013 Travis Keep. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or
// at http://opensource.org/licenses/BSD-3-Clause.

package position

import (
	"errors"

	"github.com/keep94/digitseq/internal/checked"
)

var (
	// ErrInvalidQuery is returned for an empty query or one containing
	// anything other than the digits '0' through '9'.
	ErrInvalidQuery = errors.New("position: query must be a non-empty string of digits")

	// ErrNonPositive is returned by IndexOf for integers less than 1.
	ErrNonPositive = errors.New("position: integer must be positive")

	// ErrOverflow is returned when a position cannot be represented as an
	// int64.
	ErrOverflow = checked.ErrOverflow
)
