// Copyright 2013 Travis Keep. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or
// at http://opensource.org/licenses/BSD-3-Clause.

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/keep94/digitseq/consume"
	"github.com/spf13/cobra"
)

type digitResult struct {
	Position int64  `json:"position" yaml:"position"`
	Digits   string `json:"digits" yaml:"digits"`
}

func (a *app) digitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "digit POS [COUNT]",
		Short: "Print COUNT digits of the sequence starting at 0-based position POS",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("position %q: %w", args[0], err)
			}
			count := 1
			if len(args) > 1 {
				if count, err = strconv.Atoi(args[1]); err != nil || count < 1 {
					return fmt.Errorf("count %q must be a positive integer", args[1])
				}
			}
			digits, err := consume.Read(pos, count)
			if err != nil {
				return err
			}
			result := digitResult{Position: pos, Digits: digits}
			return a.printer.emit(result, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, result.Digits)
				return err
			})
		},
	}
}
