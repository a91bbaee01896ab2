// Copyright 2013 Travis Keep. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or
// at http://opensource.org/licenses/BSD-3-Clause.

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/keep94/digitseq/position"
	"github.com/spf13/cobra"
)

type indexResult struct {
	N        int64 `json:"n" yaml:"n"`
	Position int64 `json:"position" yaml:"position"`
}

func (a *app) indexCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "index N...",
		Short: "Print the position where each integer N starts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]indexResult, 0, len(args))
			for _, arg := range args {
				n, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("index %q: %w", arg, err)
				}
				pos, err := position.IndexOf(n)
				a.logger.LogIndex(cmd.Context(), n, pos, err)
				if err != nil {
					return fmt.Errorf("index %d: %w", n, err)
				}
				results = append(results, indexResult{N: n, Position: pos})
			}
			return a.printer.emit(results, func(w io.Writer) error {
				for _, r := range results {
					if _, err := fmt.Fprintf(w, "%s %s\n", a.printer.formatInt(r.N), a.printer.formatInt(r.Position)); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}
