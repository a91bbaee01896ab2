// Copyright 2013 Travis Keep. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or
// at http://opensource.org/licenses/BSD-3-Clause.

package main

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/keep94/digitseq/internal/oracle"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var errCrosscheck = errors.New("crosscheck: positions disagree")

// maxReportedMismatches caps the mismatches listed per length.
const maxReportedMismatches = 10

type mismatch struct {
	Query string `json:"query" yaml:"query"`
	Found int64  `json:"found" yaml:"found"`
	First int64  `json:"first" yaml:"first"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

type crosscheckResult struct {
	Length     int        `json:"length" yaml:"length"`
	Checked    int        `json:"checked" yaml:"checked"`
	Failed     int        `json:"failed" yaml:"failed"`
	Mismatches []mismatch `json:"mismatches,omitempty" yaml:"mismatches,omitempty"`
}

func (a *app) crosscheckCommand() *cobra.Command {
	var minLen, maxLen int
	cmd := &cobra.Command{
		Use:   "crosscheck",
		Short: "Compare find against a brute force scan for every string up to --max-len digits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if minLen < 1 || maxLen < minLen || maxLen > oracle.MaxTableLength {
				return fmt.Errorf("lengths must satisfy 1 <= min-len <= max-len <= %d", oracle.MaxTableLength)
			}
			var results []crosscheckResult
			failed := false
			for length := minLen; length <= maxLen; length++ {
				result, err := a.crosscheck(cmd, length)
				if err != nil {
					return err
				}
				failed = failed || result.Failed > 0
				results = append(results, result)
			}
			err := a.printer.emit(results, func(w io.Writer) error {
				for _, r := range results {
					if _, err := fmt.Fprintf(w, "length %d: %s checked, %d failed\n", r.Length, a.printer.formatInt(int64(r.Checked)), r.Failed); err != nil {
						return err
					}
					for _, m := range r.Mismatches {
						if _, err := fmt.Fprintf(w, "  %s found %d first %d %s\n", m.Query, m.Found, m.First, m.Error); err != nil {
							return err
						}
					}
				}
				return nil
			})
			if err != nil {
				return err
			}
			if failed {
				return errCrosscheck
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&minLen, "min-len", 1, "shortest query length to check")
	cmd.Flags().IntVar(&maxLen, "max-len", 4, "longest query length to check")
	return cmd
}

// crosscheck runs Find on every string of length digits and compares the
// answers with a table of first occurrences.
func (a *app) crosscheck(cmd *cobra.Command, length int) (crosscheckResult, error) {
	table, err := oracle.FirstOccurrences(length)
	if err != nil {
		return crosscheckResult{}, err
	}
	result := crosscheckResult{Length: length, Checked: len(table)}
	var mu sync.Mutex
	record := func(m mismatch) {
		mu.Lock()
		defer mu.Unlock()
		result.Failed++
		if len(result.Mismatches) < maxReportedMismatches {
			result.Mismatches = append(result.Mismatches, m)
		}
	}

	workers := max(a.config.GetInt("batch.workers"), 1)
	chunk := (len(table) + workers - 1) / workers
	g, ctx := errgroup.WithContext(cmd.Context())
	for lo := 0; lo < len(table); lo += chunk {
		hi := min(lo+chunk, len(table))
		g.Go(func() error {
			for v := lo; v < hi; v++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				query := fmt.Sprintf("%0*d", length, v)
				pos, err := a.finder.Find(query)
				switch {
				case err != nil:
					record(mismatch{Query: query, First: table[v], Error: err.Error()})
				case pos != table[v]:
					record(mismatch{Query: query, Found: pos, First: table[v]})
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return crosscheckResult{}, err
	}
	a.logger.InfoContext(cmd.Context(), "crosscheck completed",
		"length", length,
		"checked", result.Checked,
		"failed", result.Failed,
	)
	return result, nil
}
