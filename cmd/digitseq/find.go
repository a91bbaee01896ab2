// Copyright 2013 Travis Keep. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or
// at http://opensource.org/licenses/BSD-3-Clause.

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/keep94/digitseq/position"
	"github.com/spf13/cobra"
)

type findResult struct {
	Query      string               `json:"query" yaml:"query"`
	Position   int64                `json:"position" yaml:"position"`
	Candidates []position.Candidate `json:"candidates,omitempty" yaml:"candidates,omitempty"`
}

func (a *app) findCommand() *cobra.Command {
	var explain bool
	cmd := &cobra.Command{
		Use:   "find S...",
		Short: "Print the first position of each digit string S",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]findResult, 0, len(args))
			for _, query := range args {
				result, err := a.find(cmd, query, explain)
				if err != nil {
					return fmt.Errorf("find %q: %w", query, err)
				}
				results = append(results, result)
			}
			return a.printer.emit(results, func(w io.Writer) error {
				for _, r := range results {
					if _, err := fmt.Fprintf(w, "%s %s\n", r.Query, a.printer.formatInt(r.Position)); err != nil {
						return err
					}
					for _, c := range r.Candidates {
						if _, err := fmt.Fprintf(w, "  %s %s\n", a.printer.formatInt(c.Position), c.Strategy); err != nil {
							return err
						}
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&explain, "explain", false, "list every verified candidate and the strategy behind it")
	return cmd
}

func (a *app) find(cmd *cobra.Command, query string, explain bool) (findResult, error) {
	start := time.Now()
	if !explain {
		pos, err := a.finder.Find(query)
		a.logger.LogFind(cmd.Context(), query, pos, time.Since(start), err)
		return findResult{Query: query, Position: pos}, err
	}
	candidates, err := a.finder.Explain(query)
	if err != nil {
		a.logger.LogFind(cmd.Context(), query, 0, time.Since(start), err)
		return findResult{}, err
	}
	a.logger.LogFind(cmd.Context(), query, candidates[0].Position, time.Since(start), nil)
	return findResult{Query: query, Position: candidates[0].Position, Candidates: candidates}, nil
}
